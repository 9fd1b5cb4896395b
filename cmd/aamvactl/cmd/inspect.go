package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drennick/aamvactl/internal/aamva/codec"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <payload-file>",
	Short: "Dump a payload's header and subfile designator table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		hdr, err := codec.DecodeHeader(data)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file type:            %q\n", hdr.FileType)
		fmt.Fprintf(out, "issuer (IIN):         %s\n", hdr.IIN)
		fmt.Fprintf(out, "version:              %02d\n", hdr.Version)
		fmt.Fprintf(out, "jurisdiction version: %02d\n", hdr.JurisdictionVersion)
		fmt.Fprintf(out, "subfiles:             %d\n", hdr.Count)

		designators, err := codec.DecodeDesignators(data, hdr.Count)
		if err != nil {
			return err
		}
		for i, d := range designators {
			fmt.Fprintf(out, "  [%d] %s\n", i, d)
		}
		fmt.Fprintf(out, "total bytes:          %d\n", len(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
