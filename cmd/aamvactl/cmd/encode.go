package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drennick/aamvactl/internal/aamva/codec"
	"github.com/drennick/aamvactl/internal/aamva/document"
	"github.com/drennick/aamvactl/internal/aamva/validate"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <document.json>",
	Short: "Encode a JSON document into the raw barcode payload",
	Long: `Encode reads a JSON document, validates it, and writes the raw
payload bytes. Fatal findings abort the encode unless --force is set;
warnings are printed to stderr either way.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSetup(cmd)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var doc document.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("parse document %s: %w", args[0], err)
		}

		findings := validate.Validate(&doc, s.reg, s.policy)
		for _, f := range findings {
			fmt.Fprintln(cmd.ErrOrStderr(), f)
		}
		force, _ := cmd.Flags().GetBool("force")
		if validate.HasFatal(findings) && !force {
			return &validate.ValidationError{Findings: validate.Fatal(findings)}
		}

		payload, err := codec.Encode(&doc, s.reg, s.opts)
		if err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			return os.WriteFile(out, payload, 0o644)
		}
		_, err = cmd.OutOrStdout().Write(payload)
		return err
	},
}

func init() {
	encodeCmd.Flags().StringP("output", "o", "", "write payload to file instead of stdout")
	encodeCmd.Flags().Bool("force", false, "encode even when validation reports fatal findings")
	rootCmd.AddCommand(encodeCmd)
}
