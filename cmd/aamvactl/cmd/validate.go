package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drennick/aamvactl/internal/aamva/codec"
	"github.com/drennick/aamvactl/internal/aamva/document"
	"github.com/drennick/aamvactl/internal/aamva/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <payload-file|document.json>",
	Short: "Validate a payload or JSON document and list findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSetup(cmd)
		if err != nil {
			return err
		}
		doc, err := readDocument(args[0], s)
		if err != nil {
			return err
		}

		findings := validate.Validate(doc, s.reg, s.policy)
		if len(findings) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "ok: no findings")
			return nil
		}
		for _, f := range findings {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}

		strict, _ := cmd.Flags().GetBool("strict")
		if (strict || s.strict) && validate.HasFatal(findings) {
			return &validate.ValidationError{Findings: validate.Fatal(findings)}
		}
		return nil
	},
}

// readDocument accepts either form: raw payloads are recognized by the
// compliance prefix, everything else is parsed as JSON.
func readDocument(path string, s setup) (*document.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(raw, []byte("\n@")) {
		return codec.Decode(raw, s.reg)
	}
	var doc document.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return &doc, nil
}

func init() {
	validateCmd.Flags().Bool("strict", false, "exit non-zero when any finding is fatal")
	rootCmd.AddCommand(validateCmd)
}
