package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/drennick/aamvactl/internal/aamva/codec"
	"github.com/drennick/aamvactl/internal/aamva/registry"
	"github.com/drennick/aamvactl/internal/aamva/validate"
	"github.com/drennick/aamvactl/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "aamvactl",
	Short: "Encode, decode, and validate DL/ID barcode payloads",
	Long: `aamvactl works with the AAMVA DL/ID card design standard's 2-D
barcode payload: it encodes a JSON document into the raw byte layout,
decodes raw payloads back to JSON, validates documents against the
data-element registry, and dumps the header and subfile designator
table for debugging scanner reads.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			parsed, err := zerolog.ParseLevel(lvl)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(parsed)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "TOML config file (policy, encoder, extensions)")
	rootCmd.PersistentFlags().String("log-level", "", "override log level (trace..error)")
}

// setup is the resolved runtime configuration shared by subcommands.
type setup struct {
	reg    *registry.Registry
	policy validate.Policy
	opts   codec.Options
	strict bool
}

func loadSetup(cmd *cobra.Command) (setup, error) {
	s := setup{
		reg:    registry.Default(),
		policy: validate.DefaultPolicy(),
		opts:   codec.DefaultOptions(),
	}
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return s, nil
	}
	cfg, err := config.LoadCodecConfig(path)
	if err != nil {
		return setup{}, err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return setup{}, err
	}
	s.reg = reg
	s.policy.MaxValidityYears = cfg.Policy.MaxValidityYears
	s.opts.CompensatedOffsets = cfg.Encoder.CompensatedOffsetsOrDefault()
	s.strict = cfg.Policy.Strict
	return s, nil
}
