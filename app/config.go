package app

import (
	"github.com/spf13/cobra"

	"github.com/lensfolio/lensfolio/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	asJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			redacted := config.Redacted(cfg)

			var out string
			if asJSON {
				out, err = config.DumpConfigJSON(&redacted)
			} else {
				out, err = config.DumpConfig(&redacted)
			}

			if err != nil {
				return err
			}

			cmd.Print(out)

			return nil
		},
	}
)
