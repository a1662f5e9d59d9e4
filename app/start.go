package app

import (
	"github.com/spf13/cobra"

	"github.com/lensfolio/lensfolio/internal/daemon"
	"github.com/lensfolio/lensfolio/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	devMode      bool
	browseStatic bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the lensfolio web service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Close()

			if devMode {
				cfg.DevMode = true
			}

			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			d, err := daemon.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
