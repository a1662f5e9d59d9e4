// Package app implements the lensfolio commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"./etc/",
		"directory holding main.toml",
	)
}

var (
	configPath string // directory of the configuration file

	rootCmd = &cobra.Command{
		Use:   "lensfolio",
		Short: "lensfolio serves a photographer's portfolio site",
		Long: `lensfolio serves a photographer's portfolio site with a photo gallery,
a contact form and an admin editor for the page content.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initializes the logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	return &cfg, nil
}
