package app

import (
	"github.com/spf13/cobra"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/daemon"
	"github.com/lensfolio/lensfolio/internal/db"
	"github.com/lensfolio/lensfolio/internal/logger"
)

func init() { //nolint: gochecknoinits
	populateCmd.Flags().BoolVar(&force, "force", false, "Overwrite existing documents")

	rootCmd.AddCommand(populateCmd)
}

var (
	force bool

	populateCmd = &cobra.Command{
		Use:   "populate",
		Short: "Write the default content documents into the content store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Close()

			gdb, err := db.Open(cfg)
			if err != nil {
				return err
			}

			if sqlDB, err := gdb.DB(); err == nil {
				defer sqlDB.Close() //nolint:errcheck
			}

			store, err := daemon.OpenContentStore(cfg, gdb)
			if err != nil {
				return err
			}

			written, err := content.Populate(cmd.Context(), store, force)
			if err != nil {
				return err
			}

			if len(written) == 0 {
				cmd.Println("all documents exist, use --force to overwrite them")
				return nil
			}

			for _, t := range written {
				cmd.Printf("wrote %s\n", t)
			}

			return nil
		},
	}
)
