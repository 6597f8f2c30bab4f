package main

import (
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/SscSPs/construction_billing_app/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Applies or reverts the database schema",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		if cfg.StorageDriver != config.StoragePostgres {
			return fmt.Errorf("migrations need STORAGE_DRIVER=%s", config.StoragePostgres)
		}
		direction := database.MigrateUp
		if len(args) == 1 {
			direction = database.MigrationDirection(args[0])
		}
		_, err = database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger)
		return err
	},
}
