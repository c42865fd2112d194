package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/campus-api/internal/config"
	"github.com/aanand-mishra/campus-api/internal/logger"
	"github.com/aanand-mishra/campus-api/internal/storage/database"
)

var dropFirst bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema and exit",
	Long: `Creates the books, beverages, orders and students tables if they
do not exist yet. The server does the same on start-up; this command is
for preparing a database ahead of a deploy.

With --drop-first every table is dropped and recreated. ALL DATA IS LOST.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "drop existing tables before creating them")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.Env)

	// database.New already creates missing tables.
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("initialise storage: %w", err)
	}
	defer db.Close()

	if dropFirst {
		log.Warn("dropping tables")
		if err := db.Drop(); err != nil {
			return err
		}
		if err := db.Migrate(); err != nil {
			return err
		}
	}

	log.Info("schema ready", slog.String("driver", cfg.Storage.Driver))
	return nil
}
