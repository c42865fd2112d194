// Package cmd holds the command-line interface of campus-api.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "campus-api",
	Short: "CRUD API over books, beverages, orders and students",
	Long: `campus-api serves a JSON API over four tables (books, beverages,
orders and students) backed by SQLite or MySQL.

Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the configuration YAML file (default: $CONFIG_PATH, then environment only)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
