package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-nest/internal/config"
	"github.com/jonathan/resume-nest/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return db.Migrate(commandContext(cmd), cfg.Database.URL, config.NewLogger(cfg.Log))
}
