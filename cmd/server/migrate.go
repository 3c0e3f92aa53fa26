package main

import (
	"github.com/blues/adagency/internal/database"
	"github.com/blues/adagency/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := database.Init(cfg.Database); err != nil {
			return err
		}
		logger.Info("Migrated %d tables", len(database.Models))
		return nil
	},
}
