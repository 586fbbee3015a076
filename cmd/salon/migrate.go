package main

import (
	"github.com/SabihaEylul/nextjswebb/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadCLI()
			if err != nil {
				return err
			}
			return database.Migrate(cmd.Context(), &log, cfg)
		},
	}
}
