package main

import (
	"fmt"

	"github.com/SabihaEylul/nextjswebb/internal/repository"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/SabihaEylul/nextjswebb/internal/service"
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Manage back-office accounts",
	}
	admin.AddCommand(newAdminCreateCmd())
	return admin
}

// newAdminCreateCmd bootstraps the first admin; over HTTP only a signed-in
// admin may register another.
func newAdminCreateCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadCLI()
			if err != nil {
				return err
			}

			srv, err := server.NewDatabaseOnly(cfg, &log, nil)
			if err != nil {
				return err
			}
			defer srv.DB.Close()

			repos := repository.NewRepositories(srv)
			auth := service.NewAuthService(repos.Admins, nil)

			created, err := auth.Register(log.WithContext(cmd.Context()), username, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created (%s)\n", created.Username, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password, at least 6 characters")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
