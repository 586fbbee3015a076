package main

import (
	"github.com/SabihaEylul/nextjswebb/internal/repository"
	"github.com/SabihaEylul/nextjswebb/internal/seed"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default services and products that are missing",
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

			result, err := seed.Run(cmd.Context(), &log, repos.Services, repos.Products)
			if err != nil {
				return err
			}

			log.Info().
				Int("services_created", result.ServicesCreated).
				Int("services_skipped", result.ServicesSkipped).
				Int("products_created", result.ProductsCreated).
				Int("products_skipped", result.ProductsSkipped).
				Msg("seed finished")

			return nil
		},
	}
}
