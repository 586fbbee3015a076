// Command salon runs the salon storefront and back-office API and its
// maintenance tasks.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/SabihaEylul/nextjswebb/internal/config"
	"github.com/SabihaEylul/nextjswebb/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "salon",
		Short:         "Salon storefront and back-office API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newAdminCmd(),
		newEmailCmd(),
	)

	return root
}

// loadCLI reads the configuration and builds a logger without APM, for
// the one-shot commands.
func loadCLI() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger.NewLogger(cfg.Observability.GetLogLevel(), cfg.IsProduction()), nil
}
