package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Prepare the price store",
		Long: "Applies pending SQL migrations for the postgres backend, or creates the\n" +
			"data directory for the json backend.",
		Example: `  pricing-justifier migrate --config configs/config.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdminApp(cmd, func(ctx context.Context, a *app) error {
				a.log.Info("running migrations", "backend", a.cfg.Storage.Backend)
				if err := a.store.Migrate(ctx); err != nil {
					return fmt.Errorf("running migrations: %w", err)
				}
				a.log.Info("migrations complete")
				return nil
			})
		},
	}
}
