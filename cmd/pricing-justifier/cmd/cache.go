package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func cacheCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cache",
		Short: "Maintain the web search price cache",
	}
	root.AddCommand(cachePurgeCmd(), cacheClearCmd())
	return root
}

func cachePurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "purge",
		Short:   "Remove expired cache entries",
		Long:    "Removes cached web search prices older than cache.expiry_days.",
		Example: `  pricing-justifier cache purge`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdminApp(cmd, func(ctx context.Context, a *app) error {
				n, err := a.engine.PurgeExpiredCache(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired cache entries.\n", n)
				return err
			})
		},
	}
}

func cacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   "Remove every cache entry",
		Example: `  pricing-justifier cache clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdminApp(cmd, func(ctx context.Context, a *app) error {
				n, err := a.engine.ClearCache(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cache entries.\n", n)
				return err
			})
		},
	}
}
