package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/client"
)

func pricesCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prices",
		Short: "Manage the server's reference price database",
	}
	root.AddCommand(
		pricesListCmd(),
		pricesStatsCmd(),
		pricesAddCmd(),
		pricesDeleteCmd(),
	)
	return root
}

func pricesListCmd() *cobra.Command {
	var params apiclient.ListPricesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List or search price entries",
		Example: `  pjctl prices list
  pjctl prices list --search galaxy --order-by price
  pjctl prices list --brand Apple --limit 10 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := newClient().ListPrices(context.Background(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, page)
			}
			if len(page.Prices) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No prices found.")
				return err
			}
			return printPriceTable(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().StringVar(&params.Search, "search", "", "match brand or model")
	cmd.Flags().StringVar(&params.Brand, "brand", "", "filter by brand")
	cmd.Flags().StringVar(&params.Category, "category", "", "filter by category")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum entries (server default 50)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "entries to skip")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort by key, price or last_updated")

	return cmd
}

func pricesStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show price database statistics",
		Example: `  pjctl prices stats`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := newClient().PriceStats(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, stats)
			}
			return printPriceStats(cmd.OutOrStdout(), stats)
		},
	}
}

func pricesAddCmd() *cobra.Command {
	var entry apiclient.PriceEntry

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace a price entry",
		Example: `  pjctl prices add --brand Apple --model "iPhone 13" --price 20000
  pjctl prices add --brand Dell --model "XPS 15" --price 89999 --category laptop`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if entry.Brand == "" || entry.Model == "" {
				return fmt.Errorf("--brand and --model are required")
			}
			rec, err := newClient().UpsertPrice(context.Background(), &entry)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, rec)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Price saved: %s (%s %.2f)\n", rec.Key, rec.Currency, rec.Price)
			return err
		},
	}
	cmd.Flags().StringVar(&entry.Brand, "brand", "", "product brand")
	cmd.Flags().StringVar(&entry.Model, "model", "", "product model")
	cmd.Flags().Float64Var(&entry.Price, "price", 0, "new-item price")
	cmd.Flags().StringVar(&entry.Currency, "currency", "", "currency code (server default)")
	cmd.Flags().StringVar(&entry.Source, "source", "", "where the price came from")
	cmd.Flags().StringVar(&entry.Category, "category", "", "product category")

	return cmd
}

func pricesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <brand> <model>",
		Short:   "Delete a price entry",
		Example: `  pjctl prices delete Apple "iPhone 13"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeletePrice(context.Background(), args[0], args[1]); err != nil {
				if apiclient.IsNotFound(err) {
					return fmt.Errorf("no price entry for %s %s", args[0], args[1])
				}
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Price for %s %s deleted.\n", args[0], args[1])
			return err
		},
	}
}

func cacheCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cache",
		Short: "Maintain the server's web search price cache",
	}
	root.AddCommand(
		&cobra.Command{
			Use:     "purge",
			Short:   "Remove expired cache entries",
			Example: `  pjctl cache purge`,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCache(cmd, (*apiclient.Client).PurgeCache, "expired cache entries")
			},
		},
		&cobra.Command{
			Use:     "clear",
			Short:   "Remove every cache entry",
			Example: `  pjctl cache clear`,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCache(cmd, (*apiclient.Client).ClearCache, "cache entries")
			},
		},
	)
	return root
}

func runCache(
	cmd *cobra.Command,
	call func(*apiclient.Client, context.Context) (*apiclient.CacheResult, error),
	what string,
) error {
	res, err := call(newClient(), context.Background())
	if err != nil {
		return err
	}
	if jsonOutput() {
		return outputJSON(cmd, res)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d %s.\n", res.Removed, what)
	return err
}
