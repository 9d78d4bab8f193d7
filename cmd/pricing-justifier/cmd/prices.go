package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/cli"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/store"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func pricesCmd() *cobra.Command {
	var jsonOut bool

	root := &cobra.Command{
		Use:   "prices",
		Short: "Manage the reference price database",
		Long: "Add, remove and inspect the new-item reference prices the calculator\n" +
			"looks up before the cache and web search tiers.",
	}
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON")

	root.AddCommand(
		pricesListCmd(&jsonOut),
		pricesAddCmd(&jsonOut),
		pricesDeleteCmd(),
		pricesStatsCmd(&jsonOut),
	)
	return root
}

func pricesListCmd(jsonOut *bool) *cobra.Command {
	var (
		q        store.PriceQuery
		brand    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List or search price entries",
		Example: `  pricing-justifier prices list
  pricing-justifier prices list --search iphone --order-by price
  pricing-justifier prices list --brand Samsung --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if brand != "" {
				q.Brand = &brand
			}
			if category != "" {
				q.Category = &category
			}
			return withAdminApp(cmd, func(ctx context.Context, a *app) error {
				records, total, err := a.engine.ListPrices(ctx, &q)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if *jsonOut {
					if records == nil {
						records = []domain.PriceRecord{}
					}
					return cli.OutputJSON(out, map[string]any{"prices": records, "total": total})
				}
				if len(records) == 0 {
					_, err := fmt.Fprintln(out, "No prices found.")
					return err
				}
				return printPriceTable(out, records, total)
			})
		},
	}
	cmd.Flags().StringVar(&q.Search, "search", "", "match brand or model")
	cmd.Flags().StringVar(&brand, "brand", "", "filter by brand")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().IntVar(&q.Limit, "limit", 50, "maximum entries to show")
	cmd.Flags().IntVar(&q.Offset, "offset", 0, "entries to skip")
	cmd.Flags().StringVar(&q.OrderBy, "order-by", "key", "sort by key, price or last_updated")

	return cmd
}

func pricesAddCmd(jsonOut *bool) *cobra.Command {
	var in engine.PriceInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace a price entry",
		Long: "Stores a new-item reference price under the normalized brand_model key.\n" +
			"An existing entry with the same key is replaced.",
		Example: `  pricing-justifier prices add --brand Apple --model "iPhone 13" --price 20000
  pricing-justifier prices add --brand Dell --model "XPS 15" --price 89999 \
    --category laptop --source "2B Egypt"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Brand == "" || in.Model == "" {
				return fmt.Errorf("--brand and --model are required")
			}
			return withAdminApp(cmd, func(ctx context.Context, a *app) error {
				rec, err := a.engine.UpsertPrice(ctx, in)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if *jsonOut {
					return cli.OutputJSON(out, rec)
				}
				_, err = fmt.Fprintf(out, "Price saved: %s (%s)\n", rec.Key, cli.Money(rec.Price, rec.Currency))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&in.Brand, "brand", "", "product brand")
	cmd.Flags().StringVar(&in.Model, "model", "", "product model")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "new-item price")
	cmd.Flags().StringVar(&in.Currency, "currency", "", "currency code (default from config)")
	cmd.Flags().StringVar(&in.Source, "source", "", "where the price came from (default Manual)")
	cmd.Flags().StringVar(&in.Category, "category", "", "product category")

	return cmd
}

func pricesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <brand> <model>",
		Short:   "Delete a price entry",
		Example: `  pricing-justifier prices delete Apple "iPhone 13"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.engine.DeletePrice(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Price for %s %s deleted.\n", args[0], args[1])
				return err
			})
		},
	}
}

func pricesStatsCmd(jsonOut *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show price database statistics",
		Example: `  pricing-justifier prices stats
  pricing-justifier prices stats --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdminApp(cmd, func(ctx context.Context, a *app) error {
				stats, err := a.engine.PriceStats(ctx)
				if err != nil {
					return err
				}
				if *jsonOut {
					return cli.OutputJSON(cmd.OutOrStdout(), stats)
				}
				return printPriceStats(cmd.OutOrStdout(), stats)
			})
		},
	}
}

func printPriceTable(w io.Writer, records []domain.PriceRecord, total int) error {
	tw := cli.NewTabWriter(w)
	tw.Writef("KEY\tBRAND\tMODEL\tPRICE\tCATEGORY\tSOURCE\tUPDATED\n")
	for i := range records {
		r := &records[i]
		tw.Writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Key,
			r.Brand,
			cli.Truncate(r.Model, 30),
			cli.Money(r.Price, r.Currency),
			orDash(r.Category),
			cli.Truncate(r.Source, 20),
			r.LastUpdated.Format("2006-01-02"),
		)
	}
	if total > len(records) {
		tw.Writef("\nShowing %d of %d entries.\n", len(records), total)
	}
	return tw.Finish()
}

func printPriceStats(w io.Writer, stats *domain.PriceStats) error {
	tw := cli.NewTabWriter(w)
	tw.Writef("Total products:\t%d\n", stats.TotalProducts)
	if stats.LastUpdated != nil {
		tw.Writef("Last updated:\t%s\n", stats.LastUpdated.Format("2006-01-02 15:04:05"))
	}
	writeCounts(tw, "By category:", stats.ByCategory)
	writeCounts(tw, "By brand:", stats.ByBrand)
	return tw.Finish()
}

func writeCounts(tw *cli.TabWriter, heading string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw.Writef("%s\n", heading)
	for _, k := range keys {
		tw.Writef("  %s\t%d\n", k, counts[k])
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
