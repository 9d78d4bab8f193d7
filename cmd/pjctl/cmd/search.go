package cmd

import (
	"context"

	"github.com/spf13/cobra"

	apiclient "github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/client"
)

func searchCmd() *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search online retailers for a new-item price",
		Long: "Asks the server to run a live web price search and prints the median\n" +
			"price with the offers found. Requires SERPAPI_KEY on the server.",
		Example: `  pjctl search --brand Apple --model "iPhone 13"
  pjctl search --brand Dell --model "XPS 15" --category laptop --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.require(); err != nil {
				return err
			}
			result, err := newClient().SearchPrice(context.Background(), &apiclient.Product{
				Brand:    flags.brand,
				Model:    flags.model,
				Category: flags.category,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, result)
			}
			return printSearchResult(cmd.OutOrStdout(), result)
		},
	}
	flags.register(cmd)

	return cmd
}

func specsCmd() *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "specs",
		Short: "Look up product specifications",
		Example: `  pjctl specs --brand Samsung --model "Galaxy S21"
  pjctl specs --brand Dell --model "XPS 15" --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.require(); err != nil {
				return err
			}
			specs, err := newClient().ExtractSpecs(context.Background(), &apiclient.Product{
				Brand:    flags.brand,
				Model:    flags.model,
				Category: flags.category,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, specs)
			}
			return printSpecs(cmd.OutOrStdout(), specs)
		},
	}
	flags.register(cmd)

	return cmd
}
