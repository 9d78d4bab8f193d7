package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/client"
)

func workflowCmd() *cobra.Command {
	var (
		req          apiclient.WorkflowRequest
		analysisFile string
	)

	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Run the full inspection to price workflow",
		Long: "Sends per-view inspection results for a product and prints the condition\n" +
			"summary, price, sanity checks and the report. The analysis file holds one\n" +
			"condition record per camera view, keyed by view name.",
		Example: `  pjctl workflow --name "Apple iPhone 13" --type phone --analysis-file views.json
  pjctl workflow --name "Apple iPhone 13" --type phone --usage-years 1.5 \
    --analysis-file views.json --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(req.ProductName) == "" {
				return fmt.Errorf("--name is required")
			}
			if analysisFile == "" {
				return fmt.Errorf("--analysis-file is required")
			}
			analysis, err := readJSONObject(cmd, analysisFile)
			if err != nil {
				return err
			}
			req.AnalysisResults = analysis

			result, err := newClient().CVToPricing(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, result)
			}
			return printWorkflow(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&req.ProductName, "name", "", "product name, brand first (required)")
	cmd.Flags().StringVar(&req.ProductType, "type", "", "product type (phone, laptop, ...)")
	cmd.Flags().Float64Var(&req.UsageYears, "usage-years", 0, "years the item has been used")
	cmd.Flags().StringVar(&analysisFile, "analysis-file", "", "per-view analysis JSON file, or - for stdin (required)")

	return cmd
}

func quickCmd() *cobra.Command {
	var req apiclient.QuickPriceRequest

	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Quick price assuming good condition",
		Example: `  pjctl quick --name "Samsung Galaxy S21"
  pjctl quick --name "Samsung Galaxy S21" --usage-years 2.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(req.ProductName) == "" {
				return fmt.Errorf("--name is required")
			}
			result, err := newClient().PricingOnly(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, result)
			}
			return printPricing(cmd.OutOrStdout(), result.Pricing)
		},
	}
	cmd.Flags().StringVar(&req.ProductName, "name", "", "product name, brand first (required)")
	cmd.Flags().StringVar(&req.ProductType, "type", "", "product type (phone, laptop, ...)")
	cmd.Flags().Float64Var(&req.UsageYears, "usage-years", 0, "years the item has been used")

	return cmd
}
