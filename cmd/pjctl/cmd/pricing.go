package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/client"
)

// priceFlags are the inputs of every pricing command.
type priceFlags struct {
	productFlags
	cvFile         string
	referencePrice float64
}

func (p *priceFlags) register(cmd *cobra.Command) {
	p.productFlags.register(cmd)
	cmd.Flags().StringVar(&p.cvFile, "cv-file", "", "condition record JSON file, or - for stdin (required)")
	cmd.Flags().Float64Var(&p.referencePrice, "reference-price", 0, "new-item price, skipping the lookup")
}

func (p *priceFlags) request(cmd *cobra.Command) (*apiclient.PriceRequest, error) {
	if p.cvFile == "" {
		return nil, fmt.Errorf("--cv-file is required")
	}
	record, err := readJSONObject(cmd, p.cvFile)
	if err != nil {
		return nil, err
	}
	req := &apiclient.PriceRequest{
		Brand:    p.brand,
		Model:    p.model,
		Category: p.category,
		CVOutput: record,
	}
	if cmd.Flags().Changed("reference-price") {
		ref := p.referencePrice
		req.ReferencePrice = &ref
	}
	return req, nil
}

func calculateCmd() *cobra.Command {
	var flags priceFlags

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Price a used item from its condition record",
		Long: "Sends a condition record to the API and prints the used price with the\n" +
			"discount breakdown. Without --reference-price the server looks the new\n" +
			"price up in its database, cache and web search, in that order.",
		Example: `  pjctl calculate --brand Apple --model "iPhone 13" --cv-file cv.json
  pjctl calculate --brand Canon --model "EOS 80D" --cv-file cv.json --reference-price 1000
  cat cv.json | pjctl calculate --brand Apple --model "iPhone 13" --cv-file - --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.require(); err != nil {
				return err
			}
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			result, err := newClient().CalculatePrice(context.Background(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, result)
			}
			return printPricing(cmd.OutOrStdout(), result)
		},
	}
	flags.register(cmd)

	return cmd
}

func explainCmd() *cobra.Command {
	var (
		flags       priceFlags
		format      string
		pricingFile string
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain how a used price was reached",
		Example: `  pjctl explain --brand Apple --model "iPhone 13" --cv-file cv.json
  pjctl explain --brand Apple --model "iPhone 13" --cv-file cv.json --format bullets
  pjctl explain --cv-file cv.json --pricing-file pricing.json --format short`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			explainReq := &apiclient.ExplainRequest{PriceRequest: *req, Format: format}
			if pricingFile != "" {
				if explainReq.PricingData, err = readJSONObject(cmd, pricingFile); err != nil {
					return err
				}
			}
			result, err := newClient().Explain(context.Background(), explainReq)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, result)
			}
			return printExplanation(cmd.OutOrStdout(), result)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "full", "explanation format (full, short, bullets)")
	cmd.Flags().StringVar(&pricingFile, "pricing-file", "", "previously computed pricing JSON to explain")

	return cmd
}

func reportCmd() *cobra.Command {
	var (
		flags  priceFlags
		useLLM bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown pricing report",
		Long: "Prices the item and prints a markdown report. With --llm the server asks\n" +
			"its configured LLM backend and falls back to the template report.",
		Example: `  pjctl report --brand Apple --model "iPhone 13" --cv-file cv.json
  pjctl report --brand Apple --model "iPhone 13" --cv-file cv.json --llm > report.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.require(); err != nil {
				return err
			}
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			result, err := newClient().Report(context.Background(), &apiclient.ReportRequest{
				PriceRequest: *req,
				UseLLM:       useLLM,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, result)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Report)
			if err == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "generated by %s (backend %s)\n",
					result.Metadata.GeneratedBy, result.Metadata.Backend)
			}
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&useLLM, "llm", false, "ask the LLM backend for the report")

	return cmd
}

func validateCmd() *cobra.Command {
	var cvFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a condition record without pricing it",
		Example: `  pjctl validate --cv-file cv.json
  cat cv.json | pjctl validate --cv-file -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cvFile == "" {
				return fmt.Errorf("--cv-file is required")
			}
			record, err := readJSONObject(cmd, cvFile)
			if err != nil {
				return err
			}
			result, err := newClient().ValidateCV(context.Background(), record)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			if result.Valid {
				_, err = fmt.Fprintln(out, "Condition record is valid.")
				return err
			}
			fmt.Fprintf(out, "Condition record is invalid (%d errors):\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Fprintf(out, "  - %s\n", e)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cvFile, "cv-file", "", "condition record JSON file, or - for stdin (required)")

	return cmd
}
