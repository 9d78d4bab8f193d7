package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/client"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/cli"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func outputJSON(cmd *cobra.Command, v any) error {
	return cli.OutputJSON(cmd.OutOrStdout(), v)
}

func printPricing(w io.Writer, p *domain.PricingResult) error {
	if p == nil {
		return errors.New("response has no pricing")
	}
	cur := p.PriceMetadata.Currency
	tw := cli.NewTabWriter(w)
	if p.PriceMetadata.Brand != "" {
		tw.Writef("Product:\t%s %s\n", p.PriceMetadata.Brand, p.PriceMetadata.Model)
	}
	tw.Writef("Reference price:\t%s (%s)\n", cli.Money(p.ReferenceNewPrice, cur), p.PriceMetadata.Source)
	tw.Writef("Used price:\t%s\n", cli.Money(p.CalculatedUsedPrice, cur))
	tw.Writef("Discount:\t%g%%\n", p.DiscountPercentage)
	for _, k := range sortedKeys(p.DiscountBreakdown) {
		tw.Writef("  %s\t%g%%\n", k, p.DiscountBreakdown[k])
	}
	if m := p.SearchDetails; m != nil && m.BestDeal != nil {
		tw.Writef("Best deal:\t%s at %s\n", cli.Money(m.BestDeal.Price, cur), m.BestDeal.Store)
	}
	return tw.Finish()
}

func printExplanation(w io.Writer, e *engine.Explanation) error {
	var b strings.Builder
	switch text := e.Explanation.(type) {
	case string:
		b.WriteString(text)
		b.WriteString("\n")
	case []any:
		for _, line := range text {
			fmt.Fprintf(&b, "- %v\n", line)
		}
	}
	if e.ValueProposition != "" {
		fmt.Fprintf(&b, "\n%s\n", e.ValueProposition)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func printSearchResult(w io.Writer, r *apiclient.SearchResult) error {
	tw := cli.NewTabWriter(w)
	tw.Writef("Product:\t%s %s\n", r.Brand, r.Model)
	tw.Writef("Price:\t%s (%s)\n", cli.Money(r.Price, r.Currency), r.Source)
	if m := r.Market; m != nil {
		tw.Writef("Range:\t%s - %s\n", cli.Money(m.PriceRange.Min, r.Currency), cli.Money(m.PriceRange.Max, r.Currency))
		tw.Writef("Stores:\t%s\n", strings.Join(m.StoresFound, ", "))
		if m.BestDeal != nil {
			tw.Writef("Best deal:\t%s at %s\n", cli.Money(m.BestDeal.Price, r.Currency), m.BestDeal.Store)
		}
		if len(m.Results) > 0 {
			tw.Writef("\nSTORE\tPRICE\tTITLE\n")
			for _, o := range m.Results {
				tw.Writef("%s\t%s\t%s\n", o.Store, cli.Money(o.Price, r.Currency), cli.Truncate(o.Title, 50))
			}
		}
	}
	return tw.Finish()
}

func printSpecs(w io.Writer, s *domain.ProductSpecs) error {
	tw := cli.NewTabWriter(w)
	tw.Writef("Product:\t%s\n", s.ProductName)
	tw.Writef("Status:\t%s\n", s.ExtractionStatus)
	for _, k := range sortedKeys(s.Specifications) {
		tw.Writef("%s:\t%s\n", k, s.Specifications[k])
	}
	return tw.Finish()
}

func printWorkflow(w io.Writer, r *engine.WorkflowResult) error {
	tw := cli.NewTabWriter(w)
	tw.Writef("Product:\t%s (%s)\n", r.ProductInfo.Name, orDash(r.ProductInfo.Type))
	tw.Writef("Condition:\t%s (score %g, %d issues)\n",
		r.CVAnalysis.OverallCondition, r.CVAnalysis.ConditionScore, len(r.CVAnalysis.DetectedIssues))
	tw.Writef("Price source:\t%s\n", r.DataSource)
	if err := tw.Finish(); err != nil {
		return err
	}
	if err := printPricing(w, r.Pricing); err != nil {
		return err
	}

	var b strings.Builder
	if !r.PricingValidation.Valid {
		b.WriteString("\nPrice checks failed:\n")
	}
	for _, warn := range r.PricingValidation.Warnings {
		fmt.Fprintf(&b, "  ! %s\n", warn)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(&b, "  ! %s\n", warn)
	}
	if r.Report.English != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Report.English)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func printPriceTable(w io.Writer, page *apiclient.PricesPage) error {
	tw := cli.NewTabWriter(w)
	tw.Writef("KEY\tBRAND\tMODEL\tPRICE\tCATEGORY\tUPDATED\n")
	for i := range page.Prices {
		p := &page.Prices[i]
		tw.Writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Key,
			p.Brand,
			cli.Truncate(p.Model, 30),
			cli.Money(p.Price, p.Currency),
			orDash(p.Category),
			p.LastUpdated.Format("2006-01-02"),
		)
	}
	if page.Total > len(page.Prices) {
		tw.Writef("\nShowing %d of %d entries.\n", len(page.Prices), page.Total)
	}
	return tw.Finish()
}

func printPriceStats(w io.Writer, s *domain.PriceStats) error {
	tw := cli.NewTabWriter(w)
	tw.Writef("Total products:\t%d\n", s.TotalProducts)
	if s.LastUpdated != nil {
		tw.Writef("Last updated:\t%s\n", s.LastUpdated.Format("2006-01-02 15:04:05"))
	}
	for _, group := range []struct {
		heading string
		counts  map[string]int
	}{
		{"By category:", s.ByCategory},
		{"By brand:", s.ByBrand},
	} {
		if len(group.counts) == 0 {
			continue
		}
		tw.Writef("%s\n", group.heading)
		for _, k := range sortedKeys(group.counts) {
			tw.Writef("  %s\t%d\n", k, group.counts[k])
		}
	}
	return tw.Finish()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
