package report

import (
	"fmt"
	"strings"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
)

// FallbackMarkdown renders the template markdown report used when no LLM is
// available.
func FallbackMarkdown(in Input) string {
	in = in.withDefaults()
	p := in.Pricing
	if p == nil {
		return fmt.Sprintf("# %s - Pricing Report\n\nPricing data is not available.\n", in.ProductName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Pricing Report\n\n", in.ProductName)
	b.WriteString("## Product Condition\n")
	fmt.Fprintf(&b, "This %s is in **%s** condition. ", in.ProductName, in.Condition.OverallCondition)

	issues := in.Condition.DetectedIssues
	if len(issues) > 0 {
		list := make([]string, len(issues))
		for i, issue := range issues {
			list[i] = fmt.Sprintf("%s %s on %s", issue.Severity, issue.Type, issue.Location)
		}
		fmt.Fprintf(&b, "Our inspection identified %d issue(s): %s.", len(issues), strings.Join(list, ", "))
	} else {
		b.WriteString("No significant issues were detected during inspection.")
	}

	discount := pricing.FormatPercent(p.DiscountPercentage)
	b.WriteString("\n\n## Pricing Analysis\n")
	fmt.Fprintf(&b, "- **Original Price:** %s %s\n", in.Currency, formatAmount(p.ReferenceNewPrice, 2))
	fmt.Fprintf(&b, "- **Used Price:** %s %s\n", in.Currency, formatAmount(p.CalculatedUsedPrice, 2))
	fmt.Fprintf(&b, "- **You Save:** %s (%s %s)\n", discount, in.Currency,
		formatAmount(p.ReferenceNewPrice-p.CalculatedUsedPrice, 2))
	for _, line := range pricing.Explain(p.DiscountBreakdown) {
		fmt.Fprintf(&b, "  - %s\n", line)
	}

	b.WriteString("\n## Value Proposition\n")
	fmt.Fprintf(&b, "%s. This pricing reflects the actual condition of the device. "+
		"The %s discount accounts for the used condition while staying transparent about the product state.\n",
		pricing.ValueProposition(p.DiscountPercentage), discount)

	b.WriteString("\n## Recommendation\n")
	fmt.Fprintf(&b, "This is a solid opportunity for buyers looking for %s products at competitive prices.\n", in.Brand)
	return b.String()
}

func fallbackEnglish(in Input) string {
	var b strings.Builder
	b.WriteString("Professional Valuation Report\n")
	fmt.Fprintf(&b, "Product: %s\n", in.ProductName)
	if in.Pricing != nil {
		fmt.Fprintf(&b, "Price: %s %s\n", in.Currency, formatAmount(in.Pricing.CalculatedUsedPrice, 2))
	}
	fmt.Fprintf(&b, "Condition: %s\n", in.Condition.OverallCondition)
	b.WriteString("Specs:")
	for _, line := range specLines(in.Specs) {
		b.WriteString("\n• " + line)
	}
	return b.String()
}

func fallbackArabic(in Input) string {
	currency := in.Currency
	if strings.EqualFold(currency, "EGP") {
		currency = "جنيه مصري"
	}

	var b strings.Builder
	b.WriteString("تقرير التقييم الاحترافي\n")
	fmt.Fprintf(&b, "المنتج: %s\n", in.ProductName)
	if in.Pricing != nil {
		fmt.Fprintf(&b, "السعر المقدر: %s %s\n", formatAmount(in.Pricing.CalculatedUsedPrice, 2), currency)
	}
	b.WriteString("المواصفات:")
	for _, line := range specLines(in.Specs) {
		b.WriteString("\n• " + line)
	}
	return b.String()
}
