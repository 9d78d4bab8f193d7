package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// markdownTmpl asks for a customer-facing markdown pricing report.
const markdownTmpl = `Generate a professional pricing report for a used product listing.

PRODUCT INFORMATION:
- Brand: {{.Brand}}
- Model: {{.Model}}
- Condition: {{.Condition.OverallCondition}} ({{.Condition.ConditionScore}}/10)
- Detected Issues: {{len .Condition.DetectedIssues}} issues found
{{- if .Condition.DetectedIssues}}

ISSUES DETECTED:
{{- range .Condition.DetectedIssues}}
- {{title (print .Severity)}} {{.Type}} on {{.Location}}
{{- end}}
{{- end}}

PRICING ANALYSIS:
- Original New Price: {{.Currency}} {{money .Pricing.ReferenceNewPrice}}
- Calculated Used Price: {{.Currency}} {{money .Pricing.CalculatedUsedPrice}}
- Discount: {{.Pricing.DiscountPercentage}}%
- Price Source: {{.Pricing.PriceMetadata.Source}}
{{- with .Pricing.SearchDetails}}

MARKET RESEARCH:
- Total Results Found: {{.TotalResults}}
- Stores Checked: {{join .StoresFound ", "}}
- Price Range: {{$.Currency}} {{money0 .PriceRange.Min}} - {{money0 .PriceRange.Max}}
{{- with .BestDeal}}
- Best Deal: {{.Store}} at {{$.Currency}} {{money .Price}}
{{- end}}
{{- end}}

TASK:
Write a professional, customer-friendly report (3-4 paragraphs) that:
1. Describes the product condition honestly
2. Explains the pricing logic clearly
3. Highlights the value proposition
4. Builds buyer confidence

Use a warm, trustworthy tone. Be specific about the condition issues but emphasize the fair pricing.
Write in English. Format with markdown.`

// bilingualTmpl asks for matching English and Arabic valuation reports.
const bilingualTmpl = `You are a professional technology reviewer. Write a detailed valuation report.

--- TECHNICAL SPECS ---
{{- range specLines .Specs}}
- {{.}}
{{- end}}

--- CONTEXT ---
Product: {{.ProductName}}
Usage: {{.Condition.UsageYears}} years | Condition: {{.Condition.OverallCondition}}
Market Price: {{.Currency}} {{money .Pricing.CalculatedUsedPrice}}

TASK:
1. Write 3 long, professional paragraphs in English under [REPORT_EN].
2. Describe how the specs justify the fair price.
3. Write 3 matching paragraphs in Arabic under [REPORT_AR] using professional terms.`

var funcs = template.FuncMap{
	"money":     func(v float64) string { return formatAmount(v, 2) },
	"money0":    func(v float64) string { return formatAmount(v, 0) },
	"join":      strings.Join,
	"title":     title,
	"specLines": specLines,
}

var (
	markdownTemplate  = template.Must(template.New("markdown").Funcs(funcs).Parse(markdownTmpl))
	bilingualTemplate = template.Must(template.New("bilingual").Funcs(funcs).Parse(bilingualTmpl))
)

// RenderMarkdownPrompt renders the markdown report prompt.
func RenderMarkdownPrompt(in Input) (string, error) {
	return render(markdownTemplate, in)
}

// RenderBilingualPrompt renders the English/Arabic report prompt.
func RenderBilingualPrompt(in Input) (string, error) {
	return render(bilingualTemplate, in)
}

func render(t *template.Template, in Input) (string, error) {
	if in.Pricing == nil {
		return "", fmt.Errorf("rendering %s prompt: missing pricing", t.Name())
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, in.withDefaults()); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func formatAmount(v float64, decimals int) string {
	return message.NewPrinter(language.English).Sprintf("%.*f", decimals, v)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// specLines renders specifications as sorted "key: value" lines.
func specLines(specs *domain.ProductSpecs) []string {
	if specs == nil {
		return nil
	}
	lines := make([]string, 0, len(specs.Specifications))
	for k, v := range specs.Specifications {
		lines = append(lines, k+": "+v)
	}
	sort.Strings(lines)
	return lines
}
