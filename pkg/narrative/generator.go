package narrative

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/features"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// MaxDescribedIssues bounds how many issues a text rendering mentions.
const MaxDescribedIssues = 3

// Generator renders condition and pricing facts as text.
type Generator struct {
	templates *Templates
	currency  string
	lang      language.Tag
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTemplates replaces the phrase tables.
func WithTemplates(t *Templates) GeneratorOption {
	return func(g *Generator) {
		if t != nil {
			g.templates = t
		}
	}
}

// WithCurrency sets the currency used when a pricing result names none.
func WithCurrency(currency string) GeneratorOption {
	return func(g *Generator) {
		if currency != "" {
			g.currency = currency
		}
	}
}

// NewGenerator creates a Generator with the default templates.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		templates: DefaultTemplates(),
		currency:  pricing.DefaultCurrency,
		lang:      language.English,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Templates returns the phrase tables in use.
func (g *Generator) Templates() *Templates {
	return g.templates
}

// Report renders every text form of a priced item. Every renderer accepts a
// nil price and then describes the condition only.
func (g *Generator) Report(cond domain.ConditionSummary, price *domain.PricingResult) domain.ReportText {
	out := domain.ReportText{
		FullExplanation: g.FullExplanation(cond, price),
		ShortSummary:    g.ShortSummary(cond, price),
		BulletPoints:    g.BulletPoints(cond, price),
	}
	if price != nil {
		out.ValueProposition = pricing.ValueProposition(price.DiscountPercentage)
	}
	return out
}

// FullExplanation assembles the opening, issue description, price
// justification and optional closing. Empty clauses are left out.
func (g *Generator) FullExplanation(cond domain.ConditionSummary, price *domain.PricingResult) string {
	clauses := []string{
		sentence(g.templates.Opening(cond.OverallCondition)),
		g.IssueDescription(cond.DetectedIssues),
		g.PriceJustification(price),
	}
	if price != nil {
		if closing, ok := g.templates.Closing(price.DiscountPercentage); ok {
			clauses = append(clauses, closing)
		}
	}

	parts := clauses[:0]
	for _, c := range clauses {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// IssueDescription describes up to MaxDescribedIssues prioritized issues.
// It returns "" when there are none.
func (g *Generator) IssueDescription(issues []domain.ConditionIssue) string {
	top := features.PrioritizeIssues(issues, MaxDescribedIssues)
	if len(top) == 0 {
		return ""
	}

	phrases := make([]string, 0, len(top))
	for _, issue := range top {
		phrases = append(phrases, g.describeIssue(issue))
	}
	return fmt.Sprintf("%s %s.", issuePrefix(features.SeverityDistribution(issues)), FormatMultipleIssues(phrases))
}

// PriceJustification states the discount and resulting price.
func (g *Generator) PriceJustification(price *domain.PricingResult) string {
	if price == nil {
		return ""
	}
	currency := g.currencyOf(price)
	return fmt.Sprintf("%s, with the price reduced to %s (%s off the original %s).",
		g.templates.DiscountExplanation(price.DiscountPercentage),
		g.FormatPrice(price.CalculatedUsedPrice, currency),
		FormatPercentage(price.DiscountPercentage),
		g.FormatPrice(price.ReferenceNewPrice, currency),
	)
}

// ShortSummary renders the condition, the most critical issue and the
// discount in about one sentence.
func (g *Generator) ShortSummary(cond domain.ConditionSummary, price *domain.PricingResult) string {
	head := capitalize(string(cond.OverallCondition)) + " condition"
	if issue, ok := features.MostCriticalIssue(cond.DetectedIssues); ok {
		head += " with " + g.templates.IssuePhrase(issue.Type, issue.Severity)
	}
	if price == nil {
		return head + "."
	}
	return fmt.Sprintf("%s. Priced %s below retail.", head, FormatPercentage(price.DiscountPercentage))
}

// BulletPoints renders one fact per line: the condition, a note per
// prioritized issue and the price.
func (g *Generator) BulletPoints(cond domain.ConditionSummary, price *domain.PricingResult) []string {
	bullets := []string{"Condition: " + capitalize(string(cond.OverallCondition))}
	for _, issue := range features.PrioritizeIssues(cond.DetectedIssues, MaxDescribedIssues) {
		bullets = append(bullets, "Note: "+capitalize(g.describeIssue(issue)))
	}
	if price == nil {
		return bullets
	}
	bullets = append(bullets, fmt.Sprintf("Price: %s (%s discount)",
		g.FormatPrice(price.CalculatedUsedPrice, g.currencyOf(price)),
		FormatPercentage(price.DiscountPercentage),
	))
	return bullets
}

// FormatPrice renders an amount with thousands separators. US dollars use the
// "$" symbol; other currencies are prefixed with their code.
func (g *Generator) FormatPrice(amount float64, currency string) string {
	n := message.NewPrinter(g.lang).Sprintf("%.2f", amount)
	switch strings.ToUpper(currency) {
	case "USD", "$":
		return "$" + n
	case "":
		return g.currency + " " + n
	default:
		return strings.ToUpper(currency) + " " + n
	}
}

// FormatPercentage renders a percentage ("22%", "12.5%").
func FormatPercentage(v float64) string {
	return pricing.FormatPercent(v)
}

// FormatMultipleIssues joins phrases with natural list grammar: "a",
// "a and b", "a, b, and c".
func FormatMultipleIssues(phrases []string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	case 2:
		return phrases[0] + " and " + phrases[1]
	default:
		return strings.Join(phrases[:len(phrases)-1], ", ") + ", and " + phrases[len(phrases)-1]
	}
}

func (g *Generator) describeIssue(issue domain.ConditionIssue) string {
	phrase := g.templates.IssuePhrase(issue.Type, issue.Severity)
	if loc := g.templates.LocationPhrase(issue.Location); loc != "" {
		phrase += " " + loc
	}
	return phrase
}

func (g *Generator) currencyOf(price *domain.PricingResult) string {
	if price.PriceMetadata.Currency != "" {
		return price.PriceMetadata.Currency
	}
	return g.currency
}

func issuePrefix(dist map[domain.Severity]int) string {
	switch {
	case dist[domain.SeveritySevere]+dist[domain.SeverityCritical] > 0:
		return "Notable defects include"
	case dist[domain.SeverityModerate] > 0:
		return "The item shows"
	default:
		return "Minor imperfections include"
	}
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
