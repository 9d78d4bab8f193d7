package pricing

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

var factorLabels = map[string]string{
	FactorUsage:     "for age and usage",
	FactorCondition: "for overall condition",
	FactorDamage:    "for physical damage",
}

var factorOrder = []string{FactorUsage, FactorCondition, FactorDamage}

// valuePropositions are ordered by ascending upper bound; the last bucket is
// open-ended.
var valuePropositions = []struct {
	Below float64
	Text  string
}{
	{Below: 15, Text: "Premium condition with minimal wear"},
	{Below: 30, Text: "Good value for a well-maintained item"},
	{Below: 50, Text: "Significant savings on a functional item"},
	{Below: math.Inf(1), Text: "Maximum savings for budget-conscious buyers"},
}

// marketTolerance is the band, in percent, treated as at-market.
const marketTolerance = 10.0

// Explain renders one line per non-zero discount factor, known factors first
// in usage, condition, damage order.
func Explain(breakdown map[string]float64) []string {
	lines := make([]string, 0, len(breakdown))
	for _, name := range orderedFactors(breakdown) {
		pct := breakdown[name]
		if pct <= 0 {
			continue
		}
		label, ok := factorLabels[name]
		if !ok {
			label = "for " + strings.ReplaceAll(name, "_", " ")
		}
		lines = append(lines, FormatPercent(pct)+" "+label)
	}
	return lines
}

// ValueProposition maps a discount percentage to a buyer-facing statement.
func ValueProposition(discount float64) string {
	for _, vp := range valuePropositions {
		if discount < vp.Below {
			return vp.Text
		}
	}
	return valuePropositions[len(valuePropositions)-1].Text
}

// BreakdownText summarizes the factors behind a total discount in one
// sentence.
func BreakdownText(total float64, breakdown map[string]float64) string {
	lines := Explain(breakdown)
	if len(lines) == 0 {
		return "No discount factors applied."
	}
	return fmt.Sprintf("The %s discount consists of: %s.", FormatPercent(total), strings.Join(lines, ", "))
}

// CompareToMarket positions a used price against a market average. The
// boolean is false when no market average is known.
func CompareToMarket(usedPrice float64, marketAverage *float64) (string, bool) {
	if marketAverage == nil || *marketAverage <= 0 {
		return "", false
	}
	diff := (usedPrice - *marketAverage) / *marketAverage * 100
	switch {
	case diff < -marketTolerance:
		return fmt.Sprintf("This price is %.0f%% below market average", math.Abs(math.Round(diff))), true
	case diff > marketTolerance:
		return fmt.Sprintf("This price is %.0f%% above market average", math.Round(diff)), true
	default:
		return "This price is competitive with market average", true
	}
}

// Explanation renders a one-line account of a pricing breakdown.
func Explanation(total float64, breakdown map[string]float64) string {
	parts := []string{
		FormatPercent(breakdown[FactorUsage]) + " for age",
		FormatPercent(breakdown[FactorCondition]) + " for condition",
		FormatPercent(breakdown[FactorDamage]) + " for physical damage",
	}
	return fmt.Sprintf("Breakdown: %s. Total discount: %.0f%%", strings.Join(parts, ", "), total)
}

// FormatPercent renders a percentage with at most one decimal ("22%",
// "12.5%").
func FormatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64) + "%"
}

func orderedFactors(breakdown map[string]float64) []string {
	names := make([]string, 0, len(breakdown))
	var extra []string
	for _, name := range factorOrder {
		if _, ok := breakdown[name]; ok {
			names = append(names, name)
		}
	}
	for name := range breakdown {
		if _, known := factorLabels[name]; !known {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}
