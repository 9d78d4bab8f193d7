package pricing

import (
	"math"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/condition"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

const (
	// MaxDepreciation is the ceiling on the total discount, in percent.
	MaxDepreciation = 85.0
	// MaxDamageDepreciation caps the damage component, in percentage points.
	MaxDamageDepreciation = 30.0
)

// Breakdown factor names.
const (
	FactorUsage     = "usage"
	FactorCondition = "condition"
	FactorDamage    = "damage"
)

// usageSteps is the usage staircase: items younger than Below years lose
// Percent. Older items fall through to the last step.
var usageSteps = []struct {
	Below   float64
	Percent float64
}{
	{Below: 0.5, Percent: 10},
	{Below: 1, Percent: 15},
	{Below: 2, Percent: 25},
	{Below: 3, Percent: 35},
	{Below: math.Inf(1), Percent: 45},
}

var conditionDepreciation = map[domain.Condition]float64{
	domain.ConditionExcellent: 0,
	domain.ConditionGood:      5,
	domain.ConditionFair:      10,
	domain.ConditionPoor:      15,
}

// UsageDepreciation returns the usage component for the given age.
func UsageDepreciation(usageYears float64) float64 {
	for _, step := range usageSteps {
		if usageYears < step.Below {
			return step.Percent
		}
	}
	return usageSteps[len(usageSteps)-1].Percent
}

// ConditionDepreciation returns the condition component; unknown conditions
// are priced as good.
func ConditionDepreciation(c domain.Condition) float64 {
	if d, ok := conditionDepreciation[c]; ok {
		return d
	}
	return conditionDepreciation[domain.ConditionGood]
}

// DamageDepreciation scales the aggregate discount impact to percentage
// points. When the impact is zero but issues exist, it is recomputed from the
// issues. The result is capped at MaxDamageDepreciation.
func DamageDepreciation(summary domain.ConditionSummary) float64 {
	damage := summary.TotalDiscountImpact * 100
	if damage <= 0 && len(summary.DetectedIssues) > 0 {
		for _, issue := range summary.DetectedIssues {
			damage += condition.ImpactWeight(issue.Severity) * 100
		}
	}
	return round2(math.Min(math.Max(damage, 0), MaxDamageDepreciation))
}

// Depreciation returns the capped total discount and its per-factor
// breakdown.
func Depreciation(summary domain.ConditionSummary) (float64, map[string]float64) {
	breakdown := map[string]float64{
		FactorUsage:     UsageDepreciation(summary.UsageYears),
		FactorCondition: ConditionDepreciation(summary.OverallCondition),
		FactorDamage:    DamageDepreciation(summary),
	}

	total := breakdown[FactorUsage] + breakdown[FactorCondition] + breakdown[FactorDamage]
	total = math.Min(math.Max(total, 0), MaxDepreciation)
	return round2(total), breakdown
}

// UsedPrice applies a discount to a reference price.
func UsedPrice(reference, discount float64) float64 {
	return round2(reference * (1 - discount/100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
