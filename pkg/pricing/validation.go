package pricing

import (
	"fmt"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// discountBands is the discount range considered plausible per condition.
var discountBands = map[domain.Condition]struct{ Min, Max float64 }{
	domain.ConditionExcellent: {Min: 5, Max: 45},
	domain.ConditionGood:      {Min: 10, Max: 60},
	domain.ConditionFair:      {Min: 20, Max: 75},
	domain.ConditionPoor:      {Min: 30, Max: MaxDepreciation},
}

// ValidatePricing sanity-checks a computed used price. It never fails;
// problems are reported as warnings and clear Valid.
func ValidatePricing(usedPrice, newPrice float64, marketPrice *float64, cond domain.Condition) domain.PricingValidation {
	v := domain.PricingValidation{Valid: true, Warnings: []string{}}

	if newPrice <= 0 {
		v.Valid = false
		v.Warnings = append(v.Warnings, "reference price must be greater than zero")
		return v
	}
	v.Discount = round2((newPrice - usedPrice) / newPrice * 100)

	if usedPrice > newPrice {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"used price %.2f exceeds the new price %.2f", usedPrice, newPrice))
	}
	if usedPrice < 0 {
		v.Warnings = append(v.Warnings, "used price is negative")
	}
	if v.Discount > MaxDepreciation {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"discount %s exceeds the %s ceiling", FormatPercent(v.Discount), FormatPercent(MaxDepreciation)))
	}

	if band, ok := discountBands[cond]; ok {
		switch {
		case v.Discount < band.Min:
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"discount %s is low for %s condition (expected at least %s)",
				FormatPercent(v.Discount), cond, FormatPercent(band.Min)))
		case v.Discount > band.Max:
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"discount %s is high for %s condition (expected at most %s)",
				FormatPercent(v.Discount), cond, FormatPercent(band.Max)))
		}
	}

	if marketPrice != nil && *marketPrice > 0 && usedPrice > *marketPrice {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"used price %.2f is above the lowest market offer %.2f", usedPrice, *marketPrice))
	}

	v.Valid = len(v.Warnings) == 0
	return v
}
