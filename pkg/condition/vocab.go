package condition

import (
	"strings"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// severityMap maps every observed raw severity label to the canonical scale.
var severityMap = map[string]domain.Severity{
	// canonical values (identity mappings)
	"minor":    domain.SeverityMinor,
	"moderate": domain.SeverityModerate,
	"severe":   domain.SeveritySevere,
	"critical": domain.SeverityCritical,
	// vision model variants
	"low":         domain.SeverityMinor,
	"light":       domain.SeverityMinor,
	"slight":      domain.SeverityMinor,
	"small":       domain.SeverityMinor,
	"medium":      domain.SeverityModerate,
	"mid":         domain.SeverityModerate,
	"noticeable":  domain.SeverityModerate,
	"high":        domain.SeveritySevere,
	"major":       domain.SeveritySevere,
	"heavy":       domain.SeveritySevere,
	"significant": domain.SeveritySevere,
	"extreme":     domain.SeverityCritical,
	"broken":      domain.SeverityCritical,
}

// conditionMap maps every observed raw condition label to the canonical scale.
var conditionMap = map[string]domain.Condition{
	"excellent":  domain.ConditionExcellent,
	"pristine":   domain.ConditionExcellent,
	"mint":       domain.ConditionExcellent,
	"like new":   domain.ConditionExcellent,
	"like_new":   domain.ConditionExcellent,
	"new":        domain.ConditionExcellent,
	"perfect":    domain.ConditionExcellent,
	"very good":  domain.ConditionGood,
	"very_good":  domain.ConditionGood,
	"good":       domain.ConditionGood,
	"great":      domain.ConditionGood,
	"fair":       domain.ConditionFair,
	"average":    domain.ConditionFair,
	"acceptable": domain.ConditionFair,
	"used":       domain.ConditionFair,
	"worn":       domain.ConditionFair,
	"poor":       domain.ConditionPoor,
	"bad":        domain.ConditionPoor,
	"damaged":    domain.ConditionPoor,
	"broken":     domain.ConditionPoor,
	"for parts":  domain.ConditionPoor,
	"for_parts":  domain.ConditionPoor,
}

// NormalizeSeverity maps a raw severity label to the canonical scale.
// Unknown and empty labels map to SeverityMinor.
func NormalizeSeverity(raw string) domain.Severity {
	if s, ok := severityMap[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return domain.SeverityMinor
}

// NormalizeCondition maps a raw condition label to the canonical scale. The
// boolean is false when the label is not recognized.
func NormalizeCondition(raw string) (domain.Condition, bool) {
	c, ok := conditionMap[strings.ToLower(strings.TrimSpace(raw))]
	return c, ok
}

// NormalizeIssueType lowercases a damage type and strips its plural suffix
// ("scratches" -> "scratch", "dents" -> "dent").
func NormalizeIssueType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case t == "":
		return "unknown"
	case strings.HasSuffix(t, "ss"):
		return t
	case strings.HasSuffix(t, "ies") && len(t) > 4:
		return strings.TrimSuffix(t, "ies") + "y"
	case strings.HasSuffix(t, "ches"),
		strings.HasSuffix(t, "shes"),
		strings.HasSuffix(t, "sses"),
		strings.HasSuffix(t, "xes"):
		return strings.TrimSuffix(t, "es")
	case strings.HasSuffix(t, "s"):
		return strings.TrimSuffix(t, "s")
	default:
		return t
	}
}
