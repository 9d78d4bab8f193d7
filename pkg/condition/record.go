package condition

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/features"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// DefaultUsageYears is assumed when a summarized record omits usage.
const DefaultUsageYears = 1.0

// SummaryFromRecord ingests an already summarized condition record (as sent
// by API clients) and maps every vocabulary value onto the canonical scales.
// Missing fields take the DefaultSummary values; usage defaults to
// DefaultUsageYears.
func SummaryFromRecord(record map[string]any) domain.ConditionSummary {
	usage := DefaultUsageYears
	if v, ok := Number(record["usage_years"]); ok {
		usage = math.Max(v, 0)
	}
	summary := DefaultSummary(usage)
	if len(record) == 0 {
		return summary
	}

	if raw, ok := record["overall_condition"].(string); ok {
		if c, ok := NormalizeCondition(raw); ok {
			summary.OverallCondition = c
		}
	}
	if v, ok := Number(record["condition_score"]); ok {
		summary.ConditionScore = math.Max(v, MinConditionScore)
	}
	if v, ok := Number(record["total_discount_impact"]); ok {
		summary.TotalDiscountImpact = math.Min(math.Max(v, 0), MaxDiscountImpact)
	}

	if list, ok := record["detected_issues"].([]any); ok {
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			summary.DetectedIssues = append(summary.DetectedIssues, issueFromRecord(m))
		}
	}
	summary.SeverityDistribution = features.SeverityDistribution(summary.DetectedIssues)

	if views, ok := record["views_analyzed"].([]any); ok {
		for _, v := range views {
			if s, ok := v.(string); ok {
				summary.ViewsAnalyzed = append(summary.ViewsAnalyzed, s)
			}
		}
	}

	return summary
}

// AnalysisFromRecord decodes a loosely typed per-view analysis, as posted by
// API clients, into an Analysis. Unknown keys are ignored.
func AnalysisFromRecord(record map[string]any) (Analysis, error) {
	if len(record) == 0 {
		return Analysis{}, nil
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}
	var a Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}
	return a, nil
}

func issueFromRecord(m map[string]any) domain.ConditionIssue {
	issue := domain.ConditionIssue{Confidence: DefaultConfidence}
	if s, ok := m["type"].(string); ok {
		issue.Type = NormalizeIssueType(s)
	} else {
		issue.Type = NormalizeIssueType("")
	}
	if s, ok := m["severity"].(string); ok {
		issue.Severity = NormalizeSeverity(s)
	} else {
		issue.Severity = domain.SeverityMinor
	}
	if s, ok := m["location"].(string); ok {
		issue.Location = s
	}
	if s, ok := m["view"].(string); ok {
		issue.View = s
	}
	if s, ok := m["description"].(string); ok {
		issue.Description = s
	}
	if v, ok := Number(m["confidence"]); ok {
		issue.Confidence = clamp01(v)
	}
	return issue
}

// Number converts a decoded JSON value to a finite float64. NaN and
// infinities are rejected.
func Number(v any) (float64, bool) {
	f, ok := number(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
