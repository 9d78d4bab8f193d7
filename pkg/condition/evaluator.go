// Package condition turns raw per-view damage analyses into normalized
// condition summaries.
package condition

import (
	"math"
	"slices"
	"strings"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/features"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

const (
	// DefaultConfidence is assigned to issues that carry no confidence.
	DefaultConfidence = 0.85
	// MaxDiscountImpact caps the aggregate per-issue impact.
	MaxDiscountImpact = 0.30
	// MinConditionScore is the floor of every condition score.
	MinConditionScore = 1.0

	defaultScore      = 7.0
	usagePenaltyRate  = 0.2
	usagePenaltyLimit = 2.0
)

var baseScores = map[domain.Condition]float64{
	domain.ConditionExcellent: 9.5,
	domain.ConditionGood:      8.0,
	domain.ConditionFair:      6.0,
	domain.ConditionPoor:      4.0,
}

var severityDeductions = map[domain.Severity]float64{
	domain.SeverityMinor:    0.3,
	domain.SeverityModerate: 0.6,
	domain.SeveritySevere:   1.0,
	domain.SeverityCritical: 1.5,
}

var impactWeights = map[domain.Severity]float64{
	domain.SeverityMinor:    0.02,
	domain.SeverityModerate: 0.05,
	domain.SeveritySevere:   0.10,
	domain.SeverityCritical: 0.15,
}

// precedence lists conditions from worst to best; the first one reported by
// any view becomes the overall condition.
var precedence = []domain.Condition{
	domain.ConditionPoor,
	domain.ConditionFair,
	domain.ConditionGood,
	domain.ConditionExcellent,
}

// RawIssue is an issue as reported by the vision model.
type RawIssue struct {
	Type        string   `json:"type"`
	Severity    string   `json:"severity"`
	Location    string   `json:"location"`
	Description string   `json:"description,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// RawDamage is one entry of a damage_details list.
type RawDamage struct {
	Severity   string   `json:"severity"`
	Location   string   `json:"location"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// ViewAnalysis is the vision model output for one image angle. Either Issues
// or DamageDetails (keyed by damage type) may be populated.
type ViewAnalysis struct {
	OverallCondition string                 `json:"overall_condition,omitempty"`
	Issues           []RawIssue             `json:"issues,omitempty"`
	DamageDetails    map[string][]RawDamage `json:"damage_details,omitempty"`
}

// Analysis maps view names to their analysis.
type Analysis map[string]ViewAnalysis

// Evaluator converts raw analyses into condition summaries.
type Evaluator struct {
	defaultConfidence float64
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithDefaultConfidence overrides the confidence given to issues without one.
func WithDefaultConfidence(c float64) EvaluatorOption {
	return func(e *Evaluator) {
		e.defaultConfidence = clamp01(c)
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{defaultConfidence: DefaultConfidence}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate builds a ConditionSummary from a raw per-view analysis. An empty
// analysis yields DefaultSummary.
func (e *Evaluator) Evaluate(raw Analysis, usageYears float64) domain.ConditionSummary {
	usageYears = math.Max(usageYears, 0)
	if len(raw) == 0 {
		return DefaultSummary(usageYears)
	}

	views := make([]string, 0, len(raw))
	for view := range raw {
		views = append(views, view)
	}
	slices.Sort(views)

	var issues []domain.ConditionIssue
	reported := make(map[domain.Condition]bool)
	for _, view := range views {
		analysis := raw[view]
		if c, ok := NormalizeCondition(analysis.OverallCondition); ok {
			reported[c] = true
		}
		issues = append(issues, e.viewIssues(view, analysis)...)
	}

	overall := domain.ConditionGood
	for _, c := range precedence {
		if reported[c] {
			overall = c
			break
		}
	}

	return domain.ConditionSummary{
		OverallCondition:     overall,
		ConditionScore:       Score(overall, issues, usageYears),
		DetectedIssues:       issues,
		SeverityDistribution: features.SeverityDistribution(issues),
		TotalDiscountImpact:  DiscountImpact(issues),
		UsageYears:           usageYears,
		ViewsAnalyzed:        views,
	}
}

func (e *Evaluator) viewIssues(view string, analysis ViewAnalysis) []domain.ConditionIssue {
	issues := make([]domain.ConditionIssue, 0, len(analysis.Issues))
	for _, ri := range analysis.Issues {
		issues = append(issues, domain.ConditionIssue{
			Type:        NormalizeIssueType(ri.Type),
			Severity:    NormalizeSeverity(ri.Severity),
			Location:    joinLocation(view, ri.Location),
			Confidence:  e.confidence(ri.Confidence),
			View:        view,
			Description: ri.Description,
		})
	}

	types := make([]string, 0, len(analysis.DamageDetails))
	for t := range analysis.DamageDetails {
		types = append(types, t)
	}
	slices.Sort(types)

	for _, t := range types {
		for _, d := range analysis.DamageDetails[t] {
			issues = append(issues, domain.ConditionIssue{
				Type:       NormalizeIssueType(t),
				Severity:   NormalizeSeverity(d.Severity),
				Location:   joinLocation(view, d.Location),
				Confidence: e.confidence(d.Confidence),
				View:       view,
			})
		}
	}
	return issues
}

func (e *Evaluator) confidence(c *float64) float64 {
	if c == nil {
		return e.defaultConfidence
	}
	return clamp01(*c)
}

// DefaultSummary is returned for empty or missing analyses.
func DefaultSummary(usageYears float64) domain.ConditionSummary {
	return domain.ConditionSummary{
		OverallCondition:     domain.ConditionGood,
		ConditionScore:       defaultScore,
		DetectedIssues:       []domain.ConditionIssue{},
		SeverityDistribution: features.SeverityDistribution(nil),
		UsageYears:           math.Max(usageYears, 0),
		ViewsAnalyzed:        []string{},
	}
}

// Score computes the numeric condition score: the base score for the overall
// condition minus per-issue deductions and a capped usage penalty, floored at
// MinConditionScore and rounded to one decimal.
func Score(overall domain.Condition, issues []domain.ConditionIssue, usageYears float64) float64 {
	score, ok := baseScores[overall]
	if !ok {
		score = baseScores[domain.ConditionGood]
	}
	for _, issue := range issues {
		score -= severityDeductions[NormalizeSeverity(string(issue.Severity))]
	}
	score -= math.Min(math.Max(usageYears, 0)*usagePenaltyRate, usagePenaltyLimit)

	score = math.Max(score, MinConditionScore)
	return math.Round(score*10) / 10
}

// DiscountImpact sums the severity-weighted impact of issues, capped at
// MaxDiscountImpact.
func DiscountImpact(issues []domain.ConditionIssue) float64 {
	var total float64
	for _, issue := range issues {
		total += ImpactWeight(issue.Severity)
	}
	total = math.Min(total, MaxDiscountImpact)
	return math.Round(total*1000) / 1000
}

// ImpactWeight returns the discount impact of one issue of severity s.
func ImpactWeight(s domain.Severity) float64 {
	return impactWeights[NormalizeSeverity(string(s))]
}

// BaseScore returns the score an issue-free, unused item of condition c gets.
func BaseScore(c domain.Condition) float64 {
	return baseScores[c]
}

func joinLocation(view, location string) string {
	view = strings.TrimSpace(view)
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return view
	case view == "":
		return location
	default:
		return view + " " + location
	}
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
