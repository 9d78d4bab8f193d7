// Package features derives secondary features from condition issues for text
// generation. All functions are pure and accept empty input.
package features

import (
	"math"
	"slices"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

const defaultPriority = 1

var typePriority = map[string]int{
	"crack":         5,
	"shatter":       5,
	"dent":          4,
	"chip":          3,
	"scratch":       3,
	"discoloration": 2,
	"stain":         2,
	"scuff":         2,
	"wear":          1,
}

var severityWeight = map[domain.Severity]int{
	domain.SeverityMinor:    1,
	domain.SeverityModerate: 2,
	domain.SeveritySevere:   3,
	domain.SeverityCritical: 4,
}

// Priority returns the type priority of an issue type.
func Priority(issueType string) int {
	if p, ok := typePriority[issueType]; ok {
		return p
	}
	return defaultPriority
}

// SeverityWeight returns the weight of a severity; unknown values weigh as
// minor.
func SeverityWeight(s domain.Severity) int {
	if w, ok := severityWeight[s]; ok {
		return w
	}
	return severityWeight[domain.SeverityMinor]
}

// Score ranks an issue by priority(type) * weight(severity) * confidence.
func Score(issue domain.ConditionIssue) float64 {
	return float64(Priority(issue.Type)*SeverityWeight(issue.Severity)) * issue.Confidence
}

// SeverityDistribution counts issues per canonical severity. Every severity
// key is present.
func SeverityDistribution(issues []domain.ConditionIssue) map[domain.Severity]int {
	dist := make(map[domain.Severity]int, len(domain.Severities))
	for _, s := range domain.Severities {
		dist[s] = 0
	}
	for _, issue := range issues {
		if issue.Severity.Valid() {
			dist[issue.Severity]++
		} else {
			dist[domain.SeverityMinor]++
		}
	}
	return dist
}

// MostCriticalIssue returns the highest scoring issue. Ties go to the first
// occurrence.
func MostCriticalIssue(issues []domain.ConditionIssue) (domain.ConditionIssue, bool) {
	if len(issues) == 0 {
		return domain.ConditionIssue{}, false
	}
	best := 0
	bestScore := Score(issues[0])
	for i := 1; i < len(issues); i++ {
		if s := Score(issues[i]); s > bestScore {
			best, bestScore = i, s
		}
	}
	return issues[best], true
}

// PrioritizeIssues returns at most maxIssues issues sorted by Score,
// descending. The sort is stable.
func PrioritizeIssues(issues []domain.ConditionIssue, maxIssues int) []domain.ConditionIssue {
	if maxIssues <= 0 || len(issues) == 0 {
		return []domain.ConditionIssue{}
	}
	sorted := slices.Clone(issues)
	slices.SortStableFunc(sorted, func(a, b domain.ConditionIssue) int {
		sa, sb := Score(a), Score(b)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		default:
			return 0
		}
	})
	if len(sorted) > maxIssues {
		sorted = sorted[:maxIssues]
	}
	return sorted
}

// LocationsHistogram groups issues by location, preserving input order within
// each group.
func LocationsHistogram(issues []domain.ConditionIssue) map[string][]domain.ConditionIssue {
	groups := make(map[string][]domain.ConditionIssue)
	for _, issue := range issues {
		groups[issue.Location] = append(groups[issue.Location], issue)
	}
	return groups
}

// OverallImpactScore rates the combined severity of issues on a 0-10 scale
// relative to the worst possible list of the same length.
func OverallImpactScore(issues []domain.ConditionIssue) float64 {
	if len(issues) == 0 {
		return 0
	}
	var total float64
	for _, issue := range issues {
		total += Score(issue)
	}
	worst := float64(len(issues) * 5 * severityWeight[domain.SeverityCritical])
	score := total / worst * 10
	score = math.Min(score, 10)
	return math.Round(score*100) / 100
}
