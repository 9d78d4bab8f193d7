// Package narrative assembles deterministic, template-driven explanations of
// a used-item price.
package narrative

import (
	"math"
	"strings"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// rangePhrase is a phrase that applies to discounts in [From, To).
type rangePhrase struct {
	From, To float64
	Text     string
}

// Templates holds the phrase tables used by the Generator. The zero value is
// not usable; start from DefaultTemplates.
type Templates struct {
	openings      map[domain.Condition]string
	issuePhrases  map[string]map[domain.Severity]string
	locations     map[string]string
	discounts     []rangePhrase
	closings      []rangePhrase
	closingAbove  float64
	fallbackTerms string
}

// DefaultTemplates returns the built-in English phrase tables.
func DefaultTemplates() *Templates {
	return &Templates{
		openings: map[domain.Condition]string{
			domain.ConditionExcellent: "This item is in excellent condition with minimal signs of use",
			domain.ConditionGood:      "This item is in good condition with light signs of normal use",
			domain.ConditionFair:      "This item is in fair condition with visible signs of wear",
			domain.ConditionPoor:      "This item shows significant wear and needs some care",
		},
		issuePhrases: map[string]map[domain.Severity]string{
			"scratch": {
				domain.SeverityMinor:    "light surface scratches",
				domain.SeverityModerate: "noticeable scratches",
				domain.SeveritySevere:   "deep scratches",
				domain.SeverityCritical: "extensive deep scratching",
			},
			"dent": {
				domain.SeverityMinor:    "a small dent",
				domain.SeverityModerate: "a noticeable dent",
				domain.SeveritySevere:   "a significant dent",
				domain.SeverityCritical: "severe denting",
			},
			"crack": {
				domain.SeverityMinor:    "a hairline crack",
				domain.SeverityModerate: "a visible crack",
				domain.SeveritySevere:   "a significant crack",
				domain.SeverityCritical: "a severe crack",
			},
			"chip": {
				domain.SeverityMinor:    "a tiny chip",
				domain.SeverityModerate: "a noticeable chip",
				domain.SeveritySevere:   "a large chip",
				domain.SeverityCritical: "severe chipping",
			},
			"discoloration": {
				domain.SeverityMinor:    "slight discoloration",
				domain.SeverityModerate: "noticeable discoloration",
				domain.SeveritySevere:   "significant discoloration",
				domain.SeverityCritical: "heavy discoloration",
			},
			"wear": {
				domain.SeverityMinor:    "light wear",
				domain.SeverityModerate: "moderate wear",
				domain.SeveritySevere:   "heavy wear",
				domain.SeverityCritical: "extensive wear",
			},
		},
		locations: map[string]string{
			"screen": "on the screen",
			"back":   "on the back panel",
			"corner": "on a corner",
			"edge":   "along the edge",
			"frame":  "on the frame",
			"camera": "near the camera",
		},
		discounts: []rangePhrase{
			{From: 0, To: 15, Text: "The item retains most of its original value"},
			{From: 15, To: 30, Text: "The price reflects normal signs of use"},
			{From: 30, To: 50, Text: "The price accounts for visible wear and age"},
			{From: 50, To: math.Inf(1), Text: "The price reflects substantial wear and reduced value"},
		},
		closings: []rangePhrase{
			{From: 25, To: 40, Text: "This represents solid value for a dependable device."},
			{From: 40, To: 60, Text: "This is an excellent opportunity for budget-conscious buyers."},
			{From: 60, To: math.Inf(1), Text: "A practical choice for buyers who value function over looks."},
		},
		closingAbove:  25,
		fallbackTerms: "The condition is reflected in the pricing",
	}
}

// Opening returns the opening clause for a condition.
func (t *Templates) Opening(c domain.Condition) string {
	if s, ok := t.openings[c]; ok {
		return s
	}
	return t.openings[domain.ConditionGood]
}

// IssuePhrase describes an issue type at a severity. Unknown combinations
// render as "<severity> <type>".
func (t *Templates) IssuePhrase(issueType string, s domain.Severity) string {
	if bySeverity, ok := t.issuePhrases[issueType]; ok {
		if p, ok := bySeverity[s]; ok {
			return p
		}
	}
	return strings.TrimSpace(string(s) + " " + strings.ReplaceAll(issueType, "_", " "))
}

// LocationPhrase turns a location into a prepositional phrase. Empty
// locations yield "".
func (t *Templates) LocationPhrase(location string) string {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return ""
	}
	if p, ok := t.locations[strings.ToLower(loc)]; ok {
		return p
	}
	return "on the " + loc
}

// DiscountExplanation explains what a discount level says about the item.
func (t *Templates) DiscountExplanation(discount float64) string {
	for _, r := range t.discounts {
		if discount >= r.From && discount < r.To {
			return r.Text
		}
	}
	return t.fallbackTerms
}

// Closing returns the positive closing for large discounts. The boolean is
// false at or below the closing threshold.
func (t *Templates) Closing(discount float64) (string, bool) {
	if discount <= t.closingAbove {
		return "", false
	}
	for _, r := range t.closings {
		if discount >= r.From && discount < r.To {
			return r.Text, true
		}
	}
	return "", false
}
