// Package validate checks condition and pricing records received at system
// boundaries. Checks never stop at the first problem; every violation found
// is reported.
package validate

import (
	"fmt"
	"strings"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/condition"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// Result is the outcome of validating one record.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

var (
	requiredConditionFields = []string{"condition_score", "detected_issues", "overall_condition"}
	requiredIssueFields     = []string{"type", "location", "severity", "confidence"}
	requiredPricingFields   = []string{"reference_new_price", "calculated_used_price", "discount_percentage"}
)

type checker struct {
	errs []string
}

func (c *checker) add(format string, args ...any) {
	c.errs = append(c.errs, fmt.Sprintf(format, args...))
}

func (c *checker) result() Result {
	if c.errs == nil {
		c.errs = []string{}
	}
	return Result{Valid: len(c.errs) == 0, Errors: c.errs}
}

// rangeCheck reports a violation when key is present and not a number in
// [lo, hi].
func (c *checker) rangeCheck(record map[string]any, key string, lo, hi float64, prefix string) {
	v, ok := record[key]
	if !ok {
		return
	}
	n, ok := condition.Number(v)
	if !ok || n < lo || n > hi {
		c.add("%s%s must be between %g and %g", prefix, key, lo, hi)
	}
}

// Condition validates a summarized condition record.
func Condition(record map[string]any) Result {
	var c checker

	for _, f := range requiredConditionFields {
		if _, ok := record[f]; !ok {
			c.add("missing required field: %s", f)
		}
	}

	c.rangeCheck(record, "condition_score", 0, 10, "")

	if v, ok := record["overall_condition"]; ok {
		s, _ := v.(string)
		if !domain.Condition(s).Valid() {
			c.add("invalid overall_condition %q, must be one of: %s", s, joinConditions())
		}
	}

	if v, ok := record["detected_issues"]; ok && v != nil {
		issues, ok := v.([]any)
		if !ok {
			c.add("detected_issues must be a list")
		} else {
			for i, raw := range issues {
				c.issue(i, raw)
			}
		}
	}

	return c.result()
}

func (c *checker) issue(idx int, raw any) {
	issue, ok := raw.(map[string]any)
	if !ok {
		c.add("issue %d: must be an object", idx)
		return
	}
	for _, f := range requiredIssueFields {
		if _, ok := issue[f]; !ok {
			c.add("issue %d: missing field %q", idx, f)
		}
	}
	if v, ok := issue["severity"]; ok {
		s, _ := v.(string)
		if !domain.Severity(s).Valid() {
			c.add("issue %d: invalid severity %q, must be one of: %s", idx, s, joinSeverities())
		}
	}
	c.rangeCheck(issue, "confidence", 0, 1, fmt.Sprintf("issue %d: ", idx))
}

// Pricing validates a pricing result record.
func Pricing(record map[string]any) Result {
	var c checker

	for _, f := range requiredPricingFields {
		if _, ok := record[f]; !ok {
			c.add("missing required field: %s", f)
		}
	}

	if v, ok := record["reference_new_price"]; ok {
		if n, ok := condition.Number(v); !ok || n <= 0 {
			c.add("reference_new_price must be positive")
		}
	}
	if v, ok := record["calculated_used_price"]; ok {
		if n, ok := condition.Number(v); !ok || n < 0 {
			c.add("calculated_used_price cannot be negative")
		}
	}
	c.rangeCheck(record, "discount_percentage", 0, 100, "")

	return c.result()
}

func joinConditions() string {
	s := make([]string, len(domain.Conditions))
	for i, v := range domain.Conditions {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

func joinSeverities() string {
	s := make([]string, len(domain.Severities))
	for i, v := range domain.Severities {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}
