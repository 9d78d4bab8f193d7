// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/aliaa039/Dynamic-Pricing-Justification/tools/dashgen/rules"
)

// histogramSuffixes are the series suffixes Prometheus derives from a
// histogram metric name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation, warnings do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every panel query in dash against known.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) *Result {
	res := &Result{}
	for _, p := range dash.Panels {
		if p.Panel != nil {
			checkPanel(res, *p.Panel, known)
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				checkPanel(res, inner, known)
			}
		}
	}
	return res
}

// Rules validates the expressions of every rule in the given CRs.
func Rules(known map[string]bool, crs ...rules.PrometheusRule) *Result {
	res := &Result{}
	for _, cr := range crs {
		for _, g := range cr.Spec.Groups {
			for _, rule := range g.Rules {
				name := rule.Record
				if name == "" {
					name = rule.Alert
				}
				if name == "" {
					res.errorf("%s/%s: rule has neither record nor alert", cr.Metadata.Name, g.Name)
				}
				checkExpr(res, cr.Metadata.Name+"/"+name, rule.Expr, known)
			}
		}
	}
	return res
}

func checkPanel(res *Result, p dashboard.Panel, known map[string]bool) {
	title := "<untitled>"
	if p.Title != nil && *p.Title != "" {
		title = *p.Title
	} else {
		res.warnf("panel of type %s has no title", p.Type)
	}
	if len(p.Targets) == 0 {
		res.warnf("%s: panel has no queries", title)
		return
	}
	for _, target := range p.Targets {
		expr, err := targetExpr(target)
		if err != nil {
			res.errorf("%s: %v", title, err)
			continue
		}
		checkExpr(res, title, expr, known)
	}
}

// targetExpr pulls the PromQL expression out of a dataquery variant.
func targetExpr(target any) (string, error) {
	raw, err := json.Marshal(target)
	if err != nil {
		return "", fmt.Errorf("encoding query: %w", err)
	}
	var q struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(raw, &q); err != nil {
		return "", fmt.Errorf("decoding query: %w", err)
	}
	if q.Expr == "" {
		return "", errors.New("query has no expression")
	}
	return q.Expr, nil
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}
	for _, name := range MetricNames(parsed) {
		if !isKnown(name, known) {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// MetricNames returns the metric names selected anywhere in expr.
func MetricNames(expr parser.Expr) []string {
	var names []string
	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
