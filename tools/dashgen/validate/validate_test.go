package validate

import (
	"testing"

	"github.com/prometheus/prometheus/promql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/tools/dashgen/rules"
)

var known = map[string]bool{
	"dpj_http_requests_total":           true,
	"dpj_http_request_duration_seconds": true,
	"dpj:http_requests:rate5m":          true,
}

func TestMetricNames(t *testing.T) {
	t.Parallel()

	expr, err := parser.ParseExpr(
		`sum(rate(dpj_http_requests_total{status=~"5.."}[5m])) / dpj:http_requests:rate5m`,
	)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"dpj_http_requests_total", "dpj:http_requests:rate5m"},
		MetricNames(expr),
	)
}

func ruleCR(exprs ...string) rules.PrometheusRule {
	cr := rules.PrometheusRule{Metadata: rules.PrometheusRuleMetadata{Name: "test"}}
	group := rules.RuleGroup{Name: "g"}
	for _, e := range exprs {
		group.Rules = append(group.Rules, rules.Rule{Alert: "A", Expr: e})
	}
	cr.Spec.Groups = []rules.RuleGroup{group}
	return cr
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expr   string
		errors int
	}{
		{"known counter", `rate(dpj_http_requests_total[5m]) > 0`, 0},
		{"histogram bucket", `histogram_quantile(0.9, sum(rate(dpj_http_request_duration_seconds_bucket[5m])) by (le))`, 0},
		{"histogram count", `dpj_http_request_duration_seconds_count`, 0},
		{"recording rule", `dpj:http_requests:rate5m > 10`, 0},
		{"unknown metric", `dpj_search_quota_remaining > 0`, 1},
		{"syntax error", `sum(rate(dpj_http_requests_total[5m])`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Rules(known, ruleCR(tt.expr))
			assert.Len(t, res.Errors, tt.errors, "errors: %v", res.Errors)
			assert.Equal(t, tt.errors == 0, res.Ok())
		})
	}
}

func TestRules_Unnamed(t *testing.T) {
	t.Parallel()

	cr := ruleCR(`dpj:http_requests:rate5m`)
	cr.Spec.Groups[0].Rules[0].Alert = ""
	res := Rules(known, cr)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "neither record nor alert")
}
