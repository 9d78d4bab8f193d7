package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "dpj-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "dpj-recording",
					Rules: []Rule{
						{
							Record: "dpj:http_requests:rate5m",
							Expr:   `sum(rate(dpj_http_requests_total[5m]))`,
						},
						{
							Record: "dpj:http_errors:rate5m",
							Expr:   `sum(rate(dpj_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "dpj:price_resolutions:rate5m",
							Expr:   `sum by (tier, outcome) (rate(dpj_price_resolutions_total[5m]))`,
						},
						{
							Record: "dpj:search_api_calls:rate5m",
							Expr:   `sum(rate(dpj_search_api_calls_total[5m]))`,
						},
						{
							Record: "dpj:workflow_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(dpj_workflow_duration_seconds_bucket[5m])) by (le))`,
						},
						{
							Record: "dpj:report_fallback:ratio5m",
							Expr:   `sum(rate(dpj_reports_total{status="fallback"}[5m])) / sum(rate(dpj_reports_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
