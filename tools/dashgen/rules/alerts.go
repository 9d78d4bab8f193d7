package rules

// AlertRules returns a PrometheusRule CR containing alert rules for the
// pricing service.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "dpj-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "dpj-alerts",
					Rules: []Rule{
						{
							Alert:  "DpjDown",
							Expr:   `absent(up{job="pricing-justifier"})`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: annotations(
								"Pricing justifier is down",
								"The pricing-justifier job has been absent for more than 2 minutes.",
							),
						},
						{
							Alert:  "DpjReadinessDown",
							Expr:   `dpj_readyz_up == 0`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: annotations(
								"Pricing justifier readiness check is failing",
								"The price store has been unreachable from the readiness probe for more than 2 minutes.",
							),
						},
						{
							Alert:  "DpjHighErrorRate",
							Expr:   `dpj:http_errors:rate5m / dpj:http_requests:rate5m > 0.05`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: annotations(
								"High HTTP error rate on the pricing API",
								"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							),
						},
						{
							Alert:  "DpjHandlerPanics",
							Expr:   `increase(dpj_http_panics_total[5m]) > 0`,
							For:    "0m",
							Labels: severity("warning"),
							Annotations: annotations(
								"A request handler panicked",
								"The recovery middleware caught at least one panic in the last 5 minutes.",
							),
						},
						{
							Alert:  "DpjSearchQuotaHigh",
							Expr:   `dpj_search_daily_usage > 80`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: annotations(
								"Web search daily usage is above 80% of the default quota",
								"Rolling 24h SerpAPI usage has exceeded 80 calls (default limit is 100).",
							),
						},
						{
							Alert:  "DpjSearchLimitReached",
							Expr:   `increase(dpj_search_daily_limit_hits_total[5m]) > 0`,
							For:    "0m",
							Labels: severity("critical"),
							Annotations: annotations(
								"Web search daily limit has been reached",
								"Price lookups that miss the database and cache return 429 until the rolling window frees capacity.",
							),
						},
						{
							Alert:  "DpjCachePurgeStale",
							Expr:   `time() - dpj_cache_purge_last_run_timestamp > 43200`,
							For:    "10m",
							Labels: severity("warning"),
							Annotations: annotations(
								"Scheduled cache purge has not run",
								"No cache purge has completed in 12 hours, twice the default purge interval.",
							),
						},
						{
							Alert:  "DpjReportFallbackHigh",
							Expr:   `dpj:report_fallback:ratio5m > 0.5`,
							For:    "15m",
							Labels: severity("warning"),
							Annotations: annotations(
								"Most reports are falling back to the template",
								"More than half of report requests did not get an LLM response for 15 minutes.",
							),
						},
					},
				},
			},
		},
	}
}

func severity(level string) map[string]string {
	return map[string]string{"severity": level}
}

func annotations(summary, description string) map[string]string {
	return map[string]string{
		"summary":     summary,
		"description": description,
	}
}
