package main

import "errors"

// KnownMetrics is the set of metric names exported by pricing-justifier
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"dpj_http_request_duration_seconds": true,
	"dpj_http_requests_total":           true,
	"dpj_http_panics_total":             true,
	"dpj_readyz_up":                     true,

	// Pricing metrics.
	"dpj_price_resolutions_total":   true,
	"dpj_price_not_found_total":     true,
	"dpj_discount_percentage":       true,
	"dpj_workflow_duration_seconds": true,

	// Cache metrics.
	"dpj_cache_evictions_total":          true,
	"dpj_cache_purge_last_run_timestamp": true,

	// Web search metrics.
	"dpj_search_api_calls_total":        true,
	"dpj_search_daily_usage":            true,
	"dpj_search_daily_limit_hits_total": true,
	"dpj_search_results_extracted":      true,

	// Report metrics.
	"dpj_reports_total":           true,
	"dpj_specs_extractions_total": true,

	// Recording rules.
	"dpj:http_requests:rate5m":     true,
	"dpj:http_errors:rate5m":       true,
	"dpj:price_resolutions:rate5m": true,
	"dpj:search_api_calls:rate5m":  true,
	"dpj:workflow_duration:p95_5m": true,
	"dpj:report_fallback:ratio5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
