package main

import "errors"

// KnownMetrics is the set of metric names exported by localflipper plus the
// recording rule names referenced in dashboards and alerts. Histogram series
// (_bucket, _sum, _count) resolve against their base name.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"lfl_http_request_duration_seconds": true,
	"lfl_http_requests_total":           true,
	"lfl_http_panics_total":             true,

	// Health metrics.
	"lfl_healthz_up": true,
	"lfl_readyz_up":  true,

	// Search run metrics.
	"lfl_search_runs_total":           true,
	"lfl_search_run_duration_seconds": true,
	"lfl_listings_fetched_total":      true,
	"lfl_listings_rejected_total":     true,

	// Evaluation metrics.
	"lfl_evaluations_total":       true,
	"lfl_evaluation_errors_total": true,
	"lfl_demand_labels_total":     true,
	"lfl_profit_estimate_dollars": true,
	"lfl_deals_total":             true,

	// eBay API metrics.
	"lfl_ebay_api_calls_total":        true,
	"lfl_ebay_daily_usage":            true,
	"lfl_ebay_daily_limit_hits_total": true,
	"lfl_comparables_per_query":       true,

	// Notification metrics.
	"lfl_notifications_sent_total":      true,
	"lfl_notification_failures_total":   true,
	"lfl_notification_duration_seconds": true,

	// Recording rules.
	"lfl:http_requests:rate5m":         true,
	"lfl:http_errors:rate5m":           true,
	"lfl:search_runs:rate5m":           true,
	"lfl:search_failures:rate5m":       true,
	"lfl:listings_fetched:rate5m":      true,
	"lfl:evaluations:rate5m":           true,
	"lfl:ebay_api_calls:rate5m":        true,
	"lfl:notification_duration:p95_5m": true,

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
