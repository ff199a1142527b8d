package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchRunRate shows saved search runs per second split by outcome.
func SearchRunRate() *timeseries.PanelBuilder {
	return line("Search Runs", "Saved search runs per second by status", StatWidth,
		PromQuery(RateBy("lfl_search_runs_total", "status", "5m"), "{{status}}", "A")).
		Unit("ops")
}

// RunDuration shows p95 wall time of a search run.
func RunDuration() *timeseries.PanelBuilder {
	return line("Run Duration (p95)", "95th percentile wall time of a saved search run", StatWidth,
		PromQuery(Quantile(0.95, "lfl_search_run_duration_seconds", "15m"), "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(60, 300))
}

// ListingsRate shows accepted listings per second by source.
func ListingsRate() *timeseries.PanelBuilder {
	return line("Listings Fetched", "Local listings accepted from sources per second", StatWidth,
		PromQuery(RateBy("lfl_listings_fetched_total", "source", "5m"), "{{source}}", "A"))
}

// ListingsRejected shows hourly rejections at the source boundary by reason.
func ListingsRejected() *timeseries.PanelBuilder {
	return line("Listings Rejected", "Listings dropped before evaluation, by reason", StatWidth,
		PromQuery(IncreaseBy("lfl_listings_rejected_total", "reason", "1h"), "{{reason}}", "A")).
		FillOpacity(30).
		LineWidth(1).
		DrawStyle(common.GraphDrawStyleBars)
}
