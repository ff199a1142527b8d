package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate shows Browse API calls per second.
func APICallsRate() *timeseries.PanelBuilder {
	return line("API Calls Rate", "eBay Browse API calls per second", StatWidth,
		PromQuery(`lfl:ebay_api_calls:rate5m`, "calls/s", "A")).
		Unit("reqps")
}

// DailyUsage shows calls since the quota reset against the daily limit.
func DailyUsage() *timeseries.PanelBuilder {
	desc := fmt.Sprintf("eBay API calls since the Pacific midnight reset (limit: %d)", EbayDailyLimit)
	return line("Daily Usage vs Limit", desc, StatWidth,
		PromQuery(Sel("lfl_ebay_daily_usage"), "usage", "A")).
		Thresholds(ThresholdsGreenYellowRed(EbayDailyLimit*0.8, EbayDailyLimit)).
		ColorScheme(ColorSchemeThresholds())
}

// ComparablesPerQuery shows median and p90 comparables returned per lookup.
func ComparablesPerQuery() *timeseries.PanelBuilder {
	return line("Comparables per Query",
		"Comparable sales returned per eBay query; thin markets fall back to the floor price", StatWidth,
		PromQuery(Quantile(0.5, "lfl_comparables_per_query", "1h"), "p50", "A"),
		PromQuery(Quantile(0.9, "lfl_comparables_per_query", "1h"), "p90", "B"))
}

// LimitHits counts daily quota exhaustion over the last day.
func LimitHits() *stat.PanelBuilder {
	return dailyCount("Limit Hits (24h)", "Times the eBay daily limit was reached in the last 24 hours",
		"lfl_ebay_daily_limit_hits_total", StatWidth, 1, 3)
}
