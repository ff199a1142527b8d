package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

const httpDuration = "lfl_http_request_duration_seconds"

// RequestRate shows API requests per second from the recording rule.
func RequestRate() *timeseries.PanelBuilder {
	return line("Request Rate", "API requests per second, probes excluded", ThirdWidth,
		PromQuery(`lfl:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max"))
}

// LatencyPercentiles shows p50, p95 and p99 request latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return line("Latency Percentiles", "HTTP request duration percentiles", ThirdWidth,
		PromQuery(Quantile(0.50, httpDuration, "5m"), "p50", "A"),
		PromQuery(Quantile(0.95, httpDuration, "5m"), "p95", "B"),
		PromQuery(Quantile(0.99, httpDuration, "5m"), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max"))
}

// ErrorRate shows 5xx responses as a percentage of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return line("Error Rate %", "HTTP 5xx error rate as percentage of total requests", SixthWidth,
		PromQuery(`lfl:http_errors:rate5m / lfl:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}

// PanicsStat counts recovered handler panics over the last day.
func PanicsStat() *stat.PanelBuilder {
	return dailyCount("Panics (24h)", "Handler panics recovered by the API in the last 24 hours",
		"lfl_http_panics_total", SixthWidth, 1, 5)
}
