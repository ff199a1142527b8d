package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat shows the liveness probe.
func HealthzStat() *stat.PanelBuilder {
	return upDown("Healthz", "Health check status (1 = ok, 0 = failing)", "lfl_healthz_up")
}

// ReadyzStat shows whether every readiness check passes.
func ReadyzStat() *stat.PanelBuilder {
	return upDown("Readyz", "Readiness status (1 = database reachable, 0 = not ready)", "lfl_readyz_up")
}

// QuotaGauge shows today's eBay lookups as a share of the daily budget.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("eBay Quota %").
		Description("Comparables lookups today as a percentage of the daily budget").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf("%s / %d * 100", Sel("lfl_ebay_daily_usage"), EbayDailyLimit), "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// UptimeStat shows time since process start.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start", StatHeight, StatWidth,
		"time() - "+Sel("process_start_time_seconds")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
