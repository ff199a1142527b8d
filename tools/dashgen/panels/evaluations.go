package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VerdictRate shows evaluations per second by profit verdict.
func VerdictRate() *timeseries.PanelBuilder {
	return line("Verdicts", "Listing evaluations per second by profit verdict", ThirdWidth,
		PromQuery(RateBy("lfl_evaluations_total", "verdict", "5m"), "{{verdict}}", "A")).
		Unit("ops").
		Legend(TableLegend("mean", "max"))
}

// DemandMix shows evaluations per demand label over the last day.
func DemandMix() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Demand Mix (24h)").
		Description("Evaluations by demand label in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(IncreaseBy("lfl_demand_labels_total", "demand", "24h"), "{{demand}}", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		GraphMode(common.BigValueGraphModeNone)
}

// DealsFound counts evaluations that cleared the deal filter today.
func DealsFound() *stat.PanelBuilder {
	return single("Deals (24h)", "Evaluations that passed the deal filter in the last 24 hours",
		TSHeight, SixthWidth, Last24h("lfl_deals_total")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// EvaluationErrors counts listings the scorer rejected today.
func EvaluationErrors() *stat.PanelBuilder {
	return dailyCount("Evaluation Errors (24h)", "Listings rejected by the scorer in the last 24 hours",
		"lfl_evaluation_errors_total", SixthWidth, 1, 10)
}

// ProfitDistribution shows the profit estimate histogram as horizontal bars.
func ProfitDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Profit Estimate Distribution").
		Description("Estimated profit per evaluated listing with a market basis (USD)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			"sum(increase("+Sel("lfl_profit_estimate_dollars_bucket")+"[1h])) by (le)", "{{le}}", "A")).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
