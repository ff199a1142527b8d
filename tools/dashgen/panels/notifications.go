package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NotificationsRate shows deal alerts delivered per second.
func NotificationsRate() *timeseries.PanelBuilder {
	return line("Deal Alerts Sent", "Deal notifications delivered per second", ThirdWidth,
		PromQuery("sum(rate("+Sel("lfl_notifications_sent_total")+"[5m]))", "alerts/s", "A"))
}

// NotificationLatency shows p95 webhook latency from the recording rule.
func NotificationLatency() *timeseries.PanelBuilder {
	return line("Notification Latency (p95)", "95th percentile Discord webhook latency", ThirdWidth,
		PromQuery(`lfl:notification_duration:p95_5m`, "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 5))
}

// NotificationFailures counts failed deliveries over the last day.
func NotificationFailures() *stat.PanelBuilder {
	return dailyCount("Notification Failures (24h)", "Failed deal notification deliveries in the last 24 hours",
		"lfl_notification_failures_total", ThirdWidth, 1, 5)
}
