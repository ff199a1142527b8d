package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "lfl-recording-rules",
			Labels: defaultLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lfl-recording",
					Rules: []Rule{
						{
							Record: "lfl:http_requests:rate5m",
							Expr:   `sum(rate(lfl_http_requests_total[5m]))`,
						},
						{
							Record: "lfl:http_errors:rate5m",
							Expr:   `sum(rate(lfl_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "lfl:search_runs:rate5m",
							Expr:   `sum(rate(lfl_search_runs_total[5m]))`,
						},
						{
							Record: "lfl:search_failures:rate5m",
							Expr:   `sum(rate(lfl_search_runs_total{status="failed"}[5m]))`,
						},
						{
							Record: "lfl:listings_fetched:rate5m",
							Expr:   `sum(rate(lfl_listings_fetched_total[5m]))`,
						},
						{
							Record: "lfl:evaluations:rate5m",
							Expr:   `sum(rate(lfl_evaluations_total[5m]))`,
						},
						{
							Record: "lfl:ebay_api_calls:rate5m",
							Expr:   `rate(lfl_ebay_api_calls_total[5m])`,
						},
						{
							Record: "lfl:notification_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(lfl_notification_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
