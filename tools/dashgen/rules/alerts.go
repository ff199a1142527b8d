package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// localflipper operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "lfl-alerts",
			Labels: defaultLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lfl-alerts",
					Rules: []Rule{
						{
							Alert:  "LflDown",
							Expr:   `absent(up{job="localflipper"})`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "LocalFlipper is down",
								"description": "The localflipper job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert:  "LflReadinessDown",
							Expr:   `lfl_readyz_up == 0`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "LocalFlipper cannot reach its database",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert:  "LflHighErrorRate",
							Expr:   `lfl:http_errors:rate5m / lfl:http_requests:rate5m > 0.05`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on LocalFlipper",
								"description": "More than 5% of API requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert:  "LflHandlerPanics",
							Expr:   `increase(lfl_http_panics_total[10m]) > 0`,
							For:    "0m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "API handler panics recovered",
								"description": "At least one API handler panicked in the last 10 minutes.",
							},
						},
						{
							Alert:  "LflSearchRunFailures",
							Expr:   `lfl:search_failures:rate5m > 0`,
							For:    "15m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Saved search runs are failing",
								"description": "Scheduled search runs have been failing for more than 15 minutes.",
							},
						},
						{
							Alert:  "LflEvaluationErrors",
							Expr:   `rate(lfl_evaluation_errors_total[15m]) / clamp_min(lfl:evaluations:rate5m, 0.001) > 0.2`,
							For:    "15m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Listing evaluation error ratio is elevated",
								"description": "More than 20% of listings are failing evaluation.",
							},
						},
						{
							Alert:  "LflEbayQuotaHigh",
							Expr:   `lfl_ebay_daily_usage > 4000`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "eBay API daily usage is above 80% of the quota",
								"description": "Daily eBay API usage has exceeded 4000 calls (default limit is 5000).",
							},
						},
						{
							Alert:  "LflEbayLimitReached",
							Expr:   `increase(lfl_ebay_daily_limit_hits_total[5m]) > 0`,
							For:    "0m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "eBay API daily limit has been reached",
								"description": "The eBay Browse API daily quota is exhausted. Comparables lookups are skipped until the Pacific midnight reset.",
							},
						},
						{
							Alert:  "LflNotificationFailures",
							Expr:   `increase(lfl_notification_failures_total[5m]) > 0`,
							For:    "1m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more deal notifications (Discord webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
