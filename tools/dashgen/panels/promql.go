package panels

import "fmt"

// Job is the Prometheus job label localflipper is scraped under.
const Job = `job="localflipper"`

// Sel wraps a metric name in a selector scoped to the localflipper job,
// with any extra matchers appended.
func Sel(metric string, matchers ...string) string {
	out := metric + "{" + Job
	for _, m := range matchers {
		out += "," + m
	}
	return out + "}"
}

// RateBy is the per-second rate of a counter summed by one label.
func RateBy(metric, label, window string) string {
	return fmt.Sprintf("sum by (%s) (rate(%s[%s]))", label, Sel(metric), window)
}

// IncreaseBy is the increase of a counter over window summed by one label.
func IncreaseBy(metric, label, window string) string {
	return fmt.Sprintf("sum by (%s) (increase(%s[%s]))", label, Sel(metric), window)
}

// Last24h is the increase of an unlabelled counter over the last day.
func Last24h(metric string) string {
	return fmt.Sprintf("increase(%s[24h])", Sel(metric))
}

// Quantile is histogram_quantile over the _bucket series of a histogram.
func Quantile(q float64, histogram, window string) string {
	return fmt.Sprintf("histogram_quantile(%.2f, sum(rate(%s[%s])) by (le))",
		q, Sel(histogram+"_bucket"), window)
}
