// Package validate checks generated dashboards and rules against PromQL
// syntax and the set of metrics localflipper actually exports.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/localflipper/tools/dashgen/rules"
)

// Result collects validation problems. Errors fail generation; warnings
// are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge appends other's findings to r.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Metrics parses expr and returns the metric names it selects, sorted.
func Metrics(expr string) ([]string, error) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			seen[vs.Name] = true
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// Known reports whether name is in known, resolving histogram series to
// their base metric.
func Known(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Expr validates one PromQL expression. where identifies it in messages.
func Expr(where, expr string, known map[string]bool) Result {
	var r Result
	if strings.TrimSpace(expr) == "" {
		r.errorf("%s: empty expression", where)
		return r
	}

	names, err := Metrics(expr)
	if err != nil {
		r.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return r
	}
	if len(names) == 0 {
		r.warnf("%s: expression selects no metrics: %q", where, expr)
	}
	for _, n := range names {
		if !Known(n, known) {
			r.errorf("%s: unknown metric %q", where, n)
		}
	}
	return r
}

// Dashboard validates every Prometheus target in the dashboard, including
// panels nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var r Result
	for _, p := range dash.Panels {
		if p.Panel != nil {
			r.Merge(panel(*p.Panel, known))
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				r.Merge(panel(inner, known))
			}
		}
	}
	return r
}

func panel(p dashboard.Panel, known map[string]bool) Result {
	var r Result
	title := "<untitled>"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		r.warnf("panel %q has no targets", title)
		return r
	}

	for i, t := range p.Targets {
		var expr string
		switch q := t.(type) {
		case prometheus.Dataquery:
			expr = q.Expr
		case *prometheus.Dataquery:
			expr = q.Expr
		default:
			r.warnf("panel %q target %d is not a Prometheus query", title, i)
			continue
		}
		r.Merge(Expr(fmt.Sprintf("panel %q target %d", title, i), expr, known))
	}
	return r
}

// Rules validates every rule expression in the CR. Recording rule names
// must themselves be known so dashboards can reference them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var r Result
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Alert
			if rule.Record != "" {
				name = rule.Record
				if !known[rule.Record] {
					r.errorf("group %s: recording rule %q is not in the known metric set", g.Name, rule.Record)
				}
			}
			if name == "" {
				r.errorf("group %s: rule has neither record nor alert", g.Name)
				continue
			}
			r.Merge(Expr(fmt.Sprintf("group %s rule %s", g.Name, name), rule.Expr, known))
		}
	}
	return r
}
