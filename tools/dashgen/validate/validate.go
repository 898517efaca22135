// Package validate checks generated dashboards and rule files for PromQL
// parse errors and references to metrics the gateway does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/mercadoflow/meli-gateway/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation, warnings
// are advisory.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Dashboard validates every Prometheus expression found in the dashboard
// against the known metric set.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("re-reading dashboard JSON: %v", err))
		return res
	}

	for _, expr := range collectExprs(doc) {
		checkExpr(&res, expr, known)
	}
	return res
}

// Rules validates every expression in a PrometheusRule CR against the
// known metric set.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, group := range cr.Spec.Groups {
		for _, rule := range group.Rules {
			checkExpr(&res, rule.Expr, known)
		}
	}
	return res
}

// collectExprs walks the marshaled dashboard document and gathers the
// value of every "expr" key.
func collectExprs(node any) []string {
	var exprs []string
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if key == "expr" {
				if s, ok := child.(string); ok && s != "" {
					exprs = append(exprs, s)
					continue
				}
			}
			exprs = append(exprs, collectExprs(child)...)
		}
	case []any:
		for _, child := range v {
			exprs = append(exprs, collectExprs(child)...)
		}
	}
	return exprs
}

func checkExpr(res *Result, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
		return
	}

	//nolint:errcheck,gosec // the inspector never returns an error
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !knownMetric(vs.Name, known) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})
}

// knownMetric resolves histogram series suffixes back to their base name.
func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base := strings.TrimSuffix(name, suffix); base != name && known[base] {
			return true
		}
	}
	return false
}
