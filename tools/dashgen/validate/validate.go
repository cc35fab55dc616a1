// Package validate checks generated dashboards and rules against the set of
// metrics the storefront actually exports.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects the problems found in a set of PromQL expressions.
// Errors make an artifact unusable. Warnings flag suspicious queries.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses one PromQL expression and checks every metric it selects.
func Expr(expr string, known map[string]bool) Result {
	var r Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("parse %q: %v", expr, err))
		return r
	}

	selectors := 0
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		selectors++
		if !isKnown(vs.Name, known) {
			r.Errors = append(r.Errors, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})

	if selectors == 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("expression %q selects no metrics", expr))
	}
	return r
}

func isKnown(name string, known map[string]bool) bool {
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

// Exprs validates every expression and merges the results.
func Exprs(exprs []string, known map[string]bool) Result {
	var r Result
	for _, e := range exprs {
		r.merge(Expr(e, known))
	}
	return r
}

// Dashboard validates every Prometheus target expression in a built
// dashboard. The dashboard is walked in its JSON form so any panel type
// is covered.
func Dashboard(dash any, known map[string]bool) Result {
	data, err := json.Marshal(dash)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("marshal dashboard: %v", err)}}
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return Result{Errors: []string{fmt.Sprintf("decode dashboard: %v", err)}}
	}

	exprs := collectExprs(tree, nil)
	if len(exprs) == 0 {
		return Result{Warnings: []string{"dashboard has no queries"}}
	}
	sort.Strings(exprs)
	return Exprs(exprs, known)
}

func collectExprs(node any, acc []string) []string {
	switch v := node.(type) {
	case map[string]any:
		if expr, ok := v["expr"].(string); ok && expr != "" {
			acc = append(acc, expr)
		}
		for _, child := range v {
			acc = collectExprs(child, acc)
		}
	case []any:
		for _, child := range v {
			acc = collectExprs(child, acc)
		}
	}
	return acc
}
