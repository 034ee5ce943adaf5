// Package frame provides the row-set operations pages are built from: inner
// joins on institution name, grouped aggregation and de-duplication.
package frame

import (
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/stats"
)

// InnerJoin pairs every left row with every right row sharing its key. Output
// follows left order, then right order within a key. Rows with an empty key or
// no partner are dropped.
func InnerJoin[L, R, O any](left []L, right []R, leftKey func(L) string, rightKey func(R) string, merge func(L, R) O) []O {
	byKey := make(map[string][]R, len(right))
	for _, r := range right {
		k := rightKey(r)
		if k == "" {
			continue
		}
		byKey[k] = append(byKey[k], r)
	}
	out := make([]O, 0, len(left))
	for _, l := range left {
		k := leftKey(l)
		if k == "" {
			continue
		}
		for _, r := range byKey[k] {
			out = append(out, merge(l, r))
		}
	}
	return out
}

// Key identifies one aggregated statistic row.
type Key struct {
	Group    string
	Category string
}

// Reducer picks the reported value out of a group summary.
type Reducer func(stats.Summary) float64

var (
	Mean   Reducer = func(s stats.Summary) float64 { return s.Mean }
	Median Reducer = func(s stats.Summary) float64 { return s.Median }
)

// Row is one aggregated statistic.
type Row struct {
	Key
	Value   float64
	Summary stats.Summary
}

// Aggregate groups rows by key and reduces each group's values. The result
// holds exactly one row per distinct key, in first-appearance order. Null
// values are skipped; a key whose values are all null yields no row.
func Aggregate[T any](rows []T, key func(T) Key, value func(T) (float64, bool), reduce Reducer) []Row {
	var order []Key
	groups := make(map[Key][]float64)
	for _, r := range rows {
		v, ok := value(r)
		if !ok {
			continue
		}
		k := key(r)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], v)
	}
	out := make([]Row, 0, len(order))
	for _, k := range order {
		s := stats.Summarize(groups[k])
		if s.N == 0 {
			continue
		}
		out = append(out, Row{Key: k, Value: reduce(s), Summary: s})
	}
	return out
}

// Distinct drops rows equal to an earlier row, keeping first occurrences.
func Distinct[T comparable](rows []T) []T {
	seen := make(map[T]struct{}, len(rows))
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Filter keeps the rows for which keep returns true.
func Filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
