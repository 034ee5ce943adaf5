package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ColumnSummary profiles one column.
type ColumnSummary struct {
	Name    string
	Kind    Kind
	NonNull int
	Missing int
	Unique  int
	// Numeric stats
	Min  float64
	Max  float64
	Mean float64
	Std  float64
	// Text top values
	TopValues []CategoryCount
}

type CategoryCount struct {
	Value string
	Count int
}

// Summary profiles a whole table.
type Summary struct {
	Dataset ID
	Rows    int
	Cols    []ColumnSummary
}

// Summarize computes per-column counts and statistics.
func Summarize(t *Table) *Summary {
	s := &Summary{Dataset: t.Name, Rows: t.Len()}
	for j, name := range t.Columns {
		c := ColumnSummary{Name: name, Kind: t.Kinds[j], Min: math.Inf(1), Max: math.Inf(-1)}
		cats := map[string]int{}
		// Welford
		var n int
		var mean, m2 float64
		for i := 0; i < t.Len(); i++ {
			v := t.rows[i][j]
			if v.null {
				c.Missing++
				continue
			}
			c.NonNull++
			cats[v.raw]++
			if c.Kind != KindNumeric {
				continue
			}
			x, _ := parseNumeric(v.raw)
			n++
			if x < c.Min {
				c.Min = x
			}
			if x > c.Max {
				c.Max = x
			}
			delta := x - mean
			mean += delta / float64(n)
			m2 += delta * (x - mean)
		}
		c.Unique = len(cats)
		if n > 0 {
			c.Mean = mean
			if n > 1 {
				c.Std = math.Sqrt(m2 / float64(n-1))
			}
		} else {
			c.Min, c.Max = 0, 0
		}
		if c.Kind == KindText {
			tops := make([]CategoryCount, 0, len(cats))
			for k, v := range cats {
				tops = append(tops, CategoryCount{Value: k, Count: v})
			}
			sort.Slice(tops, func(a, b int) bool {
				if tops[a].Count == tops[b].Count {
					return tops[a].Value < tops[b].Value
				}
				return tops[a].Count > tops[b].Count
			})
			if len(tops) > 5 {
				tops = tops[:5]
			}
			c.TopValues = tops
		}
		s.Cols = append(s.Cols, c)
	}
	return s
}

// Markdown renders the profile as a compact text block.
func (s *Summary) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Dataset: %s\n", s.Dataset))
	b.WriteString(fmt.Sprintf("Rows: %d\n", s.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(s.Cols)))
	b.WriteString("[SCHEMA]\n")
	for _, c := range s.Cols {
		total := c.NonNull + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%)", c.Name, c.Kind, c.NonNull, missPct))
		switch c.Kind {
		case KindNumeric:
			b.WriteString(fmt.Sprintf(" min %.4g, max %.4g, mean %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Std))
		case KindText:
			if len(c.TopValues) > 0 {
				b.WriteString(" top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", kv.Value, kv.Count))
				}
				if c.Unique > len(c.TopValues) {
					b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
				}
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
