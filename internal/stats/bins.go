package stats

import (
	"fmt"
	"math"
	"sort"
)

// Binner assigns values to contiguous intervals. The first interval includes
// its lower edge; every interval includes its upper edge.
type Binner struct {
	Edges []float64
}

// EqualWidth splits [min, max] into n intervals of rounded equal width. The
// last upper edge is always max. Degenerate ranges collapse to fewer bins.
func EqualWidth(values []float64, n int) Binner {
	clean := finite(values)
	if len(clean) == 0 || n < 1 {
		return Binner{}
	}
	lo, hi := clean[0], clean[0]
	for _, v := range clean[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := math.Round((hi - lo) / float64(n))
	edges := []float64{lo}
	if width > 0 {
		for i := 1; i < n; i++ {
			e := lo + float64(i)*width
			if e >= hi {
				break
			}
			edges = append(edges, e)
		}
	}
	edges = append(edges, hi)
	return Binner{Edges: edges}
}

// QuantileBins places edges at the i/n quantiles of values so each interval
// holds roughly the same number of values. Duplicate edges are collapsed.
func QuantileBins(values []float64, n int) Binner {
	clean := finite(values)
	if len(clean) == 0 || n < 1 {
		return Binner{}
	}
	s := sorted(clean)
	edges := []float64{s[0]}
	for i := 1; i <= n; i++ {
		e := Quantile(s, float64(i)/float64(n))
		if e > edges[len(edges)-1] {
			edges = append(edges, e)
		}
	}
	if len(edges) == 1 {
		edges = append(edges, edges[0])
	}
	return Binner{Edges: edges}
}

// Len returns the number of intervals.
func (b Binner) Len() int {
	if len(b.Edges) < 2 {
		return 0
	}
	return len(b.Edges) - 1
}

// Index returns the interval holding v, or -1 when v lies outside every interval.
func (b Binner) Index(v float64) int {
	if b.Len() == 0 || !isFinite(v) {
		return -1
	}
	if v < b.Edges[0] || v > b.Edges[len(b.Edges)-1] {
		return -1
	}
	// first upper edge >= v
	i := sort.SearchFloat64s(b.Edges[1:], v)
	if i >= b.Len() {
		return -1
	}
	return i
}

// Label formats interval i as "$lo-$hi".
func (b Binner) Label(i int) string {
	if i < 0 || i >= b.Len() {
		return ""
	}
	return fmt.Sprintf("$%.0f-$%.0f", b.Edges[i], b.Edges[i+1])
}

// Labels lists every interval label in ascending order.
func (b Binner) Labels() []string {
	out := make([]string, b.Len())
	for i := range out {
		out[i] = b.Label(i)
	}
	return out
}

// Assign returns the label of the interval holding v.
func (b Binner) Assign(v float64) (string, bool) {
	i := b.Index(v)
	if i < 0 {
		return "", false
	}
	return b.Label(i), true
}
