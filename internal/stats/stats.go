// Package stats holds the numeric primitives behind every grouped statistic:
// means, interpolated quantiles, quartile error bars, guarded ratios and binning.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes one group of values.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	Q1     float64
	Q3     float64
	// EPlus and EMinus are the asymmetric error-bar lengths Q3-Median and Median-Q1.
	EPlus  float64
	EMinus float64
}

// Mean returns the arithmetic mean, or NaN for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// Median returns the 0.5 quantile, or NaN for no values.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return Quantile(sorted(values), 0.5)
}

// Quantile interpolates linearly between the order statistics of an ascending
// slice. q is clamped to [0, 1].
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Summarize computes mean, median and quartiles for values. NaN entries are
// ignored; an empty input yields a zero Summary.
func Summarize(values []float64) Summary {
	clean := finite(values)
	if len(clean) == 0 {
		return Summary{}
	}
	s := sorted(clean)
	out := Summary{
		N:      len(s),
		Mean:   stat.Mean(s, nil),
		Median: Quantile(s, 0.5),
		Q1:     Quantile(s, 0.25),
		Q3:     Quantile(s, 0.75),
	}
	out.EPlus = nonNegative(out.Q3 - out.Median)
	out.EMinus = nonNegative(out.Median - out.Q1)
	return out
}

// Ratio divides num by den. It reports false instead of producing an infinite
// or NaN result when den is zero or either side is not finite.
func Ratio(num, den float64) (float64, bool) {
	if den == 0 || !isFinite(num) || !isFinite(den) {
		return 0, false
	}
	return num / den, true
}

// Percent is Ratio scaled by 100.
func Percent(num, den float64) (float64, bool) {
	r, ok := Ratio(num, den)
	return r * 100, ok
}

func sorted(values []float64) []float64 {
	cp := make([]float64, len(values))
	copy(cp, values)
	sort.Float64s(cp)
	return cp
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			out = append(out, v)
		}
	}
	return out
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Interpolation can leave a -1e-15 residue on flat data.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
