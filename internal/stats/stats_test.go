package stats

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestQuantileInterpolates(t *testing.T) {
	s := []float64{1, 2, 3, 4}
	cases := map[float64]float64{0: 1, 0.25: 1.75, 0.5: 2.5, 0.75: 3.25, 1: 4}
	for q, want := range cases {
		if got := Quantile(s, q); !approx(got, want) {
			t.Errorf("Quantile(%v) = %v, want %v", q, got, want)
		}
	}
	if !math.IsNaN(Quantile(nil, 0.5)) {
		t.Errorf("empty input should give NaN")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{10, 40, 20, 30, math.NaN()})
	if s.N != 4 {
		t.Fatalf("N: got %d", s.N)
	}
	if !approx(s.Mean, 25) || !approx(s.Median, 25) || !approx(s.Q1, 17.5) || !approx(s.Q3, 32.5) {
		t.Fatalf("unexpected summary %+v", s)
	}
	if !approx(s.EPlus, 7.5) || !approx(s.EMinus, 7.5) {
		t.Fatalf("error bars %+v", s)
	}
}

func TestErrorBarsNeverNegative(t *testing.T) {
	groups := [][]float64{
		{5},
		{1, 1, 1},
		{0, 100},
		{3, 1, 4, 1, 5, 9, 2, 6},
		{0.1, 0.2, 0.3},
	}
	for _, g := range groups {
		s := Summarize(g)
		if s.EPlus < 0 || s.EMinus < 0 {
			t.Errorf("%v: negative error bar %+v", g, s)
		}
	}
	single := Summarize([]float64{42})
	if single.EPlus != 0 || single.EMinus != 0 || single.Median != 42 {
		t.Errorf("single point: %+v", single)
	}
}

func TestRatioMasksZeroDenominator(t *testing.T) {
	for _, num := range []float64{0, 50} {
		if _, ok := Percent(num, 0); ok {
			t.Errorf("Percent(%v, 0) should be masked", num)
		}
	}
	if v, ok := Percent(25, 50); !ok || v != 50 {
		t.Errorf("Percent(25, 50) = %v, %v", v, ok)
	}
	if _, ok := Ratio(math.Inf(1), 2); ok {
		t.Errorf("infinite numerator should be masked")
	}
}

func TestMeanMedian(t *testing.T) {
	if !approx(Mean([]float64{1, 2, 6}), 3) {
		t.Errorf("Mean")
	}
	if !approx(Median([]float64{7, 1, 3}), 3) {
		t.Errorf("Median")
	}
	if !math.IsNaN(Mean(nil)) || !math.IsNaN(Median(nil)) {
		t.Errorf("empty input should give NaN")
	}
}
