package stats

import (
	"reflect"
	"testing"
)

func TestEqualWidthEdges(t *testing.T) {
	b := EqualWidth([]float64{0, 3, 7, 10}, 5)
	want := []float64{0, 2, 4, 6, 8, 10}
	if !reflect.DeepEqual(b.Edges, want) {
		t.Fatalf("edges: got %v, want %v", b.Edges, want)
	}
	cases := []struct {
		v    float64
		want int
	}{
		{0, 0}, {2, 0}, {2.5, 1}, {4, 1}, {9, 4}, {10, 4}, {-1, -1}, {11, -1},
	}
	for _, c := range cases {
		if got := b.Index(c.v); got != c.want {
			t.Errorf("Index(%v) = %d, want %d", c.v, got, c.want)
		}
	}
	if l, ok := b.Assign(3); !ok || l != "$2-$4" {
		t.Errorf("Assign(3) = %q, %v", l, ok)
	}
}

func TestEqualWidthRoundedWidthNeverPassesMax(t *testing.T) {
	b := EqualWidth([]float64{0, 3}, 5)
	last := b.Edges[len(b.Edges)-1]
	if last != 3 {
		t.Fatalf("last edge: got %v", last)
	}
	for i := 1; i < len(b.Edges); i++ {
		if b.Edges[i] <= b.Edges[i-1] {
			t.Fatalf("edges not increasing: %v", b.Edges)
		}
	}
}

func TestEqualWidthFlatData(t *testing.T) {
	b := EqualWidth([]float64{5, 5, 5}, 5)
	if b.Len() != 1 || b.Index(5) != 0 {
		t.Fatalf("flat data should produce a single bin: %v", b.Edges)
	}
}

func TestQuantileBinsBalancePopulation(t *testing.T) {
	vals := make([]float64, 0, 100)
	for i := 1; i <= 100; i++ {
		v := float64(i)
		if i > 80 {
			v = float64(i * i) // long right tail
		}
		vals = append(vals, v)
	}
	q := QuantileBins(vals, 5)
	if q.Len() != 5 {
		t.Fatalf("expected 5 bins, got %v", q.Edges)
	}
	counts := make([]int, q.Len())
	for _, v := range vals {
		counts[q.Index(v)]++
	}
	for i, c := range counts {
		if c < 19 || c > 21 {
			t.Errorf("bin %d holds %d values", i, c)
		}
	}

	e := EqualWidth(vals, 5)
	eq := make([]int, e.Len())
	for _, v := range vals {
		eq[e.Index(v)]++
	}
	if reflect.DeepEqual(eq, counts) {
		t.Errorf("equal-width and quantile bins should differ on skewed data")
	}
}

func TestQuantileBinsCollapseDuplicates(t *testing.T) {
	b := QuantileBins([]float64{1, 1, 1, 1, 2}, 5)
	for i := 1; i < len(b.Edges); i++ {
		if b.Edges[i] <= b.Edges[i-1] {
			t.Fatalf("duplicate edges: %v", b.Edges)
		}
	}
	if b.Index(1) != 0 || b.Index(2) != b.Len()-1 {
		t.Fatalf("assignment with collapsed edges: %v", b.Edges)
	}
}

func TestEmptyBinner(t *testing.T) {
	var b Binner
	if _, ok := b.Assign(1); ok {
		t.Fatal("empty binner should not assign")
	}
}
