// Package shape reduces derived rows to the minimal, de-duplicated column set
// each chart kind needs.
package shape

import (
	"sort"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/frame"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/geo"
)

// Kind is a chart type.
type Kind string

const (
	KindBar        Kind = "bar"
	KindScatter    Kind = "scatter"
	KindLine       Kind = "line"
	KindChoropleth Kind = "choropleth"
)

// Fields names the source column bound to each visual role. Empty roles are unused.
type Fields struct {
	X      string `json:"x,omitempty" yaml:"x,omitempty"`
	Y      string `json:"y,omitempty" yaml:"y,omitempty"`
	Series string `json:"series,omitempty" yaml:"series,omitempty"`
	Facet  string `json:"facet,omitempty" yaml:"facet,omitempty"`
	Size   string `json:"size,omitempty" yaml:"size,omitempty"`
	Hover  string `json:"hover,omitempty" yaml:"hover,omitempty"`
}

// Bar is one bar; EPlus and EMinus are only meaningful when the chart has error
// bars, and are always encoded so a zero-width bar stays explicit.
type Bar struct {
	X      string  `json:"x" yaml:"x"`
	Series string  `json:"series,omitempty" yaml:"series,omitempty"`
	Facet  string  `json:"facet,omitempty" yaml:"facet,omitempty"`
	Value  float64 `json:"value" yaml:"value"`
	EPlus  float64 `json:"e_plus" yaml:"e_plus"`
	EMinus float64 `json:"e_minus" yaml:"e_minus"`
}

// ScatterPoint is one marker.
type ScatterPoint struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Size  float64 `json:"size" yaml:"size"`
	Color string  `json:"color" yaml:"color"`
	Facet string  `json:"facet" yaml:"facet"`
	Hover string  `json:"hover" yaml:"hover"`
}

// LinePoint is one vertex of a series ordered by Rank.
type LinePoint struct {
	X     string  `json:"x" yaml:"x"`
	Rank  int     `json:"rank" yaml:"rank"`
	Y     float64 `json:"y" yaml:"y"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// MapCell is one state's value on a choropleth.
type MapCell struct {
	StateCode string  `json:"state_code" yaml:"state_code"`
	Value     float64 `json:"value" yaml:"value"`
}

// Chart is the shaped output of a page run. Only the slice matching Kind is set.
type Chart struct {
	Page      string            `json:"page" yaml:"page"`
	Kind      Kind              `json:"kind" yaml:"kind"`
	Title     string            `json:"title" yaml:"title"`
	Fields    Fields            `json:"fields" yaml:"fields"`
	Labels    map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	ErrorBars bool              `json:"error_bars,omitempty" yaml:"error_bars,omitempty"`
	Bars      []Bar             `json:"bars,omitempty" yaml:"bars,omitempty"`
	Points    []ScatterPoint    `json:"points,omitempty" yaml:"points,omitempty"`
	Lines     []LinePoint       `json:"lines,omitempty" yaml:"lines,omitempty"`
	Cells     []MapCell         `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// Label returns the display label for a field, falling back to the field name.
func (c *Chart) Label(field string) string {
	if l, ok := c.Labels[field]; ok && l != "" {
		return l
	}
	return field
}

// Len returns the number of marks on the chart.
func (c *Chart) Len() int {
	switch c.Kind {
	case KindBar:
		return len(c.Bars)
	case KindScatter:
		return len(c.Points)
	case KindLine:
		return len(c.Lines)
	case KindChoropleth:
		return len(c.Cells)
	}
	return 0
}

// BarsFrom turns aggregated rows into bars: Group on the x axis, Category as the series.
func BarsFrom(rows []frame.Row) []Bar {
	out := make([]Bar, 0, len(rows))
	for _, r := range rows {
		out = append(out, Bar{X: r.Group, Series: r.Category, Value: r.Value})
	}
	return frame.Distinct(out)
}

// IncomeBars turns rows keyed by (facet, income level) into error-bar bars
// ordered by facet and then bracket rank.
func IncomeBars(rows []frame.Row) []Bar {
	out := make([]Bar, 0, len(rows))
	for _, r := range rows {
		out = append(out, Bar{
			X:      r.Category,
			Facet:  r.Group,
			Value:  r.Value,
			EPlus:  r.Summary.EPlus,
			EMinus: r.Summary.EMinus,
		})
	}
	out = frame.Distinct(out)
	facets := firstSeen(out, func(b Bar) string { return b.Facet })
	sort.SliceStable(out, func(i, j int) bool {
		fi, fj := facets[out[i].Facet], facets[out[j].Facet]
		if fi != fj {
			return fi < fj
		}
		return rankOf(out[i].X) < rankOf(out[j].X)
	})
	return out
}

// IncomeLines turns rows keyed by (series, income level) into line vertices
// ordered by series and then bracket rank.
func IncomeLines(rows []frame.Row) []LinePoint {
	out := make([]LinePoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, LinePoint{X: r.Category, Rank: rankOf(r.Category), Y: r.Value, Color: r.Group})
	}
	out = frame.Distinct(out)
	series := firstSeen(out, func(p LinePoint) string { return p.Color })
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := series[out[i].Color], series[out[j].Color]
		if si != sj {
			return si < sj
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}

// CellsFrom turns rows keyed by state code into choropleth cells sorted by code.
func CellsFrom(rows []frame.Row) []MapCell {
	out := make([]MapCell, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapCell{StateCode: r.Group, Value: r.Value})
	}
	out = frame.Distinct(out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StateCode < out[j].StateCode })
	return out
}

// Unranked brackets sort after the known ones.
func rankOf(level string) int {
	if r := geo.IncomeRank(level); r >= 0 {
		return r
	}
	return len(geo.IncomeLevels)
}

func firstSeen[T any](rows []T, key func(T) string) map[string]int {
	idx := map[string]int{}
	for _, r := range rows {
		k := key(r)
		if _, ok := idx[k]; !ok {
			idx[k] = len(idx)
		}
	}
	return idx
}
