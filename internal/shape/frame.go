package shape

import (
	"math"
	"strconv"
)

// Frame is a chart flattened to a header and rows of string or float64 cells.
type Frame struct {
	Name    string
	Columns []string
	Records [][]any
}

// Frame flattens the chart for tabular sinks. Columns are named after the
// bound source fields.
func (c *Chart) Frame() Frame {
	f := Frame{Name: c.Page}
	switch c.Kind {
	case KindBar:
		f.Columns = appendIf(nil, c.Fields.X)
		f.Columns = appendIf(f.Columns, c.Fields.Series)
		f.Columns = appendIf(f.Columns, c.Fields.Facet)
		f.Columns = append(f.Columns, c.Fields.Y)
		if c.ErrorBars {
			f.Columns = append(f.Columns, "e_plus", "e_minus")
		}
		for _, b := range c.Bars {
			rec := []any{b.X}
			if c.Fields.Series != "" {
				rec = append(rec, b.Series)
			}
			if c.Fields.Facet != "" {
				rec = append(rec, b.Facet)
			}
			rec = append(rec, b.Value)
			if c.ErrorBars {
				rec = append(rec, b.EPlus, b.EMinus)
			}
			f.Records = append(f.Records, rec)
		}
	case KindScatter:
		f.Columns = []string{c.Fields.X, c.Fields.Y, c.Fields.Series, c.Fields.Size, c.Fields.Facet, c.Fields.Hover}
		for _, p := range c.Points {
			f.Records = append(f.Records, []any{p.X, p.Y, p.Color, p.Size, p.Facet, p.Hover})
		}
	case KindLine:
		f.Columns = appendIf([]string{c.Fields.X}, c.Fields.Series)
		f.Columns = append(f.Columns, c.Fields.Y)
		for _, p := range c.Lines {
			rec := []any{p.X}
			if c.Fields.Series != "" {
				rec = append(rec, p.Color)
			}
			f.Records = append(f.Records, append(rec, p.Y))
		}
	case KindChoropleth:
		f.Columns = []string{"state_code", c.Fields.Y}
		for _, m := range c.Cells {
			f.Records = append(f.Records, []any{m.StateCode, m.Value})
		}
	}
	return f
}

// Header returns display labels for the frame's columns.
func (c *Chart) Header(f Frame) []string {
	out := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		out[i] = c.Label(col)
	}
	return out
}

// Strings formats every record cell as text. Floats use the shortest
// representation with at most two decimals.
func (f Frame) Strings() [][]string {
	out := make([][]string, len(f.Records))
	for i, rec := range f.Records {
		row := make([]string, len(rec))
		for j, v := range rec {
			row[j] = FormatCell(v)
		}
		out[i] = row
	}
	return out
}

// FormatCell renders one frame cell as text.
func FormatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(math.Round(x*100)/100, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case nil:
		return ""
	}
	return ""
}

func appendIf(cols []string, name string) []string {
	if name == "" {
		return cols
	}
	return append(cols, name)
}
