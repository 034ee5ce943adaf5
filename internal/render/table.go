// Package render draws shaped charts for people: a text table for the
// terminal and a PNG image for bar, line and scatter charts.
package render

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

// Table writes the chart's frame as an aligned text table.
func Table(w io.Writer, c *shape.Chart) {
	f := c.Frame()
	table := tablewriter.NewWriter(w)
	table.SetHeader(c.Header(f))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(f.Strings())
	table.Render()
}
