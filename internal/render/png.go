package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/geo"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/utils"
)

// ErrUnsupportedChart is returned for chart kinds with no image renderer.
var ErrUnsupportedChart = errors.New("unsupported chart kind")

const (
	imageWidth  = 12 * vg.Inch
	imageHeight = 7 * vg.Inch
	barWidth    = vg.Length(14)
)

// PNG draws the chart and saves it to path. The format follows the file
// extension understood by gonum/plot (.png, .svg, .pdf).
func PNG(path string, c *shape.Chart) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = c.Label(c.Fields.X)
	p.Y.Label.Text = c.Label(c.Fields.Y)
	p.Legend.Top = true

	var err error
	switch c.Kind {
	case shape.KindBar:
		err = drawBars(p, c)
	case shape.KindLine:
		err = drawLines(p, c)
	case shape.KindScatter:
		err = drawScatter(p, c)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedChart, c.Kind)
	}
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid())
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	if err := p.Save(imageWidth, imageHeight, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// drawBars groups bars by series (or by facet when there is no series) and
// sets each group side by side around the nominal x positions.
func drawBars(p *plot.Plot, c *shape.Chart) error {
	xs := ordered(len(c.Bars), func(i int) string { return c.Bars[i].X })
	seriesOf := func(b shape.Bar) string {
		if b.Series != "" {
			return b.Series
		}
		return b.Facet
	}
	series := ordered(len(c.Bars), func(i int) string { return seriesOf(c.Bars[i]) })

	xi := index(xs)
	for si, name := range series {
		values := make(plotter.Values, len(xs))
		for _, b := range c.Bars {
			if seriesOf(b) == name {
				values[xi[b.X]] = b.Value
			}
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		bars.Color = plotutil.Color(si)
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = vg.Length(float64(si)-float64(len(series)-1)/2) * barWidth
		p.Add(bars)
		if c.ErrorBars {
			w := whiskers{offset: bars.Offset, xi: xi}
			for _, b := range c.Bars {
				if seriesOf(b) == name {
					w.bars = append(w.bars, b)
				}
			}
			p.Add(w)
		}
		if name != "" {
			p.Legend.Add(name, bars)
		}
	}
	p.NominalX(xs...)
	p.X.Tick.Label.Rotation = math.Pi / 8
	p.X.Tick.Label.XAlign = draw.XRight
	return nil
}

// whiskers draws asymmetric error bars at the same offset as their bar series.
type whiskers struct {
	bars   []shape.Bar
	xi     map[string]int
	offset vg.Length
}

func (w whiskers) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	style := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	capHalf := barWidth / 4
	for _, b := range w.bars {
		x := trX(float64(w.xi[b.X])) + w.offset
		lo, hi := trY(b.Value-b.EMinus), trY(b.Value+b.EPlus)
		c.StrokeLine2(style, x, lo, x, hi)
		c.StrokeLine2(style, x-capHalf, lo, x+capHalf, lo)
		c.StrokeLine2(style, x-capHalf, hi, x+capHalf, hi)
	}
}

// DataRange widens the y axis to include the whisker ends.
func (w whiskers) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, b := range w.bars {
		x := float64(w.xi[b.X])
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin = math.Min(ymin, b.Value-b.EMinus)
		ymax = math.Max(ymax, b.Value+b.EPlus)
	}
	if len(w.bars) == 0 {
		xmin, xmax = 0, 0
	}
	return xmin, xmax, ymin, ymax
}

// drawLines places income brackets at their rank on the x axis.
func drawLines(p *plot.Plot, c *shape.Chart) error {
	series := ordered(len(c.Lines), func(i int) string { return c.Lines[i].Color })
	for si, name := range series {
		var pts plotter.XYs
		for _, lp := range c.Lines {
			if lp.Color == name {
				pts = append(pts, plotter.XY{X: float64(lp.Rank), Y: lp.Y})
			}
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("line chart: %w", err)
		}
		line.Color = plotutil.Color(si)
		line.Width = vg.Points(2)
		points.Color = plotutil.Color(si)
		p.Add(line, points)
		if name != "" {
			p.Legend.Add(name, line, points)
		}
	}
	p.NominalX(geo.IncomeLevels...)
	return nil
}

// drawScatter colors markers by series and scales their radius with Size.
func drawScatter(p *plot.Plot, c *shape.Chart) error {
	maxSize := 0.0
	for _, pt := range c.Points {
		maxSize = math.Max(maxSize, pt.Size)
	}
	series := ordered(len(c.Points), func(i int) string { return c.Points[i].Color })
	for si, name := range series {
		var pts plotter.XYs
		var sizes []float64
		for _, pt := range c.Points {
			if pt.Color == name {
				pts = append(pts, plotter.XY{X: pt.X, Y: pt.Y})
				sizes = append(sizes, pt.Size)
			}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("scatter chart: %w", err)
		}
		col := plotutil.Color(si)
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			r := vg.Points(2)
			if maxSize > 0 {
				r += vg.Points(8 * math.Sqrt(sizes[i]/maxSize))
			}
			return draw.GlyphStyle{Color: col, Radius: r, Shape: draw.CircleGlyph{}}
		}
		p.Add(sc)
		p.Legend.Add(name, sc)
	}
	return nil
}

// ordered returns the distinct keys in first-appearance order.
func ordered(n int, key func(int) string) []string {
	seen := map[string]bool{}
	var out []string
	for i := 0; i < n; i++ {
		k := key(i)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func index(keys []string) map[string]int {
	m := make(map[string]int, len(keys))
	for i, k := range keys {
		m[k] = i
	}
	return m
}
