package pages

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/frame"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/geo"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/stats"
)

// costBins is the number of total-price intervals for the Total Cost grouping.
const costBins = 5

// IncomeOptions configures the income-bracket page. A zero Year selects the
// earliest year in the data.
type IncomeOptions struct {
	Year    int
	GroupBy IncomeGroup
	Binning Binning
	Chart   ChartKind
}

// DefaultIncomeOptions shows the earliest year ungrouped as bars.
func DefaultIncomeOptions() IncomeOptions {
	return IncomeOptions{GroupBy: GroupNone, Binning: EqualWidthBins, Chart: ChartBar}
}

// Validate checks the enumerated fields. The year is checked against the data
// once it is loaded.
func (o IncomeOptions) Validate() error {
	if err := validate("group by", o.GroupBy, IncomeGroups); err != nil {
		return err
	}
	if err := validate("binning", o.Binning, Binnings); err != nil {
		return err
	}
	return validate("chart", o.Chart, ChartKinds)
}

// IncomeRow is one tuition_income row joined with its institution's cost attributes.
type IncomeRow struct {
	Name        string
	State       string
	Type        string
	Division    string
	Region      string
	Year        int
	Campus      string
	IncomeLevel string
	TotalPrice  dataset.Num
	NetCost     dataset.Num
	PercentCost dataset.Num
}

// JoinIncome joins income rows with cost[name, state, type], repairs the
// bracket label and derives percent_cost. A zero total price masks the ratio.
func JoinIncome(income []dataset.Income, costs []dataset.Cost) []IncomeRow {
	return frame.InnerJoin(income, costs,
		func(i dataset.Income) string { return i.Name },
		func(c dataset.Cost) string { return c.Name },
		func(i dataset.Income, c dataset.Cost) IncomeRow {
			p := Locate(c.Institution)
			return IncomeRow{
				Name:        i.Name,
				State:       p.State,
				Type:        c.Type,
				Division:    p.Division,
				Region:      p.Region,
				Year:        i.Year,
				Campus:      i.Campus,
				IncomeLevel: geo.FixIncomeLevel(i.IncomeLevel),
				TotalPrice:  i.TotalPrice,
				NetCost:     i.NetCost,
				PercentCost: PercentCost(i.NetCost, i.TotalPrice),
			}
		})
}

// PercentCost is net cost as a percentage of total price, null when the price
// is zero or either side is missing.
func PercentCost(net, total dataset.Num) dataset.Num {
	if !net.Valid || !total.Valid {
		return dataset.Null
	}
	p, ok := stats.Percent(net.V, total.V)
	if !ok {
		return dataset.Null
	}
	return dataset.Some(p)
}

// Years returns the smallest and largest year present. ok is false when no
// row carries a year.
func Years(rows []IncomeRow) (first, last int, ok bool) {
	for _, r := range rows {
		if r.Year == 0 {
			continue
		}
		if !ok || r.Year < first {
			first = r.Year
		}
		if !ok || r.Year > last {
			last = r.Year
		}
		ok = true
	}
	return first, last, ok
}

// FilterIncome keeps rows of the given year whose percent_cost is within [0, 100].
func FilterIncome(rows []IncomeRow, year int) []IncomeRow {
	return frame.Filter(rows, func(r IncomeRow) bool {
		return r.Year == year && r.PercentCost.Valid && r.PercentCost.V >= 0 && r.PercentCost.V <= 100
	})
}

// Facets assigns each row its group label for the chosen grouping. GroupNone
// yields an empty label for every row.
func Facets(rows []IncomeRow, opt IncomeOptions) []string {
	out := make([]string, len(rows))
	switch opt.GroupBy {
	case GroupRegion:
		for i, r := range rows {
			out[i] = geo.OrUnknown(r.Region)
		}
	case GroupType:
		for i, r := range rows {
			out[i] = geo.OrUnknown(r.Type)
		}
	case GroupTotalCost:
		b := costBinner(rows, opt.Binning)
		for i, r := range rows {
			out[i] = geo.Unknown
			if !r.TotalPrice.Valid {
				continue
			}
			if l, ok := b.Assign(r.TotalPrice.V); ok {
				out[i] = l
			}
		}
	}
	return out
}

// costBinner bins the total prices of rows with the chosen strategy.
func costBinner(rows []IncomeRow, binning Binning) stats.Binner {
	prices := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.TotalPrice.Valid {
			prices = append(prices, r.TotalPrice.V)
		}
	}
	if binning == QuantileBins {
		return stats.QuantileBins(prices, costBins)
	}
	return stats.EqualWidth(prices, costBins)
}

type facetedIncome struct {
	facet string
	row   IncomeRow
}

// AggregateIncome computes median percent_cost with quartile error bars per
// (facet, income level). Total cost facets come out in ascending price order.
func AggregateIncome(rows []IncomeRow, opt IncomeOptions) []frame.Row {
	facets := Facets(rows, opt)
	in := make([]facetedIncome, len(rows))
	for i, r := range rows {
		in[i] = facetedIncome{facet: facets[i], row: r}
	}
	out := frame.Aggregate(in,
		func(f facetedIncome) frame.Key { return frame.Key{Group: f.facet, Category: f.row.IncomeLevel} },
		func(f facetedIncome) (float64, bool) { return f.row.PercentCost.V, f.row.PercentCost.Valid },
		frame.Median)
	if opt.GroupBy == GroupTotalCost {
		order := map[string]int{}
		for i, l := range costBinner(rows, opt.Binning).Labels() {
			order[l] = i
		}
		// Unknown sorts last.
		pos := func(label string) int {
			if i, ok := order[label]; ok {
				return i
			}
			return len(order)
		}
		sort.SliceStable(out, func(i, j int) bool { return pos(out[i].Group) < pos(out[j].Group) })
	}
	return out
}

func (o IncomeOptions) facetField() string {
	switch o.GroupBy {
	case GroupRegion:
		return "region"
	case GroupType:
		return "type"
	case GroupTotalCost:
		return "total_cost"
	}
	return ""
}

// IncomeYears returns the year bounds offered by the income page.
func IncomeYears(ctx context.Context, src dataset.Source) (first, last int, err error) {
	t, err := load(ctx, src, dataset.TuitionIncome, dataset.TuitionCost)
	if err != nil {
		return 0, 0, err
	}
	first, last, ok := Years(JoinIncome(t.income, t.costs))
	if !ok {
		return 0, 0, fmt.Errorf("%w: no income rows with a year", ErrInvalidOption)
	}
	return first, last, nil
}

// Income runs the income-bracket page: the median share of total price paid,
// per income bracket, for one year.
func Income(ctx context.Context, src dataset.Source, opt IncomeOptions) (*shape.Chart, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	t, err := load(ctx, src, dataset.TuitionIncome, dataset.TuitionCost)
	if err != nil {
		return nil, err
	}
	joined := JoinIncome(t.income, t.costs)
	logJoin(ctx, "income", len(t.income), len(t.costs), len(joined))

	lo, hi, ok := Years(joined)
	if !ok {
		return nil, fmt.Errorf("%w: no income rows with a year", ErrInvalidOption)
	}
	if opt.Year == 0 {
		opt.Year = lo
	}
	if opt.Year < lo || opt.Year > hi {
		return nil, fmt.Errorf("%w: year %d outside %d-%d", ErrInvalidOption, opt.Year, lo, hi)
	}

	kept := FilterIncome(joined, opt.Year)
	zerolog.Ctx(ctx).Debug().
		Int("year", opt.Year).
		Int("joined", len(joined)).
		Int("kept", len(kept)).
		Msg("income rows filtered")
	rows := AggregateIncome(kept, opt)

	facet := opt.facetField()
	c := &shape.Chart{
		Page:   "income",
		Title:  fmt.Sprintf("Tuition Cost Percentages by Income Level (%d)", opt.Year),
		Fields: shape.Fields{X: "income_lvl", Y: "median"},
		Labels: map[string]string{
			"median":     "Percentage Paid of Total Cost",
			"income_lvl": "Income Level",
			"type":       "Type",
			"region":     "Region",
			"total_cost": "Total Cost",
		},
	}
	switch opt.Chart {
	case ChartLine:
		c.Kind = shape.KindLine
		c.Fields.Series = facet
		c.Lines = shape.IncomeLines(rows)
	default:
		c.Kind = shape.KindBar
		c.Fields.Facet = facet
		c.ErrorBars = true
		c.Bars = shape.IncomeBars(rows)
	}
	return c, nil
}
