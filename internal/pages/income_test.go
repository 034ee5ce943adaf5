package pages

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

func TestPercentCostMasksZeroPrice(t *testing.T) {
	for _, net := range []float64{0, 50} {
		p := PercentCost(dataset.Some(net), dataset.Some(0))
		if p.Valid || math.IsInf(p.V, 0) || math.IsNaN(p.V) {
			t.Errorf("net %v over zero price: %+v", net, p)
		}
	}
	if p := PercentCost(dataset.Some(25), dataset.Some(100)); !p.Valid || p.V != 25 {
		t.Errorf("25/100: %+v", p)
	}
	if PercentCost(dataset.Null, dataset.Some(100)).Valid {
		t.Errorf("null net cost should stay null")
	}
}

func TestIncomeYearsFromJoinedData(t *testing.T) {
	lo, hi, err := IncomeYears(context.Background(), fixtureSource())
	if err != nil {
		t.Fatalf("IncomeYears: %v", err)
	}
	// Z is not in the cost table, so 2016 is not offered.
	if lo != 2017 || hi != 2018 {
		t.Fatalf("years: %d-%d", lo, hi)
	}
}

func TestIncomePageUngrouped(t *testing.T) {
	opt := DefaultIncomeOptions()
	chart, err := Income(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("Income: %v", err)
	}
	if chart.Kind != shape.KindBar || !chart.ErrorBars {
		t.Fatalf("chart: %+v", chart)
	}
	want := []shape.Bar{
		{X: "0 to 30,000", Value: 37.5, EPlus: 6.25, EMinus: 6.25},
		{X: "48,001 to 75,000", Value: 50},
	}
	if len(chart.Bars) != len(want) {
		t.Fatalf("bars: %+v", chart.Bars)
	}
	for i, w := range want {
		if chart.Bars[i] != w {
			t.Errorf("bar %d: got %+v, want %+v", i, chart.Bars[i], w)
		}
	}
}

func TestIncomePageDropsOutOfRangePercent(t *testing.T) {
	chart, err := Income(context.Background(), fixtureSource(), IncomeOptions{Year: 2018, GroupBy: GroupNone, Binning: EqualWidthBins, Chart: ChartBar})
	if err != nil {
		t.Fatalf("Income: %v", err)
	}
	if len(chart.Bars) != 1 || chart.Bars[0].Value != 10 {
		t.Fatalf("150%% row should be dropped: %+v", chart.Bars)
	}
}

func TestIncomePageGroupByType(t *testing.T) {
	opt := DefaultIncomeOptions()
	opt.GroupBy = GroupType
	chart, err := Income(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("Income: %v", err)
	}
	var got []string
	for _, b := range chart.Bars {
		got = append(got, b.Facet+"/"+b.X)
	}
	want := []string{"Public/0 to 30,000", "Public/48,001 to 75,000", "Private/0 to 30,000"}
	if len(got) != len(want) {
		t.Fatalf("bars: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bar %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if chart.Fields.Facet != "type" {
		t.Errorf("facet field: %q", chart.Fields.Facet)
	}
}

func TestIncomePageTotalCostBins(t *testing.T) {
	opt := DefaultIncomeOptions()
	opt.GroupBy = GroupTotalCost
	chart, err := Income(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("Income: %v", err)
	}
	facets := map[string]bool{}
	for _, b := range chart.Bars {
		facets[b.Facet] = true
	}
	if !facets["$20000-$24000"] || !facets["$36000-$40000"] || len(facets) != 2 {
		t.Fatalf("equal-width facets: %v", facets)
	}

	opt.Binning = QuantileBins
	chart, err = Income(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("Income: %v", err)
	}
	for _, b := range chart.Bars {
		if b.Facet == "" || b.Facet == "Unknown" {
			t.Fatalf("quantile bins left a row unassigned: %+v", b)
		}
	}
}

func TestIncomePageLineChart(t *testing.T) {
	opt := DefaultIncomeOptions()
	opt.Chart = ChartLine
	chart, err := Income(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("Income: %v", err)
	}
	if chart.Kind != shape.KindLine || len(chart.Lines) != 2 {
		t.Fatalf("chart: %+v", chart)
	}
	if chart.Lines[0].Rank != 0 || chart.Lines[1].Rank != 2 {
		t.Fatalf("line order: %+v", chart.Lines)
	}
}

func TestIncomePageRejectsYearOutsideData(t *testing.T) {
	opt := DefaultIncomeOptions()
	opt.Year = 2030
	if _, err := Income(context.Background(), fixtureSource(), opt); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestAggregateIncomeOrdersCostBinsAscending(t *testing.T) {
	rows := []IncomeRow{
		{IncomeLevel: "0 to 30,000", TotalPrice: dataset.Some(40000), PercentCost: dataset.Some(50)},
		{IncomeLevel: "0 to 30,000", TotalPrice: dataset.Null, PercentCost: dataset.Some(10)},
		{IncomeLevel: "0 to 30,000", TotalPrice: dataset.Some(20000), PercentCost: dataset.Some(25)},
	}
	for _, binning := range Binnings {
		opt := IncomeOptions{GroupBy: GroupTotalCost, Binning: binning, Chart: ChartBar}
		got := AggregateIncome(rows, opt)
		if len(got) != 3 {
			t.Fatalf("%s: rows %+v", binning, got)
		}
		if got[0].Value != 25 || got[1].Value != 50 || got[2].Group != "Unknown" {
			t.Errorf("%s: facets not in price order: %+v", binning, got)
		}
		bars := shape.IncomeBars(got)
		if bars[0].Facet != got[0].Group || bars[2].Facet != "Unknown" {
			t.Errorf("%s: bars reordered: %+v", binning, bars)
		}
	}
}

func TestIncomeSinglePointKeepsZeroErrorBars(t *testing.T) {
	src := fixtureSource()
	src[dataset.TuitionIncome] = "name,state,total_price,year,campus,net_cost,income_lvl\n" +
		"A,California,20000,2017,On Campus,5000,\"0 to 30,000\"\n"
	chart, err := Income(context.Background(), src, DefaultIncomeOptions())
	if err != nil {
		t.Fatalf("Income: %v", err)
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(chart); err != nil {
		t.Fatal(err)
	}
	body := buf.String()
	if !strings.Contains(body, `"e_plus":0`) || !strings.Contains(body, `"e_minus":0`) {
		t.Fatalf("zero error bars missing from %s", body)
	}
}
