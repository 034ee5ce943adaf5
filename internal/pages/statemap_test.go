package pages

import (
	"context"
	"testing"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

func cellsByCode(c *shape.Chart) map[string]float64 {
	out := map[string]float64{}
	for _, m := range c.Cells {
		out[m.StateCode] = m.Value
	}
	return out
}

func TestStateMapDefaults(t *testing.T) {
	chart, err := StateMap(context.Background(), fixtureSource(), DefaultStateMapOptions())
	if err != nil {
		t.Fatalf("StateMap: %v", err)
	}
	if chart.Kind != shape.KindChoropleth {
		t.Fatalf("kind: %s", chart.Kind)
	}
	want := []shape.MapCell{{StateCode: "CA", Value: 25000}, {StateCode: "DC", Value: 40000}, {StateCode: "NY", Value: 30000}}
	if len(chart.Cells) != len(want) {
		t.Fatalf("cells: %+v", chart.Cells)
	}
	for i := range want {
		if chart.Cells[i] != want[i] {
			t.Errorf("cell %d: got %+v, want %+v", i, chart.Cells[i], want[i])
		}
	}
}

func TestStateMapFilters(t *testing.T) {
	opt := DefaultStateMapOptions()
	opt.Types = []SchoolType{Public}
	opt.Stat = StatRoomAndBoard
	chart, err := StateMap(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("StateMap: %v", err)
	}
	got := cellsByCode(chart)
	if len(got) != 1 || got["CA"] != 10000 {
		t.Fatalf("cells: %v", got)
	}

	opt.Types = nil
	chart, err = StateMap(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("StateMap: %v", err)
	}
	if len(chart.Cells) != 0 {
		t.Fatalf("empty selection should give no cells: %+v", chart.Cells)
	}
}

func TestStateMapPayAndDiversity(t *testing.T) {
	opt := DefaultStateMapOptions()
	opt.Stat = StatMidCareerPay
	chart, err := StateMap(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("StateMap: %v", err)
	}
	if got := cellsByCode(chart); got["CA"] != 90000 || got["DC"] != 100000 || len(got) != 2 {
		t.Fatalf("mid career cells: %v", got)
	}

	opt.Stat = StatRace
	chart, err = StateMap(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("StateMap: %v", err)
	}
	if got := cellsByCode(chart); got["CA"] != 30 || got["DC"] != 50 || len(got) != 2 {
		t.Fatalf("race cells: %v", got)
	}

	opt.Stat = StatGender
	chart, err = StateMap(context.Background(), fixtureSource(), opt)
	if err != nil {
		t.Fatalf("StateMap: %v", err)
	}
	if got := cellsByCode(chart); got["CA"] != 40 || got["NY"] != 50 || got["DC"] != 75 {
		t.Fatalf("gender cells: %v", got)
	}
	if chart.Label("enrollment_percent") != "Gender" {
		t.Errorf("label: %q", chart.Label("enrollment_percent"))
	}
}
