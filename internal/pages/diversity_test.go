package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

func toyCosts() []dataset.Cost {
	return []dataset.Cost{
		{Institution: dataset.Institution{Name: "A", State: "California", StateCode: "CA", Type: "Public", DegreeLength: "4 Year"}},
		{Institution: dataset.Institution{Name: "B", State: "New York", StateCode: "NY", Type: "Private", DegreeLength: "2 Year"}},
	}
}

func toyDiversity() []dataset.Diversity {
	return []dataset.Diversity{
		{Name: "A", Category: "Women", Enrollment: dataset.Some(400), TotalEnrollment: dataset.Some(1000)},
		{Name: "B", Category: "Women", Enrollment: dataset.Some(300), TotalEnrollment: dataset.Some(600)},
	}
}

func TestGenderDerivationToyScenario(t *testing.T) {
	rows := DeriveDiversity(JoinEnrollment(toyCosts(), toyDiversity()), Gender)
	want := []struct {
		name, category string
		enrollment     float64
		percent        float64
	}{
		{"A", "Women", 400, 40},
		{"A", "Men", 600, 60},
		{"B", "Women", 300, 50},
		{"B", "Men", 300, 50},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		r := rows[i]
		if r.Name != w.name || r.Category != w.category || r.Enrollment.V != w.enrollment {
			t.Errorf("row %d: got %s/%s(%v)", i, r.Name, r.Category, r.Enrollment.V)
		}
		if p := r.Percent(); !p.Valid || p.V != w.percent {
			t.Errorf("row %d: percent %v, want %v", i, p, w.percent)
		}
	}

	agg := AggregateDiversity(rows, DiversityOptions{Type: Gender, GroupBy: ByRegion})
	got := map[string]float64{}
	for _, r := range agg {
		got[r.Group+"/"+r.Category] = r.Value
	}
	expect := map[string]float64{"West/Women": 40, "West/Men": 60, "Northeast/Women": 50, "Northeast/Men": 50}
	if len(got) != len(expect) || len(agg) != len(expect) {
		t.Fatalf("groups: %v", got)
	}
	for k, v := range expect {
		if got[k] != v {
			t.Errorf("%s: got %v, want %v", k, got[k], v)
		}
	}
}

func TestGenderComplementSumsToTotal(t *testing.T) {
	rows := JoinEnrollment(toyCosts(), []dataset.Diversity{
		{Name: "A", Category: "Women", Enrollment: dataset.Some(700), TotalEnrollment: dataset.Some(900)},
		{Name: "A", Category: "Asian", Enrollment: dataset.Some(10), TotalEnrollment: dataset.Some(900)},
		{Name: "B", Category: "Women", Enrollment: dataset.Some(0), TotalEnrollment: dataset.Some(25)},
	})
	out := GenderComplement(rows)
	women := map[string]EnrollmentRow{}
	for _, r := range out {
		if r.Category == "Asian" {
			t.Fatalf("non-gender category leaked: %+v", r)
		}
		if r.Category == "Women" {
			women[r.Name] = r
		}
	}
	men := 0
	for _, r := range out {
		if r.Category != "Men" {
			continue
		}
		men++
		w := women[r.Name]
		if r.Enrollment.V+w.Enrollment.V != w.TotalEnrollment.V {
			t.Errorf("%s: men %v + women %v != total %v", r.Name, r.Enrollment.V, w.Enrollment.V, w.TotalEnrollment.V)
		}
		if r.TotalEnrollment != w.TotalEnrollment {
			t.Errorf("%s: total changed", r.Name)
		}
	}
	if men != len(women) {
		t.Fatalf("expected one Men row per Women row, got %d/%d", men, len(women))
	}
}

func TestDiversityPageRaceView(t *testing.T) {
	chart, err := Diversity(context.Background(), fixtureSource(), DiversityOptions{Type: Race, GroupBy: BySchoolType})
	if err != nil {
		t.Fatalf("Diversity: %v", err)
	}
	if chart.Kind != shape.KindBar || chart.Fields.X != "type" {
		t.Fatalf("chart: %+v", chart)
	}
	got := map[string]float64{}
	for _, b := range chart.Bars {
		if b.Series == "Women" || b.Series == "Total Minority" {
			t.Fatalf("race view kept %s", b.Series)
		}
		got[b.X+"/"+b.Series] = b.Value
	}
	want := map[string]float64{"Public/Asian": 10, "Public/White": 50, "Private/Asian": 10}
	if len(got) != len(want) {
		t.Fatalf("bars: %v", got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: got %v, want %v", k, got[k], v)
		}
	}
}

func TestDiversityPageGenderByDivision(t *testing.T) {
	chart, err := Diversity(context.Background(), fixtureSource(), DiversityOptions{Type: Gender, GroupBy: ByDivision})
	if err != nil {
		t.Fatalf("Diversity: %v", err)
	}
	got := map[string]float64{}
	for _, b := range chart.Bars {
		got[b.X+"/"+b.Series] = b.Value
	}
	if got["South Atlantic/Women"] != 75 || got["South Atlantic/Men"] != 25 {
		t.Fatalf("backfilled DC row missing: %v", got)
	}
	if got["Pacific/Women"] != 40 || got["Middle Atlantic/Men"] != 50 {
		t.Fatalf("unexpected bars: %v", got)
	}
}

func TestZeroTotalEnrollmentIsMasked(t *testing.T) {
	r := EnrollmentRow{Enrollment: dataset.Some(5), TotalEnrollment: dataset.Some(0)}
	if r.Percent().Valid {
		t.Fatal("zero total should give a null percent")
	}
	rows := AggregateDiversity([]EnrollmentRow{r}, DefaultDiversityOptions())
	if len(rows) != 0 {
		t.Fatalf("all-null group should not produce a row: %+v", rows)
	}
}

func TestUnknownRegionRetained(t *testing.T) {
	costs := []dataset.Cost{{Institution: dataset.Institution{Name: "X", State: "Atlantis", Type: "Public"}}}
	div := []dataset.Diversity{{Name: "X", Category: "Women", Enrollment: dataset.Some(1), TotalEnrollment: dataset.Some(2)}}
	rows := AggregateDiversity(DeriveDiversity(JoinEnrollment(costs, div), Gender), DefaultDiversityOptions())
	if len(rows) != 2 || rows[0].Group != "Unknown" {
		t.Fatalf("unknown region should be kept as Unknown: %+v", rows)
	}
}

func TestDiversityFetchFailureAborts(t *testing.T) {
	src := dataset.MemSource{dataset.TuitionCost: costCSV}
	_, err := Diversity(context.Background(), src, DefaultDiversityOptions())
	var fe *dataset.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestDiversityRejectsInvalidOptions(t *testing.T) {
	_, err := Diversity(context.Background(), fixtureSource(), DiversityOptions{Type: "Age", GroupBy: ByRegion})
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}
