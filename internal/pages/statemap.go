package pages

import (
	"context"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/frame"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/geo"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

// StateMapOptions configures the per-state choropleth. Empty Types or Lengths
// select no institutions.
type StateMapOptions struct {
	Types   []SchoolType
	Lengths []DegreeLength
	Stat    MapStat
}

// DefaultStateMapOptions selects every type and length.
func DefaultStateMapOptions() StateMapOptions {
	return StateMapOptions{
		Types:   append([]SchoolType(nil), SchoolTypes...),
		Lengths: append([]DegreeLength(nil), DegreeLengths...),
		Stat:    StatOutOfStateTuition,
	}
}

// Validate requires canonical values in every selection.
func (o StateMapOptions) Validate() error {
	for _, t := range o.Types {
		if err := validate("school type", t, SchoolTypes); err != nil {
			return err
		}
	}
	for _, l := range o.Lengths {
		if err := validate("degree length", l, DegreeLengths); err != nil {
			return err
		}
	}
	return validate("statistic", o.Stat, MapStats)
}

func (o StateMapOptions) field() string {
	switch o.Stat {
	case StatInStateTuition:
		return "in_state_tuition"
	case StatRoomAndBoard:
		return "room_and_board"
	case StatEarlyCareerPay:
		return "early_career_pay"
	case StatMidCareerPay:
		return "mid_career_pay"
	case StatRace, StatGender:
		return "enrollment_percent"
	}
	return "out_of_state_tuition"
}

func (o StateMapOptions) datasets() []dataset.ID {
	switch o.Stat {
	case StatEarlyCareerPay, StatMidCareerPay:
		return []dataset.ID{dataset.TuitionCost, dataset.SalaryPotential}
	case StatRace, StatGender:
		return []dataset.ID{dataset.TuitionCost, dataset.DiversitySchool}
	}
	return []dataset.ID{dataset.TuitionCost}
}

// FilterCosts keeps institutions whose type and degree length are both selected.
func FilterCosts(costs []dataset.Cost, types []SchoolType, lengths []DegreeLength) []dataset.Cost {
	return frame.Filter(costs, func(c dataset.Cost) bool {
		return contains(types, SchoolType(c.Type)) && contains(lengths, DegreeLength(c.DegreeLength))
	})
}

type stateValue struct {
	code  string
	value dataset.Num
}

// stateValues pairs each selected institution's state code with the chosen
// measure. Pay and diversity measures are joined in by institution name.
func stateValues(costs []dataset.Cost, sal []dataset.Salary, div []dataset.Diversity, stat MapStat) []stateValue {
	switch stat {
	case StatEarlyCareerPay, StatMidCareerPay:
		return frame.InnerJoin(costs, sal,
			func(c dataset.Cost) string { return c.Name },
			func(s dataset.Salary) string { return s.Name },
			func(c dataset.Cost, s dataset.Salary) stateValue {
				v := s.MidCareerPay
				if stat == StatEarlyCareerPay {
					v = s.EarlyCareerPay
				}
				return stateValue{code: c.StateCode, value: v}
			})
	case StatRace, StatGender:
		category := categoryTotalMinority
		if stat == StatGender {
			category = categoryWomen
		}
		picked := frame.Filter(div, func(d dataset.Diversity) bool { return d.Category == category })
		return frame.InnerJoin(costs, picked,
			func(c dataset.Cost) string { return c.Name },
			func(d dataset.Diversity) string { return d.Name },
			func(c dataset.Cost, d dataset.Diversity) stateValue {
				r := EnrollmentRow{TotalEnrollment: d.TotalEnrollment, Enrollment: d.Enrollment}
				return stateValue{code: c.StateCode, value: r.Percent()}
			})
	}
	out := make([]stateValue, 0, len(costs))
	for _, c := range costs {
		v := c.OutOfStateTuition
		switch stat {
		case StatInStateTuition:
			v = c.InStateTuition
		case StatRoomAndBoard:
			v = c.RoomAndBoard
		}
		out = append(out, stateValue{code: c.StateCode, value: v})
	}
	return out
}

// aggregateStates averages the measure per state code.
func aggregateStates(values []stateValue) []frame.Row {
	return frame.Aggregate(values,
		func(v stateValue) frame.Key { return frame.Key{Group: geo.OrUnknown(v.code)} },
		func(v stateValue) (float64, bool) { return v.value.V, v.value.Valid },
		frame.Mean)
}

// StateMap runs the choropleth page: the mean of one measure per state.
func StateMap(ctx context.Context, src dataset.Source, opt StateMapOptions) (*shape.Chart, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	t, err := load(ctx, src, opt.datasets()...)
	if err != nil {
		return nil, err
	}
	costs := FilterCosts(t.costs, opt.Types, opt.Lengths)
	values := stateValues(costs, t.salaries, t.diversity, opt.Stat)
	logJoin(ctx, "statemap", len(costs), len(t.salaries)+len(t.diversity), len(values))

	field := opt.field()
	return &shape.Chart{
		Page:   "statemap",
		Kind:   shape.KindChoropleth,
		Title:  "Statistics by State",
		Fields: shape.Fields{Y: field},
		Labels: map[string]string{field: string(opt.Stat), "state_code": "State"},
		Cells:  shape.CellsFrom(aggregateStates(values)),
	}, nil
}
