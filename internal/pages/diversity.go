package pages

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/frame"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/geo"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/stats"
)

const (
	categoryWomen         = "Women"
	categoryMen           = "Men"
	categoryTotalMinority = "Total Minority"
)

// DiversityOptions configures the diversity page.
type DiversityOptions struct {
	Type    DiversityType
	GroupBy XGroup
}

// DefaultDiversityOptions mirrors the page's initial selection.
func DefaultDiversityOptions() DiversityOptions {
	return DiversityOptions{Type: Gender, GroupBy: ByRegion}
}

// Validate requires canonical option values.
func (o DiversityOptions) Validate() error {
	if err := validate("diversity type", o.Type, DiversityTypes); err != nil {
		return err
	}
	return validate("group by", o.GroupBy, XGroups)
}

// EnrollmentRow is one institution's enrollment in one category, joined with
// its cost attributes and census placement.
type EnrollmentRow struct {
	Name            string
	Type            string
	DegreeLength    string
	State           string
	Division        string
	Region          string
	Category        string
	TotalEnrollment dataset.Num
	Enrollment      dataset.Num
}

// Percent is enrollment as a percentage of total enrollment, null when the
// total is zero or either count is missing.
func (r EnrollmentRow) Percent() dataset.Num {
	if !r.Enrollment.Valid || !r.TotalEnrollment.Valid {
		return dataset.Null
	}
	p, ok := stats.Percent(r.Enrollment.V, r.TotalEnrollment.V)
	if !ok {
		return dataset.Null
	}
	return dataset.Some(p)
}

// JoinEnrollment inner-joins cost attributes onto diversity rows by name. The
// placement comes from the cost row's state, backfilled from its code, and
// falls back to the diversity row's own state.
func JoinEnrollment(costs []dataset.Cost, div []dataset.Diversity) []EnrollmentRow {
	return frame.InnerJoin(costs, div,
		func(c dataset.Cost) string { return c.Name },
		func(d dataset.Diversity) string { return d.Name },
		func(c dataset.Cost, d dataset.Diversity) EnrollmentRow {
			p := Locate(c.Institution)
			if p.Division == "" && d.State != "" {
				p.State = d.State
				loc := geo.Locate(d.State)
				p.Division, p.Region = loc.Division, loc.Region
			}
			return EnrollmentRow{
				Name:            c.Name,
				Type:            c.Type,
				DegreeLength:    c.DegreeLength,
				State:           p.State,
				Division:        p.Division,
				Region:          p.Region,
				Category:        d.Category,
				TotalEnrollment: d.TotalEnrollment,
				Enrollment:      d.Enrollment,
			}
		})
}

// GenderComplement keeps the Women rows and adds a Men row for each one with
// enrollment = total - women. Output is sorted by institution name.
func GenderComplement(rows []EnrollmentRow) []EnrollmentRow {
	women := frame.Filter(rows, func(r EnrollmentRow) bool { return r.Category == categoryWomen })
	out := make([]EnrollmentRow, 0, 2*len(women))
	out = append(out, women...)
	for _, w := range women {
		m := w
		m.Category = categoryMen
		m.Enrollment = dataset.Null
		if w.TotalEnrollment.Valid && w.Enrollment.Valid {
			m.Enrollment = dataset.Some(w.TotalEnrollment.V - w.Enrollment.V)
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RaceCategories drops the Women and Total Minority rows so that only the
// individual race categories remain.
func RaceCategories(rows []EnrollmentRow) []EnrollmentRow {
	return frame.Filter(rows, func(r EnrollmentRow) bool {
		return r.Category != categoryWomen && r.Category != categoryTotalMinority
	})
}

// DeriveDiversity applies the category derivation for the chosen view.
func DeriveDiversity(rows []EnrollmentRow, view DiversityType) []EnrollmentRow {
	if view == Gender {
		return GenderComplement(rows)
	}
	return RaceCategories(rows)
}

func (o DiversityOptions) field() string {
	switch o.GroupBy {
	case ByDivision:
		return "division"
	case BySchoolType:
		return "type"
	case ByDegreeLength:
		return "degree_length"
	}
	return "region"
}

func (o DiversityOptions) group(r EnrollmentRow) string {
	switch o.GroupBy {
	case ByDivision:
		return geo.OrUnknown(r.Division)
	case BySchoolType:
		return geo.OrUnknown(r.Type)
	case ByDegreeLength:
		return geo.OrUnknown(r.DegreeLength)
	}
	return geo.OrUnknown(r.Region)
}

// AggregateDiversity averages enrollment percent per (group, category).
func AggregateDiversity(rows []EnrollmentRow, opt DiversityOptions) []frame.Row {
	return frame.Aggregate(rows,
		func(r EnrollmentRow) frame.Key { return frame.Key{Group: opt.group(r), Category: r.Category} },
		func(r EnrollmentRow) (float64, bool) {
			p := r.Percent()
			return p.V, p.Valid
		},
		frame.Mean)
}

// Diversity runs the diversity page: mean enrollment percent per group and category.
func Diversity(ctx context.Context, src dataset.Source, opt DiversityOptions) (*shape.Chart, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	t, err := load(ctx, src, dataset.TuitionCost, dataset.DiversitySchool)
	if err != nil {
		return nil, err
	}
	joined := JoinEnrollment(t.costs, t.diversity)
	logJoin(ctx, "diversity", len(t.costs), len(t.diversity), len(joined))

	derived := DeriveDiversity(joined, opt.Type)
	rows := AggregateDiversity(derived, opt)
	zerolog.Ctx(ctx).Debug().Str("view", string(opt.Type)).Int("rows", len(derived)).Int("groups", len(rows)).Msg("diversity derived")

	field := opt.field()
	return &shape.Chart{
		Page:   "diversity",
		Kind:   shape.KindBar,
		Title:  "Diversity Statistics",
		Fields: shape.Fields{X: field, Y: "enrollment_percent", Series: "category"},
		Labels: map[string]string{
			field:                string(opt.GroupBy),
			"enrollment_percent": "Average Enrollment Percent",
			"category":           "Category",
		},
		Bars: shape.BarsFrom(rows),
	}, nil
}
