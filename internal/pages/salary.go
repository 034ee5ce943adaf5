package pages

import (
	"context"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/frame"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/geo"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

// SalaryOptions configures the tuition-versus-salary scatter page.
type SalaryOptions struct {
	Color   ColorBy
	Tuition TuitionType
	Salary  SalaryType
}

// DefaultSalaryOptions matches the first choice of each selector.
func DefaultSalaryOptions() SalaryOptions {
	return SalaryOptions{Color: ColorState, Tuition: InState, Salary: MidCareer}
}

// Validate requires canonical option values.
func (o SalaryOptions) Validate() error {
	if err := validate("color by", o.Color, ColorBys); err != nil {
		return err
	}
	if err := validate("tuition type", o.Tuition, TuitionTypes); err != nil {
		return err
	}
	return validate("salary type", o.Salary, SalaryTypes)
}

// SalaryRow is an institution present in the cost, salary and diversity tables.
type SalaryRow struct {
	Place
	InStateTuition    dataset.Num
	OutOfStateTuition dataset.Num
	EarlyCareerPay    dataset.Num
	MidCareerPay      dataset.Num
	TotalEnrollment   dataset.Num
}

type enrollment struct {
	name  string
	total dataset.Num
}

// JoinSalary joins cost, salary and diversity[name, total_enrollment] on name.
// The diversity side is reduced to one row per distinct (name, total) first.
func JoinSalary(costs []dataset.Cost, sal []dataset.Salary, div []dataset.Diversity) []SalaryRow {
	withPay := frame.InnerJoin(costs, sal,
		func(c dataset.Cost) string { return c.Name },
		func(s dataset.Salary) string { return s.Name },
		func(c dataset.Cost, s dataset.Salary) SalaryRow {
			return SalaryRow{
				Place:             Locate(c.Institution),
				InStateTuition:    c.InStateTuition,
				OutOfStateTuition: c.OutOfStateTuition,
				EarlyCareerPay:    s.EarlyCareerPay,
				MidCareerPay:      s.MidCareerPay,
			}
		})
	totals := make([]enrollment, 0, len(div))
	for _, d := range div {
		totals = append(totals, enrollment{name: d.Name, total: d.TotalEnrollment})
	}
	totals = frame.Distinct(totals)
	return frame.InnerJoin(withPay, totals,
		func(r SalaryRow) string { return r.Name },
		func(e enrollment) string { return e.name },
		func(r SalaryRow, e enrollment) SalaryRow {
			r.TotalEnrollment = e.total
			return r
		})
}

func (o SalaryOptions) x(r SalaryRow) dataset.Num {
	if o.Tuition == InState {
		return r.InStateTuition
	}
	return r.OutOfStateTuition
}

func (o SalaryOptions) y(r SalaryRow) dataset.Num {
	if o.Salary == EarlyCareer {
		return r.EarlyCareerPay
	}
	return r.MidCareerPay
}

func (o SalaryOptions) color(r SalaryRow) string {
	switch o.Color {
	case ColorDegreeLength:
		return geo.OrUnknown(r.DegreeLength)
	case ColorRegion:
		return geo.OrUnknown(r.Region)
	case ColorDivision:
		return geo.OrUnknown(r.Division)
	}
	return geo.OrUnknown(r.State)
}

func (o SalaryOptions) fields() shape.Fields {
	f := shape.Fields{
		X:      "out_of_state_tuition",
		Y:      "mid_career_pay",
		Series: "state",
		Size:   "total_enrollment",
		Facet:  "type",
		Hover:  "name",
	}
	if o.Tuition == InState {
		f.X = "in_state_tuition"
	}
	if o.Salary == EarlyCareer {
		f.Y = "early_career_pay"
	}
	switch o.Color {
	case ColorDegreeLength:
		f.Series = "degree_length"
	case ColorRegion:
		f.Series = "region"
	case ColorDivision:
		f.Series = "division"
	}
	return f
}

// ScatterPoints shapes joined rows into de-duplicated markers. Rows missing
// either axis value are left out; a missing enrollment gives a zero size.
func ScatterPoints(rows []SalaryRow, opt SalaryOptions) []shape.ScatterPoint {
	out := make([]shape.ScatterPoint, 0, len(rows))
	for _, r := range rows {
		x, y := opt.x(r), opt.y(r)
		if !x.Valid || !y.Valid {
			continue
		}
		out = append(out, shape.ScatterPoint{
			X:     x.V,
			Y:     y.V,
			Size:  r.TotalEnrollment.V,
			Color: opt.color(r),
			Facet: geo.OrUnknown(r.Type),
			Hover: r.Name,
		})
	}
	return frame.Distinct(out)
}

var salaryLabels = map[string]string{
	"in_state_tuition":     "In-State Tuition",
	"out_of_state_tuition": "Out-of-State Tuition",
	"mid_career_pay":       "Mid Career Salary",
	"early_career_pay":     "Early Career Salary",
	"region":               "Region",
	"division":             "Regional Division",
	"state":                "State",
	"degree_length":        "Degree Length",
	"total_enrollment":     "Total Enrollment",
	"type":                 "Type",
	"name":                 "School",
}

// Salary runs the scatter page: tuition against career pay for every
// institution found in all three tables.
func Salary(ctx context.Context, src dataset.Source, opt SalaryOptions) (*shape.Chart, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	t, err := load(ctx, src, dataset.TuitionCost, dataset.SalaryPotential, dataset.DiversitySchool)
	if err != nil {
		return nil, err
	}
	joined := JoinSalary(t.costs, t.salaries, t.diversity)
	logJoin(ctx, "salary", len(t.costs), len(t.salaries), len(joined))

	labels := make(map[string]string, len(salaryLabels))
	for k, v := range salaryLabels {
		labels[k] = v
	}
	return &shape.Chart{
		Page:   "salary",
		Kind:   shape.KindScatter,
		Title:  "Tuition Cost and Salary Potential",
		Fields: opt.fields(),
		Labels: labels,
		Points: ScatterPoints(joined, opt),
	}, nil
}
