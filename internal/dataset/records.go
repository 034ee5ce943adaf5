package dataset

import "fmt"

// Num is a nullable number.
type Num struct {
	V     float64
	Valid bool
}

// Some wraps a present value.
func Some(v float64) Num { return Num{V: v, Valid: true} }

// Null is the missing number.
var Null = Num{}

func num(v Value) Num {
	if f, ok := v.Float(); ok {
		return Some(f)
	}
	return Null
}

// Institution carries the identifying columns shared by the cost table.
// An empty string means the source cell was null.
type Institution struct {
	Name         string
	State        string
	StateCode    string
	Type         string
	DegreeLength string
}

// Cost is one row of tuition_cost.
type Cost struct {
	Institution
	InStateTuition    Num
	OutOfStateTuition Num
	RoomAndBoard      Num
}

// Salary is one row of salary_potential.
type Salary struct {
	Name           string
	Rank           int
	EarlyCareerPay Num
	MidCareerPay   Num
}

// Diversity is one row of diversity_school: one institution, one category.
type Diversity struct {
	Name            string
	State           string
	Category        string
	TotalEnrollment Num
	Enrollment      Num
}

// Income is one row of tuition_income.
type Income struct {
	Name        string
	State       string
	Campus      string
	IncomeLevel string
	Year        int
	TotalPrice  Num
	NetCost     Num
}

// Historical is one row of historical_tuition.
type Historical struct {
	Type        string
	Year        string
	TuitionType string
	TuitionCost Num
}

// DecodeCosts converts a tuition_cost table.
func DecodeCosts(t *Table) ([]Cost, error) {
	if err := t.Require("name", "state", "state_code", "type", "degree_length",
		"in_state_tuition", "out_of_state_tuition", "room_and_board"); err != nil {
		return nil, err
	}
	out := make([]Cost, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, Cost{
			Institution: Institution{
				Name:         t.Cell(i, "name").String(),
				State:        t.Cell(i, "state").String(),
				StateCode:    t.Cell(i, "state_code").String(),
				Type:         t.Cell(i, "type").String(),
				DegreeLength: t.Cell(i, "degree_length").String(),
			},
			InStateTuition:    num(t.Cell(i, "in_state_tuition")),
			OutOfStateTuition: num(t.Cell(i, "out_of_state_tuition")),
			RoomAndBoard:      num(t.Cell(i, "room_and_board")),
		})
	}
	return out, nil
}

// DecodeSalaries converts a salary_potential table.
func DecodeSalaries(t *Table) ([]Salary, error) {
	if err := t.Require("rank", "name", "early_career_pay", "mid_career_pay"); err != nil {
		return nil, err
	}
	out := make([]Salary, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rank, _ := t.Cell(i, "rank").Int()
		out = append(out, Salary{
			Name:           t.Cell(i, "name").String(),
			Rank:           rank,
			EarlyCareerPay: num(t.Cell(i, "early_career_pay")),
			MidCareerPay:   num(t.Cell(i, "mid_career_pay")),
		})
	}
	return out, nil
}

// DecodeDiversity converts a diversity_school table.
func DecodeDiversity(t *Table) ([]Diversity, error) {
	if err := t.Require("name", "total_enrollment", "state", "category", "enrollment"); err != nil {
		return nil, err
	}
	out := make([]Diversity, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, Diversity{
			Name:            t.Cell(i, "name").String(),
			State:           t.Cell(i, "state").String(),
			Category:        t.Cell(i, "category").String(),
			TotalEnrollment: num(t.Cell(i, "total_enrollment")),
			Enrollment:      num(t.Cell(i, "enrollment")),
		})
	}
	return out, nil
}

// DecodeIncome converts a tuition_income table. Rows with a missing year keep
// Year 0 and so never match a year filter.
func DecodeIncome(t *Table) ([]Income, error) {
	if err := t.Require("name", "total_price", "year", "campus", "net_cost", "income_lvl"); err != nil {
		return nil, err
	}
	out := make([]Income, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		year, _ := t.Cell(i, "year").Int()
		out = append(out, Income{
			Name:        t.Cell(i, "name").String(),
			State:       t.Cell(i, "state").String(),
			Campus:      t.Cell(i, "campus").String(),
			IncomeLevel: t.Cell(i, "income_lvl").String(),
			Year:        year,
			TotalPrice:  num(t.Cell(i, "total_price")),
			NetCost:     num(t.Cell(i, "net_cost")),
		})
	}
	return out, nil
}

// DecodeHistorical converts a historical_tuition table.
func DecodeHistorical(t *Table) ([]Historical, error) {
	if err := t.Require("type", "year", "tuition_type", "tuition_cost"); err != nil {
		return nil, err
	}
	out := make([]Historical, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, Historical{
			Type:        t.Cell(i, "type").String(),
			Year:        t.Cell(i, "year").String(),
			TuitionType: t.Cell(i, "tuition_type").String(),
			TuitionCost: num(t.Cell(i, "tuition_cost")),
		})
	}
	return out, nil
}

// Validate decodes a table with the decoder for its dataset, reporting the
// first schema problem.
func Validate(t *Table) error {
	var err error
	switch t.Name {
	case TuitionCost:
		_, err = DecodeCosts(t)
	case TuitionIncome:
		_, err = DecodeIncome(t)
	case SalaryPotential:
		_, err = DecodeSalaries(t)
	case HistoricalTuition:
		_, err = DecodeHistorical(t)
	case DiversitySchool:
		_, err = DecodeDiversity(t)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDataset, t.Name)
	}
	return err
}
