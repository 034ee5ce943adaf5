package pages

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOption is returned for any option value outside its fixed set.
var ErrInvalidOption = errors.New("invalid option")

// DiversityType selects the diversity page view.
type DiversityType string

const (
	Gender DiversityType = "Gender"
	Race   DiversityType = "Race"
)

// DiversityTypes lists the accepted diversity views.
var DiversityTypes = []DiversityType{Gender, Race}

// XGroup is the x-axis grouping of the diversity page.
type XGroup string

const (
	ByRegion       XGroup = "Region"
	ByDivision     XGroup = "Division"
	BySchoolType   XGroup = "School Type"
	ByDegreeLength XGroup = "Degree Length"
)

// XGroups lists the accepted diversity groupings.
var XGroups = []XGroup{ByRegion, ByDivision, BySchoolType, ByDegreeLength}

// TuitionType picks the tuition column on the salary page x axis.
type TuitionType string

const (
	InState    TuitionType = "In-State"
	OutOfState TuitionType = "Out-of-State"
)

// TuitionTypes lists the accepted tuition columns.
var TuitionTypes = []TuitionType{InState, OutOfState}

// SalaryType picks the pay column on the salary page y axis.
type SalaryType string

const (
	MidCareer   SalaryType = "Mid-Career"
	EarlyCareer SalaryType = "Early Career"
)

// SalaryTypes lists the accepted pay columns.
var SalaryTypes = []SalaryType{MidCareer, EarlyCareer}

// ColorBy is the attribute that colors salary page markers.
type ColorBy string

const (
	ColorState        ColorBy = "State"
	ColorDegreeLength ColorBy = "Degree Length"
	ColorRegion       ColorBy = "Region"
	ColorDivision     ColorBy = "Regional Division"
)

// ColorBys lists the accepted marker colorings.
var ColorBys = []ColorBy{ColorState, ColorDegreeLength, ColorRegion, ColorDivision}

// SchoolType is an institution type filter on the state map.
type SchoolType string

const (
	Public    SchoolType = "Public"
	Private   SchoolType = "Private"
	ForProfit SchoolType = "For Profit"
)

// SchoolTypes lists every institution type.
var SchoolTypes = []SchoolType{Public, Private, ForProfit}

// DegreeLength is a degree length filter on the state map.
type DegreeLength string

const (
	FourYear DegreeLength = "4 Year"
	TwoYear  DegreeLength = "2 Year"
)

// DegreeLengths lists every degree length.
var DegreeLengths = []DegreeLength{FourYear, TwoYear}

// IncomeGroup is the facet of the income page.
type IncomeGroup string

const (
	GroupNone      IncomeGroup = "None"
	GroupRegion    IncomeGroup = "Region"
	GroupType      IncomeGroup = "Type"
	GroupTotalCost IncomeGroup = "Total Cost"
)

// IncomeGroups lists the accepted income facets.
var IncomeGroups = []IncomeGroup{GroupNone, GroupRegion, GroupType, GroupTotalCost}

// Binning is the total price binning strategy for the Total Cost facet.
type Binning string

const (
	EqualWidthBins Binning = "equal-width"
	QuantileBins   Binning = "quantile"
)

// Binnings lists the accepted binning strategies.
var Binnings = []Binning{EqualWidthBins, QuantileBins}

// ChartKind is the income page chart type.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// ChartKinds lists the accepted income chart types.
var ChartKinds = []ChartKind{ChartBar, ChartLine}

// MapStat is the measure shown on the state map.
type MapStat string

const (
	StatOutOfStateTuition MapStat = "Out-of-State Tuition"
	StatInStateTuition    MapStat = "In-State Tuition"
	StatRoomAndBoard      MapStat = "Room & Board"
	StatEarlyCareerPay    MapStat = "Early Career Pay"
	StatMidCareerPay      MapStat = "Mid Career Pay"
	StatRace              MapStat = "Race"
	StatGender            MapStat = "Gender"
)

// MapStats lists the accepted state map measures.
var MapStats = []MapStat{
	StatOutOfStateTuition, StatInStateTuition, StatRoomAndBoard,
	StatEarlyCareerPay, StatMidCareerPay, StatRace, StatGender,
}

// The Parse functions accept a value case-insensitively and return its
// canonical spelling, or an ErrInvalidOption naming the allowed values.

// ParseDiversityType parses a diversity view.
func ParseDiversityType(s string) (DiversityType, error) {
	return parseEnum("diversity type", s, DiversityTypes)
}

// ParseXGroup parses a diversity grouping.
func ParseXGroup(s string) (XGroup, error) { return parseEnum("group by", s, XGroups) }

// ParseTuitionType parses a tuition column choice.
func ParseTuitionType(s string) (TuitionType, error) { return parseEnum("tuition type", s, TuitionTypes) }

// ParseSalaryType parses a pay column choice.
func ParseSalaryType(s string) (SalaryType, error) { return parseEnum("salary type", s, SalaryTypes) }

// ParseColorBy parses a marker coloring.
func ParseColorBy(s string) (ColorBy, error) { return parseEnum("color by", s, ColorBys) }

// ParseSchoolType parses one institution type.
func ParseSchoolType(s string) (SchoolType, error) { return parseEnum("school type", s, SchoolTypes) }

// ParseDegreeLength parses one degree length.
func ParseDegreeLength(s string) (DegreeLength, error) {
	return parseEnum("degree length", s, DegreeLengths)
}

// ParseIncomeGroup parses an income facet.
func ParseIncomeGroup(s string) (IncomeGroup, error) { return parseEnum("group by", s, IncomeGroups) }

// ParseBinning parses a binning strategy.
func ParseBinning(s string) (Binning, error) { return parseEnum("binning", s, Binnings) }

// ParseChartKind parses an income chart type.
func ParseChartKind(s string) (ChartKind, error) { return parseEnum("chart", s, ChartKinds) }

// ParseMapStat parses a state map measure.
func ParseMapStat(s string) (MapStat, error) { return parseEnum("statistic", s, MapStats) }

// ParseSchoolTypes parses a multi-select. An empty list selects nothing.
func ParseSchoolTypes(in []string) ([]SchoolType, error) { return parseAll(in, ParseSchoolType) }

// ParseDegreeLengths parses a multi-select. An empty list selects nothing.
func ParseDegreeLengths(in []string) ([]DegreeLength, error) { return parseAll(in, ParseDegreeLength) }

// parseEnum matches s against the allowed values, ignoring case and
// surrounding space, and returns the canonical spelling.
func parseEnum[T ~string](field, s string, allowed []T) (T, error) {
	s = strings.TrimSpace(s)
	for _, a := range allowed {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	var zero T
	return zero, invalid(field, s, allowed)
}

func invalid[T ~string](field, s string, allowed []T) error {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = fmt.Sprintf("%q", string(a))
	}
	return fmt.Errorf("%w: %s %q (want one of %s)", ErrInvalidOption, field, s, strings.Join(names, ", "))
}

func parseAll[T any](in []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(in))
	for _, s := range in {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// validate accepts only the canonical spelling of v.
func validate[T ~string](field string, v T, allowed []T) error {
	if contains(allowed, v) {
		return nil
	}
	return invalid(field, string(v), allowed)
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
