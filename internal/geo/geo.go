// Package geo maps U.S. states and territories to census divisions and regions
// and holds the small data-cleaning tables shared by every page.
package geo

import "strings"

// Unknown labels a group whose key could not be resolved.
const Unknown = "Unknown"

// Territories is both the division and the region for non-state territories.
const Territories = "Territories"

// Location is the census placement of a state. Empty fields mean no match.
type Location struct {
	Division string
	Region   string
}

// Known reports whether the state matched the lookup table.
func (l Location) Known() bool { return l.Division != "" && l.Region != "" }

// stateCodeNames backfills a null state from its two-letter code.
var stateCodeNames = map[string]string{
	"AS": "American Samoa",
	"DC": "District of Columbia",
	"PR": "Puerto Rico",
	"GU": "Guam",
	"VI": "Virgin Islands",
}

var regionDivisions = map[string][]string{
	"Northeast": {"New England", "Middle Atlantic"},
	"Midwest":   {"East North Central", "West North Central"},
	"South":     {"South Atlantic", "East South Central", "West South Central"},
	"West":      {"Mountain", "Pacific"},
	Territories: {Territories},
}

var divisionStates = map[string][]string{
	"New England":        {"Connecticut", "Maine", "Massachusetts", "New Hampshire", "Rhode Island", "Vermont"},
	"Middle Atlantic":    {"New Jersey", "New York", "Pennsylvania"},
	"East North Central": {"Illinois", "Indiana", "Michigan", "Ohio", "Wisconsin"},
	"West North Central": {"Iowa", "Kansas", "Minnesota", "Missouri", "Nebraska", "North Dakota", "South Dakota"},
	"South Atlantic":     {"Delaware", "District of Columbia", "Florida", "Georgia", "Maryland", "North Carolina", "South Carolina", "Virginia", "West Virginia"},
	"East South Central": {"Alabama", "Kentucky", "Mississippi", "Tennessee"},
	"West South Central": {"Arkansas", "Louisiana", "Oklahoma", "Texas"},
	"Mountain":           {"Arizona", "Colorado", "Idaho", "Montana", "Nevada", "New Mexico", "Utah", "Wyoming"},
	"Pacific":            {"Alaska", "California", "Hawaii", "Oregon", "Washington"},
	Territories:          {"American Samoa", "Puerto Rico", "Guam", "Virgin Islands"},
}

// Inverted on init; the maps above are never mutated afterwards.
var (
	stateToDivision  = map[string]string{}
	divisionToRegion = map[string]string{}
)

func init() {
	for region, divs := range regionDivisions {
		for _, d := range divs {
			divisionToRegion[d] = region
		}
	}
	for div, states := range divisionStates {
		for _, s := range states {
			stateToDivision[s] = div
		}
	}
}

// CleanStateName returns state unchanged when present, otherwise the name for
// code from the territory/district exception table, or "" when code is not in it.
func CleanStateName(state, code string) string {
	if strings.TrimSpace(state) != "" {
		return state
	}
	return stateCodeNames[strings.ToUpper(strings.TrimSpace(code))]
}

// Locate resolves the division and region of a state name. A miss yields an
// empty Location.
func Locate(state string) Location {
	div, ok := stateToDivision[strings.TrimSpace(state)]
	if !ok {
		return Location{}
	}
	return Location{Division: div, Region: divisionToRegion[div]}
}

// DivisionOf returns the census division of a state, or "".
func DivisionOf(state string) string { return Locate(state).Division }

// RegionOf returns the region a division belongs to, or "".
func RegionOf(division string) string { return divisionToRegion[division] }

// Divisions lists every division in the canonical table.
func Divisions() []string {
	out := make([]string, 0, len(divisionToRegion))
	for _, region := range Regions() {
		out = append(out, regionDivisions[region]...)
	}
	return out
}

// Regions lists the regions in census order, Territories last.
func Regions() []string {
	return []string{"Northeast", "Midwest", "South", "West", Territories}
}

// OrUnknown substitutes Unknown for an empty group key.
func OrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}
