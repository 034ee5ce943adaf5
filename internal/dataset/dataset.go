// Package dataset fetches the tidytuesday college tuition datasets and exposes
// them as row-oriented tables and typed records.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ID names one of the fixed source datasets.
type ID string

const (
	TuitionCost       ID = "tuition_cost"
	TuitionIncome     ID = "tuition_income"
	SalaryPotential   ID = "salary_potential"
	HistoricalTuition ID = "historical_tuition"
	DiversitySchool   ID = "diversity_school"
)

// All lists every dataset in a stable order.
var All = []ID{TuitionCost, TuitionIncome, SalaryPotential, HistoricalTuition, DiversitySchool}

// ErrUnknownDataset is returned for identifiers outside All.
var ErrUnknownDataset = errors.New("unknown dataset")

// ParseID validates a dataset identifier.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, id := range All {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDataset, s)
}

// FetchError reports a failure to retrieve a dataset from its source.
type FetchError struct {
	Dataset    ID
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d from %s", e.Dataset, e.StatusCode, e.URL)
	}
	if e.URL != "" {
		return fmt.Sprintf("fetch %s from %s: %v", e.Dataset, e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Dataset, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports malformed source data.
type ParseError struct {
	Dataset ID
	Line    int
	Column  string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("parse %s: column %q: %v", e.Dataset, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse %s: line %d: %v", e.Dataset, e.Line, e.Err)
	default:
		return fmt.Sprintf("parse %s: %v", e.Dataset, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
