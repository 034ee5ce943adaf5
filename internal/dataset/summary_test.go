package dataset

import (
	"strings"
	"testing"
)

func TestSummarizeProfilesColumns(t *testing.T) {
	tbl, err := Parse(TuitionCost, strings.NewReader(costCSV))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s := Summarize(tbl)
	byName := map[string]ColumnSummary{}
	for _, c := range s.Cols {
		byName[c.Name] = c
	}
	rb := byName["room_and_board"]
	if rb.Missing != 2 || rb.NonNull != 1 {
		t.Errorf("room_and_board counts: %+v", rb)
	}
	ist := byName["in_state_tuition"]
	if ist.Min != 2380 || ist.Max != 34850 {
		t.Errorf("in_state_tuition range: %+v", ist)
	}
	typ := byName["type"]
	if len(typ.TopValues) == 0 || typ.TopValues[0].Value != "Public" || typ.TopValues[0].Count != 2 {
		t.Errorf("type top values: %+v", typ.TopValues)
	}
	md := s.Markdown()
	if !strings.Contains(md, "Dataset: tuition_cost") || !strings.Contains(md, "in_state_tuition: numeric") {
		t.Fatalf("markdown missing expected lines: %s", md)
	}
}
