package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Kind is the inferred type of a column.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
	KindEmpty   Kind = "empty"
)

// nullTokens are the cell values treated as missing.
var nullTokens = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "NULL": {}, "null": {},
}

// Value is a single cell.
type Value struct {
	raw  string
	null bool
}

func newValue(s string) Value {
	s = strings.TrimSpace(s)
	_, null := nullTokens[s]
	return Value{raw: s, null: null}
}

// IsNull reports whether the cell is missing.
func (v Value) IsNull() bool { return v.null }

// String returns the cell text, or "" when null.
func (v Value) String() string {
	if v.null {
		return ""
	}
	return v.raw
}

// Float parses the cell as a number.
func (v Value) Float() (float64, bool) {
	if v.null {
		return 0, false
	}
	return parseNumeric(v.raw)
}

// Int parses the cell as an integer, accepting integral floats such as "2018.0".
func (v Value) Int() (int, bool) {
	f, ok := v.Float()
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Table is an in-memory snapshot of one dataset.
type Table struct {
	Name    ID
	Columns []string
	Kinds   []Kind
	index   map[string]int
	rows    [][]Value
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Has reports whether the table has the named column.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// KindOf returns the inferred kind of a column.
func (t *Table) KindOf(col string) Kind {
	if i, ok := t.index[col]; ok {
		return t.Kinds[i]
	}
	return KindEmpty
}

// Cell returns the value at row i, column col. Unknown columns read as null.
func (t *Table) Cell(i int, col string) Value {
	j, ok := t.index[col]
	if !ok {
		return Value{null: true}
	}
	return t.rows[i][j]
}

// Row returns row i keyed by column name.
func (t *Table) Row(i int) map[string]Value {
	out := make(map[string]Value, len(t.Columns))
	for j, c := range t.Columns {
		out[c] = t.rows[i][j]
	}
	return out
}

// Require fails with a ParseError naming the first missing column.
func (t *Table) Require(cols ...string) error {
	for _, c := range cols {
		if !t.Has(c) {
			return &ParseError{Dataset: t.Name, Column: c, Err: errors.New("missing column")}
		}
	}
	return nil
}

// Load fetches and parses one dataset. Any failure aborts the load.
func Load(ctx context.Context, src Source, id ID) (*Table, error) {
	start := time.Now()
	rc, err := src.Open(ctx, id)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	t, err := Parse(id, rc)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Str("dataset", string(id)).
		Int("rows", t.Len()).
		Int("cols", len(t.Columns)).
		Dur("took", time.Since(start)).
		Msg("loaded dataset")
	return t, nil
}

// LoadAll loads several datasets concurrently. The first failure cancels the
// remaining fetches and is returned.
func LoadAll(ctx context.Context, src Source, ids ...ID) (map[ID]*Table, error) {
	g, gctx := errgroup.WithContext(ctx)
	tables := make([]*Table, len(ids))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			t, err := Load(gctx, src, id)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make(map[ID]*Table, len(ids))
	for i, id := range ids {
		out[id] = tables[i]
	}
	return out, nil
}

// Parse reads CSV with a header row. Rows whose field count differs from the
// header are rejected.
func Parse(id ID, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Dataset: id, Err: errors.New("empty input")}
		}
		return nil, &ParseError{Dataset: id, Line: 1, Err: err}
	}
	t := &Table{Name: id, index: make(map[string]int, len(header))}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		t.Columns = append(t.Columns, h)
		t.index[h] = i
	}

	numeric := make([]int, len(header))
	text := make([]int, len(header))
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			line := len(t.rows) + 2
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &ParseError{Dataset: id, Line: line, Err: err}
		}
		row := make([]Value, len(rec))
		for j, s := range rec {
			v := newValue(s)
			row[j] = v
			if v.null {
				continue
			}
			if _, ok := parseNumeric(v.raw); ok {
				numeric[j]++
			} else {
				text[j]++
			}
		}
		t.rows = append(t.rows, row)
	}

	t.Kinds = make([]Kind, len(header))
	for j := range header {
		switch {
		case numeric[j] == 0 && text[j] == 0:
			t.Kinds[j] = KindEmpty
		case text[j] == 0:
			t.Kinds[j] = KindNumeric
		default:
			t.Kinds[j] = KindText
		}
	}
	return t, nil
}

// parseNumeric accepts plain numbers plus currency symbols, thousands commas
// and a trailing percent sign.
func parseNumeric(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.TrimSuffix(raw, "%")
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ",", "")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String renders a short description used in log lines and errors.
func (t *Table) String() string {
	return fmt.Sprintf("%s (%d rows, %d cols)", t.Name, t.Len(), len(t.Columns))
}
