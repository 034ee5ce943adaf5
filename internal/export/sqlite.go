package export

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/utils"
)

type sqliteWriter struct{}

func (sqliteWriter) CanWrite(path string) bool { return hasExt(path, ".db", ".sqlite") }
func (sqliteWriter) exts() []string            { return []string{".db", ".sqlite"} }

// Write stores the frame in a table named after the page. An existing table
// of that name is replaced; other pages' tables are left alone.
func (sqliteWriter) Write(path string, c *shape.Chart) error {
	if err := utils.EnsureDir(dirOf(path)); err != nil {
		return err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()
	return WriteTable(db, c)
}

// WriteTable replaces the chart's table inside one transaction.
func WriteTable(db *sql.DB, c *shape.Chart) error {
	fr := c.Frame()
	name := fr.Name
	if name == "" {
		name = "chart"
	}
	table := quoteIdent(name)

	cols := make([]string, len(fr.Columns))
	marks := make([]string, len(fr.Columns))
	for i, col := range fr.Columns {
		cols[i] = quoteIdent(col) + " " + sqlType(fr, i)
		marks[i] = "?"
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + table); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	if _, err := tx.Exec(fmt.Sprintf(`CREATE TABLE %s (%s)`, table, strings.Join(cols, ", "))); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO %s VALUES (%s)`, table, strings.Join(marks, ", ")))
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, rec := range fr.Records {
		if _, err := stmt.Exec(rec...); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
	}
	return tx.Commit()
}

// sqlType is REAL when the column's first value is numeric, TEXT otherwise.
func sqlType(fr shape.Frame, col int) string {
	if len(fr.Records) > 0 {
		if _, ok := fr.Records[0][col].(float64); ok {
			return "REAL"
		}
	}
	return "TEXT"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func dirOf(path string) string {
	return filepath.Dir(path)
}
