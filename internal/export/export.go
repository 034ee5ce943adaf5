// Package export writes shaped charts to files. A writer is chosen by the
// output file's extension.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

// Writer is one output sink.
type Writer interface {
	CanWrite(path string) bool
	Write(path string, c *shape.Chart) error
}

var registry []Writer

// Register adds a writer implementation to the registry.
func Register(w Writer) {
	registry = append(registry, w)
}

// ErrUnsupported indicates no writer handles the file extension.
var ErrUnsupported = errors.New("unsupported export format")

// WriteFile selects a writer based on the file extension and writes the chart.
func WriteFile(path string, c *shape.Chart) error {
	for _, w := range registry {
		if w.CanWrite(path) {
			if err := w.Write(path, c); err != nil {
				return fmt.Errorf("export %s: %w", path, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
}

// Extensions lists the extensions the registered writers accept.
func Extensions() []string {
	var out []string
	for _, w := range registry {
		if e, ok := w.(interface{ exts() []string }); ok {
			out = append(out, e.exts()...)
		}
	}
	return out
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func init() {
	Register(csvWriter{})
	Register(jsonWriter{})
	Register(yamlWriter{})
	Register(xlsxWriter{})
	Register(sqliteWriter{})
}
