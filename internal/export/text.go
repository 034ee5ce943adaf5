package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/utils"
)

// Format is a text encoding usable on stdout as well as in files.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts json, yaml (or yml) and csv.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// Encode writes the chart in the given text format. JSON and YAML carry the
// whole chart; CSV carries its flattened frame.
func Encode(w io.Writer, f Format, c *shape.Chart) error {
	switch f {
	case FormatJSON:
		b, err := utils.PrettyJSON(c)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		return enc.Close()
	case FormatCSV:
		fr := c.Frame()
		cw := csv.NewWriter(w)
		if err := cw.Write(fr.Columns); err != nil {
			return err
		}
		if err := cw.WriteAll(fr.Strings()); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupported, string(f))
}

func writeEncoded(path string, f Format, c *shape.Chart) error {
	var buf bytes.Buffer
	if err := Encode(&buf, f, c); err != nil {
		return err
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

type csvWriter struct{}

func (csvWriter) CanWrite(path string) bool { return hasExt(path, ".csv") }
func (csvWriter) Write(path string, c *shape.Chart) error {
	return writeEncoded(path, FormatCSV, c)
}
func (csvWriter) exts() []string { return []string{".csv"} }

type jsonWriter struct{}

func (jsonWriter) CanWrite(path string) bool { return hasExt(path, ".json") }
func (jsonWriter) Write(path string, c *shape.Chart) error {
	return writeEncoded(path, FormatJSON, c)
}
func (jsonWriter) exts() []string { return []string{".json"} }

type yamlWriter struct{}

func (yamlWriter) CanWrite(path string) bool { return hasExt(path, ".yaml", ".yml") }
func (yamlWriter) Write(path string, c *shape.Chart) error {
	return writeEncoded(path, FormatYAML, c)
}
func (yamlWriter) exts() []string { return []string{".yaml", ".yml"} }
