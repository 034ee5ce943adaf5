package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/export"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/render"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

// outputFlags are shared by every page command.
type outputFlags struct {
	format string
	output string
	png    string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "table", "stdout format: table, json, yaml, csv or none")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "also write the page to a file (.csv, .json, .yaml, .xlsx, .db)")
	cmd.Flags().StringVar(&o.png, "png", "", "also plot the chart to a PNG file")
}

// resolve places relative paths under the configured output directory.
func resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || cfg == nil || cfg.OutputDir == "" {
		return path
	}
	return filepath.Join(cfg.OutputDir, path)
}

// emit prints the chart and writes any requested files.
func emit(cmd *cobra.Command, c *shape.Chart, o *outputFlags) error {
	out := cmd.OutOrStdout()
	switch o.format {
	case "none":
	case "table", "":
		color.New(color.FgYellow).Fprintln(out, c.Title)
		render.Table(out, c)
	default:
		f, err := export.ParseFormat(o.format)
		if err != nil {
			return fmt.Errorf("--format: %w", err)
		}
		if err := export.Encode(out, f, c); err != nil {
			return err
		}
	}

	status := cmd.ErrOrStderr()
	if c.Len() == 0 {
		color.New(color.FgYellow).Fprintf(status, "⚠ %s: no data for the selected options\n", c.Page)
	}
	if o.output != "" {
		path := resolve(o.output)
		if err := export.WriteFile(path, c); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(status, "✓ Wrote %s\n", path)
	}
	if o.png != "" {
		path := resolve(o.png)
		if err := render.PNG(path, c); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(status, "✓ Plotted %s\n", path)
	}
	return nil
}
