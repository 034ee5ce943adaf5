package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dataset...]",
	Short: "Load datasets, check their schema and print a column profile",
	Long: `Inspect loads each named dataset (all five when none are given), checks it
against the columns the pages need and prints a per-column profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := dataset.All
		if len(args) > 0 {
			ids = make([]dataset.ID, 0, len(args))
			for _, a := range args {
				id, err := dataset.ParseID(a)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
		}
		ctx, _ := commandContext(cmd)
		tables, err := dataset.LoadAll(ctx, source(cfg), ids...)
		if err != nil {
			return err
		}
		out, status := cmd.OutOrStdout(), cmd.ErrOrStderr()
		for _, id := range ids {
			t := tables[id]
			if err := dataset.Validate(t); err != nil {
				return err
			}
			fmt.Fprintln(out, dataset.Summarize(t).Markdown())
			color.New(color.FgGreen).Fprintf(status, "✓ %s\n", t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
