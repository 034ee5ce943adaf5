package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/pages"
)

// choices lists enum values for flag help text.
func choices[T ~string](vals []T) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = fmt.Sprintf("%q", string(v))
	}
	return strings.Join(s, ", ")
}

func strs[T ~string](vals []T) []string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = string(v)
	}
	return s
}

var (
	divType    string
	divGroupBy string
	divOut     outputFlags
)

var diversityCmd = &cobra.Command{
	Use:   "diversity",
	Short: "Mean enrollment share per category, grouped by region, division, type or length",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := pages.DefaultDiversityOptions()
		var err error
		if opt.Type, err = pages.ParseDiversityType(divType); err != nil {
			return err
		}
		if opt.GroupBy, err = pages.ParseXGroup(divGroupBy); err != nil {
			return err
		}
		ctx, _ := commandContext(cmd)
		chart, err := pages.Diversity(ctx, source(cfg), opt)
		if err != nil {
			return err
		}
		return emit(cmd, chart, &divOut)
	},
}

var (
	salColor   string
	salTuition string
	salSalary  string
	salOut     outputFlags
)

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Tuition against salary potential, sized by enrollment",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := pages.DefaultSalaryOptions()
		var err error
		if opt.Color, err = pages.ParseColorBy(salColor); err != nil {
			return err
		}
		if opt.Tuition, err = pages.ParseTuitionType(salTuition); err != nil {
			return err
		}
		if opt.Salary, err = pages.ParseSalaryType(salSalary); err != nil {
			return err
		}
		ctx, _ := commandContext(cmd)
		chart, err := pages.Salary(ctx, source(cfg), opt)
		if err != nil {
			return err
		}
		return emit(cmd, chart, &salOut)
	},
}

var (
	incYear    int
	incGroupBy string
	incBinning string
	incChart   string
	incOut     outputFlags
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Median net cost as a percent of total price, per income level",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := pages.DefaultIncomeOptions()
		opt.Year = incYear
		var err error
		if opt.GroupBy, err = pages.ParseIncomeGroup(incGroupBy); err != nil {
			return err
		}
		if opt.Binning, err = pages.ParseBinning(incBinning); err != nil {
			return err
		}
		if opt.Chart, err = pages.ParseChartKind(incChart); err != nil {
			return err
		}
		ctx, _ := commandContext(cmd)
		chart, err := pages.Income(ctx, source(cfg), opt)
		if err != nil {
			return err
		}
		return emit(cmd, chart, &incOut)
	},
}

var incomeYearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Print the year range the income page can show",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _ := commandContext(cmd)
		lo, hi, err := pages.IncomeYears(ctx, source(cfg))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d-%d\n", lo, hi)
		return nil
	},
}

var (
	mapTypes   []string
	mapLengths []string
	mapStat    string
	mapOut     outputFlags
)

var stateMapCmd = &cobra.Command{
	Use:   "statemap",
	Short: "Per-state mean of a cost, pay or diversity statistic",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := pages.DefaultStateMapOptions()
		var err error
		if opt.Types, err = pages.ParseSchoolTypes(mapTypes); err != nil {
			return err
		}
		if opt.Lengths, err = pages.ParseDegreeLengths(mapLengths); err != nil {
			return err
		}
		if opt.Stat, err = pages.ParseMapStat(mapStat); err != nil {
			return err
		}
		ctx, _ := commandContext(cmd)
		chart, err := pages.StateMap(ctx, source(cfg), opt)
		if err != nil {
			return err
		}
		return emit(cmd, chart, &mapOut)
	},
}

func init() {
	d := pages.DefaultDiversityOptions()
	diversityCmd.Flags().StringVar(&divType, "type", string(d.Type), "diversity type: "+choices(pages.DiversityTypes))
	diversityCmd.Flags().StringVar(&divGroupBy, "group-by", string(d.GroupBy), "x axis grouping: "+choices(pages.XGroups))
	divOut.register(diversityCmd)

	s := pages.DefaultSalaryOptions()
	salaryCmd.Flags().StringVar(&salColor, "color", string(s.Color), "color points by: "+choices(pages.ColorBys))
	salaryCmd.Flags().StringVar(&salTuition, "tuition", string(s.Tuition), "tuition on the x axis: "+choices(pages.TuitionTypes))
	salaryCmd.Flags().StringVar(&salSalary, "salary", string(s.Salary), "salary on the y axis: "+choices(pages.SalaryTypes))
	salOut.register(salaryCmd)

	i := pages.DefaultIncomeOptions()
	incomeCmd.Flags().IntVar(&incYear, "year", 0, "year to show (default: earliest year in the data)")
	incomeCmd.Flags().StringVar(&incGroupBy, "group-by", string(i.GroupBy), "facet by: "+choices(pages.IncomeGroups))
	incomeCmd.Flags().StringVar(&incBinning, "binning", string(i.Binning), "total cost binning: "+choices(pages.Binnings))
	incomeCmd.Flags().StringVar(&incChart, "chart", string(i.Chart), "chart kind: "+choices(pages.ChartKinds))
	incOut.register(incomeCmd)
	incomeCmd.AddCommand(incomeYearsCmd)

	m := pages.DefaultStateMapOptions()
	stateMapCmd.Flags().StringSliceVar(&mapTypes, "type", strs(m.Types), "school types to include")
	stateMapCmd.Flags().StringSliceVar(&mapLengths, "length", strs(m.Lengths), "degree lengths to include")
	stateMapCmd.Flags().StringVar(&mapStat, "stat", string(m.Stat), "statistic: "+choices(pages.MapStats))
	mapOut.register(stateMapCmd)

	rootCmd.AddCommand(diversityCmd, salaryCmd, incomeCmd, stateMapCmd)
}
