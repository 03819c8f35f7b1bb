package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/firecalc/firecalc/internal/calculation"
	"github.com/firecalc/firecalc/internal/config"
	"github.com/firecalc/firecalc/internal/domain"
	"github.com/firecalc/firecalc/internal/logger"
	"github.com/firecalc/firecalc/internal/output"
	"github.com/firecalc/firecalc/internal/tui/components"
	"github.com/firecalc/firecalc/internal/tui/tuistyles"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "firecalc",
	Short: "Financial independence projection calculators",
	Long: "firecalc projects portfolio drawdowns, solves savings-goal dates,\n" +
		"and stress-tests withdrawal plans against randomized returns.",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the steady-withdrawal simulator",
	Run: func(cmd *cobra.Command, args []string) {
		ps := paramSource(cmd)
		result := calculation.RunDrawdown(ps.DrawdownParameters())
		emit(cmd, &domain.Comparison{Results: []domain.ScenarioResult{{
			Name:       "simulate",
			Kind:       domain.KindDrawdown,
			Projection: result,
		}}})
	},
}

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Solve for the savings-goal date",
	Run: func(cmd *cobra.Command, args []string) {
		ps := paramSource(cmd)
		goal := calculation.SolveGoal(ps.GoalInputs(), time.Now())
		emit(cmd, &domain.Comparison{Results: []domain.ScenarioResult{{
			Name: "goal",
			Kind: domain.KindGoal,
			Goal: &goal,
		}}})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one stochastic withdrawal projection",
	Long: "Projects an inflation-escalating withdrawal under fixed, stressed,\n" +
		"or randomized returns. Use --seed for a reproducible random path.",
	Run: func(cmd *cobra.Command, args []string) {
		ps := paramSource(cmd)
		result := calculation.RunStochastic(ps.StochasticParameters())
		emit(cmd, &domain.Comparison{Results: []domain.ScenarioResult{{
			Name:       "analyze",
			Kind:       domain.KindStochastic,
			Projection: result,
		}}})
	},
}

var montecarloCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Aggregate many randomized withdrawal projections",
	Run: func(cmd *cobra.Command, args []string) {
		ps := paramSource(cmd)
		runs, _ := cmd.Flags().GetInt("runs")
		params := ps.StochasticParameters()

		result := calculation.RunMonteCarlo(calculation.MonteCarloConfig{
			NumRuns: runs,
			Seed:    params.Seed,
			Params:  params,
		})
		emit(cmd, &domain.Comparison{Results: []domain.ScenarioResult{{
			Name:       "montecarlo",
			Kind:       domain.KindStochastic,
			MonteCarlo: result,
		}}})
	},
}

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep withdrawal amounts and report depletion at each step",
	Run: func(cmd *cobra.Command, args []string) {
		ps := paramSource(cmd)
		min, _ := cmd.Flags().GetFloat64("min")
		max, _ := cmd.Flags().GetFloat64("max")
		step, _ := cmd.Flags().GetFloat64("step")

		points := calculation.SweepWithdrawals(
			ps.DrawdownParameters(),
			decimal.NewFromFloat(min),
			decimal.NewFromFloat(max),
			decimal.NewFromFloat(step),
		)
		fmt.Fprint(os.Stdout, string(output.RenderSweepTable(points)))

		if chart, _ := cmd.Flags().GetBool("chart"); chart {
			series := output.SeriesFromSweep("final balance", points)
			c := components.NewASCIIChart("Final balance by withdrawal").
				AddSeries(series.Name, series.Values, tuistyles.ColorChartLine1).
				WithSize(72, 16)
			fmt.Fprintln(os.Stdout, c.Render())
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Run every scenario in a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			z, err := logger.New(true)
			if err != nil {
				log.Fatal(err)
			}
			defer z.Sync()
			engine.SetLogger(logger.NewCalcLogger(z))
		}

		results, err := engine.RunScenarios(cfg, time.Now())
		if err != nil {
			log.Fatal(err)
		}
		results.ConfigPath = args[0]
		emit(cmd, results)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file without running it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %d scenario(s) valid\n", args[0], len(cfg.Scenarios))
	},
}

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Save or inspect stored calculator parameters",
}

var paramsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the given flags as the default parameter set",
	Run: func(cmd *cobra.Command, args []string) {
		ps := paramSource(cmd)
		store := paramStore(cmd)
		if err := store.Save(ps.Snapshot()); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("parameters saved to %s\n", store.Path)
	},
}

var paramsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored parameter set",
	Run: func(cmd *cobra.Command, args []string) {
		store := paramStore(cmd)
		snap, err := store.Load()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("saved %s\n", snap.SavedAt.Format(time.RFC3339))

		keys := make([]string, 0, len(snap.Fields))
		for k := range snap.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-20s %s\n", k, snap.Fields[k])
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "firecalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

// paramSource binds a command's flags over the field defaults.
func paramSource(cmd *cobra.Command) *config.ParamSource {
	ps := config.NewParamSource()
	if err := ps.BindFlags(cmd.Flags()); err != nil {
		log.Fatal(err)
	}
	return ps
}

func paramStore(cmd *cobra.Command) *config.FileParamStore {
	path, _ := cmd.Flags().GetString("store")
	if path == "" {
		path = config.DefaultStorePath()
	}
	return config.NewFileParamStore(path)
}

// emit formats a comparison with the --format formatter and writes it to
// stdout, or to a file when --output is set.
func emit(cmd *cobra.Command, results *domain.Comparison) {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		log.Fatalf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		written, err := output.WriteFormatted(f, results, path)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("report written to %s\n", written)
		return
	}

	data, err := f.Format(results)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprint(os.Stdout, string(data))
}

func addDrawdownFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(config.FieldPresentValue, 1000000, "starting portfolio value")
	cmd.Flags().Float64(config.FieldCapitalRate, 5.0, "annual capital growth rate (percent)")
	cmd.Flags().Float64(config.FieldDividendRate, 2.0, "annual dividend yield (percent)")
	cmd.Flags().Float64(config.FieldWithdrawalAmount, 40000, "fixed annual withdrawal")
	cmd.Flags().Int(config.FieldHorizon, 50, "projection length in years")
}

func addStochasticFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(config.FieldPresentValue, 1000000, "starting portfolio value")
	cmd.Flags().Float64(config.FieldWithdrawalAmount, 40000, "first-year withdrawal amount")
	cmd.Flags().Float64(config.FieldWithdrawalRate, 4.0, "first-year withdrawal as percent of portfolio")
	cmd.Flags().Float64(config.FieldInflationRate, 3.0, "annual withdrawal escalation (percent)")
	cmd.Flags().Float64(config.FieldMeanReturn, 7.0, "mean annual return (percent)")
	cmd.Flags().Float64(config.FieldStdDev, 15.0, "annual return standard deviation (percent)")
	cmd.Flags().String(config.FieldScenario, string(domain.ScenarioFixed), "return scenario: fixed, stressed, stochastic")
	cmd.Flags().Int(config.FieldHorizon, 50, "projection length in years")
	cmd.Flags().Int64(config.FieldSeed, 0, "random seed (0 derives from the clock)")
}

func addGoalFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(config.FieldPresentValue, 200000, "current savings")
	cmd.Flags().Float64(config.FieldMonthlyIncome, 8000, "monthly income")
	cmd.Flags().Float64(config.FieldMonthlyExpenses, 5000, "monthly expenses")
	cmd.Flags().Float64(config.FieldGrowthRate, 7.0, "annual growth rate (percent)")
	cmd.Flags().Float64(config.FieldAnnualSpending, 60000, "annual spending in retirement")
	cmd.Flags().Float64(config.FieldTargetMultiple, 25.0, "target as a multiple of annual spending")
	cmd.Flags().Float64(config.FieldWithdrawalRate, 4.0, "withdrawal rate used to derive the multiple (percent)")
}

// addParamsSaveFlags registers the union of every calculator's fields so
// one saved set can drive all three.
func addParamsSaveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(config.FieldPresentValue, 1000000, "starting portfolio value")
	cmd.Flags().Float64(config.FieldCapitalRate, 5.0, "annual capital growth rate (percent)")
	cmd.Flags().Float64(config.FieldDividendRate, 2.0, "annual dividend yield (percent)")
	cmd.Flags().Float64(config.FieldWithdrawalAmount, 40000, "fixed annual withdrawal")
	cmd.Flags().Float64(config.FieldWithdrawalRate, 4.0, "withdrawal rate (percent)")
	cmd.Flags().Float64(config.FieldInflationRate, 3.0, "annual withdrawal escalation (percent)")
	cmd.Flags().Float64(config.FieldMeanReturn, 7.0, "mean annual return (percent)")
	cmd.Flags().Float64(config.FieldStdDev, 15.0, "annual return standard deviation (percent)")
	cmd.Flags().String(config.FieldScenario, string(domain.ScenarioFixed), "return scenario")
	cmd.Flags().Int(config.FieldHorizon, 50, "projection length in years")
	cmd.Flags().Int64(config.FieldSeed, 0, "random seed")
	cmd.Flags().Float64(config.FieldMonthlyIncome, 8000, "monthly income")
	cmd.Flags().Float64(config.FieldMonthlyExpenses, 5000, "monthly expenses")
	cmd.Flags().Float64(config.FieldGrowthRate, 7.0, "annual growth rate (percent)")
	cmd.Flags().Float64(config.FieldAnnualSpending, 60000, "annual spending in retirement")
	cmd.Flags().Float64(config.FieldTargetMultiple, 25.0, "target as a multiple of annual spending")
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("format", "console", "Output format: console, csv, json")
	rootCmd.PersistentFlags().String("output", "", "Write the report to this file instead of stdout")

	addDrawdownFlags(simulateCmd)
	addGoalFlags(goalCmd)
	addStochasticFlags(analyzeCmd)

	addStochasticFlags(montecarloCmd)
	montecarloCmd.Flags().Int("runs", calculation.DefaultMonteCarloRuns, "number of Monte Carlo runs")

	addDrawdownFlags(sensitivityCmd)
	sensitivityCmd.Flags().Float64("min", 20000, "lowest annual withdrawal to test")
	sensitivityCmd.Flags().Float64("max", 100000, "highest annual withdrawal to test")
	sensitivityCmd.Flags().Float64("step", 10000, "sweep step size")
	sensitivityCmd.Flags().Bool("chart", false, "render an ASCII chart of final balances")

	paramsCmd.PersistentFlags().String("store", "", "parameter store path (default ~/.firecalc-params.yaml)")
	addParamsSaveFlags(paramsSaveCmd)
	paramsCmd.AddCommand(paramsSaveCmd, paramsShowCmd)

	rootCmd.AddCommand(simulateCmd, goalCmd, analyzeCmd, montecarloCmd,
		sensitivityCmd, compareCmd, validateCmd, paramsCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
