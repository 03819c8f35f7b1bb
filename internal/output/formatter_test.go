package output

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firecalc/firecalc/internal/domain"
)

func sampleComparison() *domain.Comparison {
	depletion := 18
	targetDate := time.Date(2034, time.March, 1, 0, 0, 0, 0, time.UTC)

	return &domain.Comparison{
		ConfigPath: "scenarios.yaml",
		Results: []domain.ScenarioResult{
			{
				Name: "baseline",
				Kind: domain.KindDrawdown,
				Projection: &domain.ProjectionResult{
					Balances: []domain.PeriodBalance{
						{Period: 0, Balance: decimal.NewFromInt(1000000)},
						{Period: 1, Balance: decimal.NewFromInt(1030000)},
					},
					TotalWithdrawn: decimal.NewFromInt(40000),
					Sustainable:    true,
				},
			},
			{
				Name: "heavy spender",
				Kind: domain.KindDrawdown,
				Projection: &domain.ProjectionResult{
					Balances: []domain.PeriodBalance{
						{Period: 0, Balance: decimal.NewFromInt(500000)},
						{Period: 1, Balance: decimal.Zero},
					},
					DepletionPeriod: &depletion,
					TotalWithdrawn:  decimal.NewFromInt(500000),
				},
			},
			{
				Name: "fire date",
				Kind: domain.KindGoal,
				Goal: &domain.GoalResult{
					Status:             domain.GoalStatusOK,
					MonthsToGoal:       91.4,
					TargetAmount:       decimal.NewFromInt(1500000),
					TargetDate:         &targetDate,
					SavingsRatePercent: decimal.NewFromFloat(37.5),
				},
			},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"console", "console"},
		{"CONSOLE", "console"},
		{"table", "console"},
		{"text", "console"},
		{"csv", "csv"},
		{"csv-summary", "csv"},
		{"json", "json"},
		{"json-pretty", "json"},
		{" json ", "json"},
	}

	for _, tt := range tests {
		f := GetFormatterByName(tt.input)
		require.NotNil(t, f, "no formatter for %q", tt.input)
		assert.Equal(t, tt.want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleComparison())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "baseline")
	assert.Contains(t, text, "$1030000.00")
	assert.Contains(t, text, "year 18")
	assert.Contains(t, text, "on track")
	assert.Contains(t, text, "March 2034")
	assert.Contains(t, text, "37.5%")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleComparison())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "scenario,kind,"))
	assert.True(t, strings.HasPrefix(lines[1], "baseline,drawdown,1030000.00,"))
	assert.Contains(t, lines[2], ",18,")
	assert.Contains(t, lines[3], "ok")
	assert.Contains(t, lines[3], "91.4")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleComparison())
	require.NoError(t, err)

	var decoded domain.Comparison
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "baseline", decoded.Results[0].Name)
	assert.True(t, decoded.Results[0].Projection.Sustainable)
}

func TestWriteFormatted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	written, err := WriteFormatted(JSONFormatter{}, sampleComparison(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.Comparison
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Results, 3)
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, "txt", fileExt("console"))
	assert.Equal(t, "csv", fileExt("csv"))
	assert.Equal(t, "json", fileExt("json"))
}

func TestJSONFormatterInfiniteGoalMonths(t *testing.T) {
	comparison := &domain.Comparison{
		Results: []domain.ScenarioResult{{
			Name: "spending down",
			Kind: domain.KindGoal,
			Goal: &domain.GoalResult{
				Status:       domain.GoalStatusUnreachable,
				MonthsToGoal: math.Inf(1),
				TargetAmount: decimal.NewFromInt(1500000),
			},
		}},
	}

	data, err := JSONFormatter{}.Format(comparison)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"monthsToGoal": null`)

	var decoded domain.Comparison
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Results, 1)
	goal := decoded.Results[0].Goal
	require.NotNil(t, goal)
	assert.Equal(t, domain.GoalStatusUnreachable, goal.Status)
	assert.False(t, goal.Reachable())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "4.2%", FormatPercentage(decimal.NewFromFloat(0.042)))

	assert.Equal(t, "never", FormatMonths(math.Inf(1)))
	assert.Equal(t, "6mo", FormatMonths(5.2))
	assert.Equal(t, "10y", FormatMonths(120))
	assert.Equal(t, "7y 8mo", FormatMonths(91.4))

	assert.Equal(t, "never", FormatDepletion(nil))
	p := 18
	assert.Equal(t, "year 18", FormatDepletion(&p))
}

func TestRenderSweepTable(t *testing.T) {
	depletion := 12
	table := string(RenderSweepTable([]domain.SweepPoint{
		{
			AnnualWithdrawal: decimal.NewFromInt(20000),
			FinalBalance:     decimal.NewFromInt(2000000),
			Sustainable:      true,
		},
		{
			AnnualWithdrawal: decimal.NewFromInt(100000),
			FinalBalance:     decimal.Zero,
			DepletionPeriod:  &depletion,
		},
	}))

	assert.Contains(t, table, "WITHDRAWAL SENSITIVITY")
	assert.Contains(t, table, "$20000.00")
	assert.Contains(t, table, "year 12")
	assert.Contains(t, table, "never")
}

func TestSeriesFromProjection(t *testing.T) {
	p := &domain.ProjectionResult{
		Balances: []domain.PeriodBalance{
			{Period: 0, Balance: decimal.NewFromInt(100)},
			{Period: 1, Balance: decimal.NewFromInt(90)},
		},
	}

	series := SeriesFromProjection("balance", p)
	assert.Equal(t, "balance", series.Name)
	assert.Equal(t, []float64{100, 90}, series.Values)
}

func TestSeriesFromSweep(t *testing.T) {
	series := SeriesFromSweep("final balance", []domain.SweepPoint{
		{AnnualWithdrawal: decimal.NewFromInt(20000), FinalBalance: decimal.NewFromInt(2000000)},
		{AnnualWithdrawal: decimal.NewFromInt(40000), FinalBalance: decimal.NewFromInt(500000)},
		{AnnualWithdrawal: decimal.NewFromInt(60000), FinalBalance: decimal.Zero},
	})

	assert.Equal(t, "final balance", series.Name)
	assert.Equal(t, []float64{2000000, 500000, 0}, series.Values)
}
