package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"

	"github.com/firecalc/firecalc/internal/domain"
)

// CSVFormatter emits one summary row per scenario.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"scenario", "kind", "final_balance", "total_withdrawn",
		"depletion_period", "sustainable", "goal_status", "months_to_goal",
		"target_amount", "mc_success_rate", "mc_median_ending",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range results.Results {
		if err := w.Write(csvRow(&results.Results[i])); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func csvRow(r *domain.ScenarioResult) []string {
	row := make([]string, 11)
	row[0] = r.Name
	row[1] = string(r.Kind)

	if p := r.Projection; p != nil {
		row[2] = p.FinalBalance().StringFixed(2)
		row[3] = p.TotalWithdrawn.StringFixed(2)
		if p.DepletionPeriod != nil {
			row[4] = fmt.Sprintf("%d", *p.DepletionPeriod)
		}
		row[5] = fmt.Sprintf("%v", p.Sustainable)
	}

	if g := r.Goal; g != nil {
		row[6] = string(g.Status)
		if !math.IsInf(g.MonthsToGoal, 1) {
			row[7] = fmt.Sprintf("%.1f", g.MonthsToGoal)
		}
		row[8] = g.TargetAmount.StringFixed(2)
	}

	if mc := r.MonteCarlo; mc != nil {
		row[9] = mc.SuccessRate.StringFixed(4)
		row[10] = mc.MedianEndingBalance.StringFixed(2)
	}

	return row
}
