package output

import (
	"fmt"
	"strings"

	"github.com/firecalc/firecalc/internal/domain"
)

// ConsoleFormatter renders plain-text tables for terminal use.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var b strings.Builder

	b.WriteString("FIRECALC PROJECTION RESULTS\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	if results.ConfigPath != "" {
		b.WriteString(fmt.Sprintf("Configuration: %s\n", results.ConfigPath))
	}
	b.WriteString("\n")

	for i := range results.Results {
		writeScenario(&b, &results.Results[i])
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func writeScenario(b *strings.Builder, r *domain.ScenarioResult) {
	b.WriteString(fmt.Sprintf("Scenario: %s (%s)\n", r.Name, r.Kind))
	b.WriteString(strings.Repeat("-", 60) + "\n")

	if r.Projection != nil {
		writeProjection(b, r.Projection)
	}
	if r.Goal != nil {
		writeGoal(b, r.Goal)
	}
	if r.MonteCarlo != nil {
		writeMonteCarlo(b, r.MonteCarlo)
	}
}

func writeProjection(b *strings.Builder, p *domain.ProjectionResult) {
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Final balance:", FormatCurrency(p.FinalBalance())))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Total withdrawn:", FormatCurrency(p.TotalWithdrawn)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Funds depleted:", FormatDepletion(p.DepletionPeriod)))
	b.WriteString(fmt.Sprintf("  %-24s %v\n", "Sustainable:", p.Sustainable))

	// Balance milestones at roughly decade spacing keep long horizons
	// readable.
	step := len(p.Balances) / 6
	if step < 1 {
		step = 1
	}
	b.WriteString("  Balance path:\n")
	lastPrinted := -1
	for i := 0; i < len(p.Balances); i += step {
		pb := p.Balances[i]
		b.WriteString(fmt.Sprintf("    year %-4d %s\n", pb.Period, FormatCurrency(pb.Balance)))
		lastPrinted = i
	}
	if lastPrinted != len(p.Balances)-1 {
		last := p.Balances[len(p.Balances)-1]
		b.WriteString(fmt.Sprintf("    year %-4d %s\n", last.Period, FormatCurrency(last.Balance)))
	}
}

func writeGoal(b *strings.Builder, g *domain.GoalResult) {
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Status:", goalStatusText(g.Status)))
	if g.Status == domain.GoalStatusComputing || g.Status == domain.GoalStatusNeedSpending {
		return
	}
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Target amount:", FormatCurrency(g.TargetAmount)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Time to goal:", FormatMonths(g.MonthsToGoal)))
	if g.TargetDate != nil {
		b.WriteString(fmt.Sprintf("  %-24s %s\n", "Target date:", g.TargetDate.Format("January 2006")))
	}
	b.WriteString(fmt.Sprintf("  %-24s %s%%\n", "Savings rate:", g.SavingsRatePercent.StringFixed(1)))
}

func goalStatusText(s domain.GoalStatus) string {
	switch s {
	case domain.GoalStatusOK:
		return "on track"
	case domain.GoalStatusComputing:
		return "waiting for inputs"
	case domain.GoalStatusNeedSpending:
		return "annual spending required"
	case domain.GoalStatusAlreadyReached:
		return "goal already reached"
	case domain.GoalStatusUnreachable:
		return "unreachable at current contributions"
	default:
		return string(s)
	}
}

func writeMonteCarlo(b *strings.Builder, mc *domain.MonteCarloResult) {
	b.WriteString(fmt.Sprintf("  Monte Carlo (%d runs, seed %d):\n", mc.NumRuns, mc.Seed))
	b.WriteString(fmt.Sprintf("    %-22s %s\n", "Success rate:", FormatPercentage(mc.SuccessRate)))
	b.WriteString(fmt.Sprintf("    %-22s %s\n", "Median ending:", FormatCurrency(mc.MedianEndingBalance)))
	b.WriteString(fmt.Sprintf("    %-22s year %d\n", "Median depletion:", mc.MedianDepletion))
	b.WriteString("    Ending balance percentiles:\n")
	b.WriteString(fmt.Sprintf("      P10 %s\n", FormatCurrency(mc.Percentiles.P10)))
	b.WriteString(fmt.Sprintf("      P25 %s\n", FormatCurrency(mc.Percentiles.P25)))
	b.WriteString(fmt.Sprintf("      P50 %s\n", FormatCurrency(mc.Percentiles.P50)))
	b.WriteString(fmt.Sprintf("      P75 %s\n", FormatCurrency(mc.Percentiles.P75)))
	b.WriteString(fmt.Sprintf("      P90 %s\n", FormatCurrency(mc.Percentiles.P90)))
}
