package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/firecalc/firecalc/internal/domain"
	"github.com/firecalc/firecalc/internal/output"
	"github.com/firecalc/firecalc/internal/tui/components"
	"github.com/firecalc/firecalc/internal/tui/tuistyles"
	"github.com/firecalc/firecalc/pkg/dateutil"
)

// View renders the full screen: mode tabs, the slider panel, and the
// projection panel.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("firecalc"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	left := tuistyles.ActiveBorderStyle.Render(m.renderSliders())
	right := tuistyles.BorderStyle.Render(m.renderResults())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, mode := range []Mode{ModeDrawdown, ModeStochastic, ModeGoal} {
		label := mode.String()
		if mode == m.mode {
			tabs = append(tabs, tuistyles.HelpKeyStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, tuistyles.StatusBarStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderSliders() string {
	var b strings.Builder
	for i, s := range m.current() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s.Render())
	}
	if m.mode == ModeStochastic {
		b.WriteString("\n\n")
		b.WriteString(tuistyles.MetricLabelStyle.Render("Returns "))
		b.WriteString(tuistyles.ParameterValueStyle.Render(string(m.scenario)))
		b.WriteString(tuistyles.SubtitleStyle.Render("  (x to cycle)"))
	}
	return b.String()
}

func (m Model) renderResults() string {
	switch {
	case m.goal != nil:
		return m.renderGoal()
	case m.projection != nil:
		return m.renderProjection()
	default:
		return tuistyles.InfoStyle.Render("No results yet")
	}
}

func (m Model) renderProjection() string {
	p := m.projection

	chartWidth := m.width - 50
	chartHeight := m.height - 14
	series := output.SeriesFromProjection("balance", p)

	chart := components.NewASCIIChart("Projected balance").
		AddSeries(series.Name, series.Values, tuistyles.ColorChartLine1).
		WithSize(chartWidth, chartHeight)

	var b strings.Builder
	b.WriteString(chart.Render())
	b.WriteString("\n")

	b.WriteString(tuistyles.MetricLabelStyle.Render("Final balance "))
	b.WriteString(tuistyles.MetricValueStyle.Render(output.FormatCurrency(p.FinalBalance())))
	b.WriteString(tuistyles.MetricLabelStyle.Render("   Depleted "))
	if p.Depleted() {
		b.WriteString(tuistyles.ErrorStyle.Render(output.FormatDepletion(p.DepletionPeriod)))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render("never"))
	}
	b.WriteString(tuistyles.MetricLabelStyle.Render("   Withdrawn "))
	b.WriteString(tuistyles.MetricValueStyle.Render(output.FormatCurrency(p.TotalWithdrawn)))

	return b.String()
}

func (m Model) renderGoal() string {
	g := m.goal

	cards := []*components.MetricCard{
		components.NewMetricCard("Target amount", output.FormatCurrency(g.TargetAmount)),
		components.NewMetricCard("Time to goal", output.FormatMonths(g.MonthsToGoal)),
		components.NewMetricCard("Savings rate", g.SavingsRatePercent.StringFixed(1)+"%"),
	}
	if g.TargetDate != nil {
		away := dateutil.MonthsBetween(timeNow(), *g.TargetDate)
		cards = append(cards,
			components.NewMetricCard("Target date", g.TargetDate.Format("January 2006")).
				WithDescription(fmt.Sprintf("%d months away", away)))
	}

	var b strings.Builder
	b.WriteString(statusLine(g.Status))
	b.WriteString("\n\n")
	b.WriteString(components.MetricGrid(cards, 2))
	return b.String()
}

func statusLine(s domain.GoalStatus) string {
	switch s {
	case domain.GoalStatusAlreadyReached:
		return lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Bold(true).
			Render("Goal already reached")
	case domain.GoalStatusUnreachable:
		return tuistyles.ErrorStyle.Render("Goal unreachable at current contributions")
	case domain.GoalStatusNeedSpending:
		return tuistyles.InfoStyle.Render("Set annual spending to compute a goal")
	case domain.GoalStatusComputing:
		return tuistyles.InfoStyle.Render("Waiting for inputs")
	default:
		return tuistyles.InfoStyle.Render("On track")
	}
}

func (m Model) renderStatusBar() string {
	var help []string
	for _, b := range []key.Binding{
		keys.NextMode, keys.Up, keys.Increase, keys.Cycle, keys.Save, keys.Open, keys.Quit,
	} {
		h := b.Help()
		help = append(help, keyHelp(h.Key, h.Desc))
	}
	bar := strings.Join(help, "  ")

	if m.err != nil {
		bar += "  " + tuistyles.ErrorStyle.Render(m.err.Error())
	} else if m.status != "" {
		bar += "  " + tuistyles.InfoStyle.Render(m.status)
	}
	return bar
}

func keyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		tuistyles.HelpKeyStyle.Render(key),
		tuistyles.HelpDescStyle.Render(desc))
}
