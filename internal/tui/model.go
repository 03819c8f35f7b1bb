// Package tui implements the interactive calculator: sliders on the
// left, a live projection on the right, recomputed on every keystroke.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/firecalc/firecalc/internal/calculation"
	"github.com/firecalc/firecalc/internal/config"
	"github.com/firecalc/firecalc/internal/domain"
	"github.com/firecalc/firecalc/internal/tui/components"
)

// Mode selects which calculator the screen is driving.
type Mode int

const (
	ModeDrawdown Mode = iota
	ModeStochastic
	ModeGoal
)

func (m Mode) String() string {
	switch m {
	case ModeDrawdown:
		return "Steady Withdrawal"
	case ModeStochastic:
		return "Withdrawal Analyzer"
	case ModeGoal:
		return "Goal Date"
	default:
		return "Unknown"
	}
}

// tuiSeed keeps stochastic charts stable while a slider is held down.
const tuiSeed = 42

// timeNow is swapped in tests for deterministic goal dates.
var timeNow = time.Now

// Model is the entire application state.
type Model struct {
	mode  Mode
	focus int

	width  int
	height int

	sliders  map[Mode][]*components.ParamSlider
	scenario domain.ReturnScenario

	store config.ParamStore

	projection *domain.ProjectionResult
	goal       *domain.GoalResult

	status string
	err    error
}

// NewModel creates the model with every slider at its default and runs
// the first projection.
func NewModel(store config.ParamStore) Model {
	m := Model{
		mode:     ModeDrawdown,
		scenario: domain.ScenarioStochastic,
		store:    store,
		width:    100,
		height:   30,
		sliders: map[Mode][]*components.ParamSlider{
			ModeDrawdown: {
				components.NewParamSlider("Present value", config.FieldPresentValue, 1000000, 0, 5000000, 50000).WithUnit("$").WithFormat("%.0f"),
				components.NewParamSlider("Capital growth", config.FieldCapitalRate, 5.0, 0, 12, 0.25).WithUnit("%"),
				components.NewParamSlider("Dividend yield", config.FieldDividendRate, 2.0, 0, 8, 0.25).WithUnit("%"),
				components.NewParamSlider("Annual withdrawal", config.FieldWithdrawalAmount, 40000, 0, 250000, 5000).WithUnit("$").WithFormat("%.0f"),
				components.NewParamSlider("Horizon", config.FieldHorizon, 50, 1, 80, 1).WithUnit("y").WithFormat("%.0f"),
			},
			ModeStochastic: {
				components.NewParamSlider("Present value", config.FieldPresentValue, 1000000, 0, 5000000, 50000).WithUnit("$").WithFormat("%.0f"),
				components.NewParamSlider("Annual withdrawal", config.FieldWithdrawalAmount, 40000, 0, 250000, 5000).WithUnit("$").WithFormat("%.0f"),
				components.NewParamSlider("Inflation", config.FieldInflationRate, 3.0, 0, 10, 0.25).WithUnit("%"),
				components.NewParamSlider("Mean return", config.FieldMeanReturn, 7.0, -5, 15, 0.25).WithUnit("%"),
				components.NewParamSlider("Volatility", config.FieldStdDev, 15.0, 0, 30, 0.5).WithUnit("%"),
				components.NewParamSlider("Horizon", config.FieldHorizon, 50, 1, 80, 1).WithUnit("y").WithFormat("%.0f"),
			},
			ModeGoal: {
				components.NewParamSlider("Present value", config.FieldPresentValue, 200000, 0, 5000000, 25000).WithUnit("$").WithFormat("%.0f"),
				components.NewParamSlider("Monthly income", config.FieldMonthlyIncome, 8000, 0, 50000, 250).WithUnit("$").WithFormat("%.0f"),
				components.NewParamSlider("Monthly expenses", config.FieldMonthlyExpenses, 5000, 0, 50000, 250).WithUnit("$").WithFormat("%.0f"),
				components.NewParamSlider("Growth rate", config.FieldGrowthRate, 7.0, 0, 15, 0.25).WithUnit("%"),
				components.NewParamSlider("Annual spending", config.FieldAnnualSpending, 60000, 0, 300000, 5000).WithUnit("$").WithFormat("%.0f"),
				components.NewParamSlider("Target multiple", config.FieldTargetMultiple, 25, 5, 50, 0.5).WithUnit("x").WithFormat("%.1f"),
			},
		},
	}
	m.recompute()
	m.syncFocus()
	return m
}

// Init is required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// current returns the slider set for the active mode.
func (m *Model) current() []*components.ParamSlider {
	return m.sliders[m.mode]
}

// value finds a field's current slider value in the active mode, falling
// back to zero when the mode has no such slider.
func (m *Model) value(field string) float64 {
	for _, s := range m.current() {
		if s.Field == field {
			return s.Value
		}
	}
	return 0
}

func (m *Model) money(field string) decimal.Decimal {
	return decimal.NewFromFloat(m.value(field))
}

func (m *Model) rate(field string) decimal.Decimal {
	return decimal.NewFromFloat(m.value(field) / 100)
}

// recompute reruns the active calculator from the slider values.
func (m *Model) recompute() {
	switch m.mode {
	case ModeDrawdown:
		m.projection = calculation.RunDrawdown(domain.DrawdownParameters{
			PresentValue:     m.money(config.FieldPresentValue),
			CapitalRate:      m.rate(config.FieldCapitalRate),
			DividendRate:     m.rate(config.FieldDividendRate),
			AnnualWithdrawal: m.money(config.FieldWithdrawalAmount),
			Horizon:          int(m.value(config.FieldHorizon)),
		})
		m.goal = nil

	case ModeStochastic:
		m.projection = calculation.RunStochastic(domain.StochasticParameters{
			PresentValue: m.money(config.FieldPresentValue),
			Withdrawal: domain.WithdrawalSpec{
				Mode:   domain.WithdrawalByAmount,
				Amount: m.money(config.FieldWithdrawalAmount),
			},
			InflationRate: m.rate(config.FieldInflationRate),
			MeanReturn:    m.rate(config.FieldMeanReturn),
			StdDev:        m.rate(config.FieldStdDev),
			Scenario:      m.scenario,
			Horizon:       int(m.value(config.FieldHorizon)),
			Seed:          tuiSeed,
		})
		m.goal = nil

	case ModeGoal:
		goal := calculation.SolveGoal(domain.GoalInputs{
			PresentValue:     m.money(config.FieldPresentValue),
			MonthlyIncome:    m.money(config.FieldMonthlyIncome),
			MonthlyExpenses:  m.money(config.FieldMonthlyExpenses),
			AnnualGrowthRate: m.rate(config.FieldGrowthRate),
			AnnualSpending:   m.money(config.FieldAnnualSpending),
			TargetMultiple:   decimal.NewFromFloat(m.value(config.FieldTargetMultiple)),
		}, timeNow())
		m.goal = &goal
		m.projection = nil
	}
}

// propagate copies a slider's value to same-field sliders in the other
// modes, so a shared field like present value stays consistent when the
// user switches calculators.
func (m *Model) propagate(changed *components.ParamSlider) {
	for _, sliders := range m.sliders {
		for _, s := range sliders {
			if s != changed && s.Field == changed.Field {
				s.SetValue(changed.Value)
			}
		}
	}
}

// syncFocus marks exactly one slider focused.
func (m *Model) syncFocus() {
	sliders := m.current()
	if m.focus >= len(sliders) {
		m.focus = len(sliders) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	for i, s := range sliders {
		s.IsFocused = i == m.focus
	}
}
