package domain

import (
	"github.com/shopspring/decimal"
)

// ReturnScenario selects how the per-period return is produced.
type ReturnScenario string

const (
	ScenarioFixed      ReturnScenario = "fixed"
	ScenarioStressed   ReturnScenario = "stressed"
	ScenarioStochastic ReturnScenario = "stochastic"
)

// Valid reports whether the scenario selector is one of the known values.
func (s ReturnScenario) Valid() bool {
	switch s {
	case ScenarioFixed, ScenarioStressed, ScenarioStochastic:
		return true
	}
	return false
}

// WithdrawalMode tags how the withdrawal is specified.
type WithdrawalMode string

const (
	WithdrawalByAmount WithdrawalMode = "amount"
	WithdrawalByRate   WithdrawalMode = "rate"
)

// Defaults applied when a withdrawal field is absent or the mode is
// switched without a value.
var (
	DefaultWithdrawalAmount = decimal.NewFromInt(40000)
	DefaultWithdrawalRate   = decimal.NewFromFloat(0.04)
)

// WithdrawalSpec is a tagged amount-or-rate withdrawal specification.
// Rate is a decimal fraction of present value (0.04 = 4%).
type WithdrawalSpec struct {
	Mode   WithdrawalMode  `yaml:"mode" json:"mode"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Rate   decimal.Decimal `yaml:"rate" json:"rate"`
}

// Resolve returns the first-period nominal withdrawal for the given
// present value. A tagged spec takes its field literally, so an explicit
// zero withdraws nothing. An untagged spec infers the mode from whichever
// field is set and falls back to the default amount when both are empty;
// the mode-switch defaults live in the parameter sources.
func (w WithdrawalSpec) Resolve(presentValue decimal.Decimal) decimal.Decimal {
	switch w.Mode {
	case WithdrawalByAmount:
		return w.Amount
	case WithdrawalByRate:
		return presentValue.Mul(w.Rate)
	default:
		if w.Amount.IsZero() && !w.Rate.IsZero() {
			return presentValue.Mul(w.Rate)
		}
		if w.Amount.IsZero() {
			return DefaultWithdrawalAmount
		}
		return w.Amount
	}
}

// DrawdownParameters drive the steady-withdrawal simulator. Rates are
// decimal fractions; the withdrawal is a constant annual amount.
type DrawdownParameters struct {
	PresentValue     decimal.Decimal `yaml:"present_value" json:"presentValue"`
	CapitalRate      decimal.Decimal `yaml:"capital_rate" json:"capitalRate"`
	DividendRate     decimal.Decimal `yaml:"dividend_rate" json:"dividendRate"`
	AnnualWithdrawal decimal.Decimal `yaml:"annual_withdrawal" json:"annualWithdrawal"`
	Horizon          int             `yaml:"horizon" json:"horizon"`
}

// Normalize floors the parameters into their documented ranges: a
// projection always covers at least one period and never starts from a
// negative balance.
func (p *DrawdownParameters) Normalize() {
	if p.Horizon < 1 {
		p.Horizon = 1
	}
	if p.PresentValue.IsNegative() {
		p.PresentValue = decimal.Zero
	}
}

// StochasticParameters drive the stochastic withdrawal analyzer.
type StochasticParameters struct {
	PresentValue  decimal.Decimal `yaml:"present_value" json:"presentValue"`
	Withdrawal    WithdrawalSpec  `yaml:"withdrawal" json:"withdrawal"`
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`
	MeanReturn    decimal.Decimal `yaml:"mean_return" json:"meanReturn"`
	StdDev        decimal.Decimal `yaml:"std_dev" json:"stdDev"`
	Scenario      ReturnScenario  `yaml:"scenario" json:"scenario"`
	Horizon       int             `yaml:"horizon" json:"horizon"`

	// Seed makes stochastic runs reproducible. Zero means "derive from
	// the wall clock" and is resolved by the analyzer.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Normalize floors the parameters into their documented ranges and
// defaults an unset scenario selector to fixed returns.
func (p *StochasticParameters) Normalize() {
	if p.Horizon < 1 {
		p.Horizon = 1
	}
	if p.PresentValue.IsNegative() {
		p.PresentValue = decimal.Zero
	}
	if p.Scenario == "" {
		p.Scenario = ScenarioFixed
	}
}

// GoalInputs drive the goal-date solver. The net monthly contribution is
// income minus expenses and may be negative.
type GoalInputs struct {
	PresentValue     decimal.Decimal `yaml:"present_value" json:"presentValue"`
	MonthlyIncome    decimal.Decimal `yaml:"monthly_income" json:"monthlyIncome"`
	MonthlyExpenses  decimal.Decimal `yaml:"monthly_expenses" json:"monthlyExpenses"`
	AnnualGrowthRate decimal.Decimal `yaml:"annual_growth_rate" json:"annualGrowthRate"`
	AnnualSpending   decimal.Decimal `yaml:"annual_spending" json:"annualSpending"`
	TargetMultiple   decimal.Decimal `yaml:"target_multiple" json:"targetMultiple"`
}

// MonthlyContribution returns income minus expenses.
func (g GoalInputs) MonthlyContribution() decimal.Decimal {
	return g.MonthlyIncome.Sub(g.MonthlyExpenses)
}

// TargetAmount returns annual spending times the target multiple.
func (g GoalInputs) TargetAmount() decimal.Decimal {
	return g.AnnualSpending.Mul(g.TargetMultiple)
}

// IsEmpty reports whether every input is at its zero value, which the
// solver classifies as "still computing" rather than an error.
func (g GoalInputs) IsEmpty() bool {
	return g.PresentValue.IsZero() &&
		g.MonthlyIncome.IsZero() &&
		g.MonthlyExpenses.IsZero() &&
		g.AnnualGrowthRate.IsZero() &&
		g.AnnualSpending.IsZero() &&
		g.TargetMultiple.IsZero()
}

// MultipleFromWithdrawalRate converts a withdrawal-rate percentage into
// the equivalent years-of-spending multiple (100 / rate). A non-positive
// rate yields zero.
func MultipleFromWithdrawalRate(ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return decimal.NewFromInt(100).Div(ratePercent)
}
