package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/firecalc/firecalc/internal/domain"
)

// Field names shared by CLI flags, saved parameter sets, and the TUI.
// Rates are expressed as percentages at this layer (7.0 means 7%) and
// converted to decimal fractions when parameters are built.
const (
	FieldPresentValue     = "present-value"
	FieldCapitalRate      = "capital-rate"
	FieldDividendRate     = "dividend-rate"
	FieldWithdrawalAmount = "withdrawal-amount"
	FieldWithdrawalRate   = "withdrawal-rate"
	FieldInflationRate    = "inflation-rate"
	FieldMeanReturn       = "mean-return"
	FieldStdDev           = "std-dev"
	FieldScenario         = "scenario"
	FieldHorizon          = "horizon"
	FieldSeed             = "seed"
	FieldMonthlyIncome    = "monthly-income"
	FieldMonthlyExpenses  = "monthly-expenses"
	FieldGrowthRate       = "growth-rate"
	FieldAnnualSpending   = "annual-spending"
	FieldTargetMultiple   = "target-multiple"
)

// defaults mirror the form's initial values.
var defaults = map[string]interface{}{
	FieldPresentValue:     1000000.0,
	FieldCapitalRate:      5.0,
	FieldDividendRate:     2.0,
	FieldWithdrawalAmount: domain.DefaultWithdrawalAmount.InexactFloat64(),
	FieldWithdrawalRate:   domain.DefaultWithdrawalRate.InexactFloat64() * 100,
	FieldInflationRate:    3.0,
	FieldMeanReturn:       7.0,
	FieldStdDev:           15.0,
	FieldScenario:         string(domain.ScenarioFixed),
	FieldHorizon:          50,
	FieldSeed:             int64(0),
	FieldMonthlyIncome:    8000.0,
	FieldMonthlyExpenses:  5000.0,
	FieldGrowthRate:       7.0,
	FieldAnnualSpending:   60000.0,
	FieldTargetMultiple:   25.0,
}

// ParamSource resolves calculator parameters from flags, explicit
// overrides, and saved parameter sets, in viper's usual precedence order.
// Explicitly set fields are tracked separately because viper's IsSet
// cannot distinguish a default from a user-provided value.
type ParamSource struct {
	v        *viper.Viper
	flags    *pflag.FlagSet
	explicit map[string]bool
}

// NewParamSource creates a source with every field at its default.
func NewParamSource() *ParamSource {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return &ParamSource{v: v, explicit: make(map[string]bool)}
}

// BindFlags overlays a cobra command's flag set onto the source. Flags
// the user actually set take precedence over defaults and snapshots.
func (ps *ParamSource) BindFlags(flags *pflag.FlagSet) error {
	if err := ps.v.BindPFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	ps.flags = flags
	return nil
}

// Provided reports whether a field was set explicitly, as opposed to
// resolving from a default.
func (ps *ParamSource) Provided(field string) bool {
	if ps.explicit[field] {
		return true
	}
	return ps.flags != nil && ps.flags.Changed(field)
}

// Set overrides a single field. Used by the TUI sliders and by snapshot
// restoration.
func (ps *ParamSource) Set(field string, value interface{}) {
	ps.v.Set(field, value)
	ps.explicit[field] = true
}

// DrawdownParameters builds steady-withdrawal inputs from the source.
func (ps *ParamSource) DrawdownParameters() domain.DrawdownParameters {
	return domain.DrawdownParameters{
		PresentValue:     ps.money(FieldPresentValue),
		CapitalRate:      ps.rate(FieldCapitalRate),
		DividendRate:     ps.rate(FieldDividendRate),
		AnnualWithdrawal: ps.money(FieldWithdrawalAmount),
		Horizon:          ps.v.GetInt(FieldHorizon),
	}
}

// StochasticParameters builds analyzer inputs from the source. An
// explicit withdrawal amount wins over a rate; otherwise a provided rate
// selects rate mode.
func (ps *ParamSource) StochasticParameters() domain.StochasticParameters {
	spec := domain.WithdrawalSpec{
		Mode:   domain.WithdrawalByAmount,
		Amount: ps.money(FieldWithdrawalAmount),
	}
	if !ps.Provided(FieldWithdrawalAmount) && ps.Provided(FieldWithdrawalRate) {
		spec = domain.WithdrawalSpec{
			Mode: domain.WithdrawalByRate,
			Rate: ps.rate(FieldWithdrawalRate),
		}
	}

	return domain.StochasticParameters{
		PresentValue:  ps.money(FieldPresentValue),
		Withdrawal:    spec,
		InflationRate: ps.rate(FieldInflationRate),
		MeanReturn:    ps.rate(FieldMeanReturn),
		StdDev:        ps.rate(FieldStdDev),
		Scenario:      domain.ReturnScenario(ps.v.GetString(FieldScenario)),
		Horizon:       ps.v.GetInt(FieldHorizon),
		Seed:          ps.v.GetInt64(FieldSeed),
	}
}

// GoalInputs builds goal-solver inputs from the source. When a target
// multiple was not given but a withdrawal rate was, the multiple is
// derived as 100 over the rate.
func (ps *ParamSource) GoalInputs() domain.GoalInputs {
	multiple := ps.money(FieldTargetMultiple)
	if !ps.Provided(FieldTargetMultiple) && ps.Provided(FieldWithdrawalRate) {
		multiple = domain.MultipleFromWithdrawalRate(ps.money(FieldWithdrawalRate))
	}

	return domain.GoalInputs{
		PresentValue:     ps.money(FieldPresentValue),
		MonthlyIncome:    ps.money(FieldMonthlyIncome),
		MonthlyExpenses:  ps.money(FieldMonthlyExpenses),
		AnnualGrowthRate: ps.rate(FieldGrowthRate),
		AnnualSpending:   ps.money(FieldAnnualSpending),
		TargetMultiple:   multiple,
	}
}

// Snapshot captures the current value of every known field for
// persistence.
func (ps *ParamSource) Snapshot() ParamSnapshot {
	fields := make(map[string]string, len(defaults))
	for key := range defaults {
		fields[key] = ps.v.GetString(key)
	}
	return NewParamSnapshot(fields)
}

// ApplySnapshot restores previously saved field values. Unknown fields
// are ignored so old snapshots stay loadable.
func (ps *ParamSource) ApplySnapshot(snap ParamSnapshot) {
	for key, value := range snap.Fields {
		if _, known := defaults[key]; known {
			ps.Set(key, value)
		}
	}
}

func (ps *ParamSource) money(field string) decimal.Decimal {
	return decimal.NewFromFloat(ps.v.GetFloat64(field))
}

// rate converts a percentage field into a decimal fraction.
func (ps *ParamSource) rate(field string) decimal.Decimal {
	return decimal.NewFromFloat(ps.v.GetFloat64(field) / 100)
}
