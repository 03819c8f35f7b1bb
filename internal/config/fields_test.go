package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firecalc/firecalc/internal/domain"
)

func TestParamSourceDefaults(t *testing.T) {
	ps := NewParamSource()

	dd := ps.DrawdownParameters()
	assert.Equal(t, "1000000", dd.PresentValue.String())
	assert.Equal(t, "0.05", dd.CapitalRate.String())
	assert.Equal(t, "0.02", dd.DividendRate.String())
	assert.Equal(t, "40000", dd.AnnualWithdrawal.String())
	assert.Equal(t, 50, dd.Horizon)

	assert.False(t, ps.Provided(FieldPresentValue))
}

func TestParamSourceSetOverrides(t *testing.T) {
	ps := NewParamSource()
	ps.Set(FieldPresentValue, 250000.0)
	ps.Set(FieldHorizon, 10)

	dd := ps.DrawdownParameters()
	assert.Equal(t, "250000", dd.PresentValue.String())
	assert.Equal(t, 10, dd.Horizon)
	assert.True(t, ps.Provided(FieldPresentValue))
	assert.False(t, ps.Provided(FieldCapitalRate))
}

func TestParamSourceBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64(FieldPresentValue, 1000000, "")
	flags.Float64(FieldMeanReturn, 7.0, "")
	require.NoError(t, flags.Parse([]string{"--present-value", "500000"}))

	ps := NewParamSource()
	require.NoError(t, ps.BindFlags(flags))

	sp := ps.StochasticParameters()
	assert.Equal(t, "500000", sp.PresentValue.String())
	assert.Equal(t, "0.07", sp.MeanReturn.String())

	// Only the parsed flag counts as provided.
	assert.True(t, ps.Provided(FieldPresentValue))
	assert.False(t, ps.Provided(FieldMeanReturn))
}

func TestParamSourceWithdrawalModeSelection(t *testing.T) {
	// Default: amount mode with the default amount.
	ps := NewParamSource()
	sp := ps.StochasticParameters()
	assert.Equal(t, domain.WithdrawalByAmount, sp.Withdrawal.Mode)
	assert.Equal(t, "40000", sp.Withdrawal.Amount.String())

	// An explicit rate without an explicit amount switches to rate mode.
	ps = NewParamSource()
	ps.Set(FieldWithdrawalRate, 5.0)
	sp = ps.StochasticParameters()
	assert.Equal(t, domain.WithdrawalByRate, sp.Withdrawal.Mode)
	assert.Equal(t, "0.05", sp.Withdrawal.Rate.String())

	// An explicit amount always wins.
	ps = NewParamSource()
	ps.Set(FieldWithdrawalRate, 5.0)
	ps.Set(FieldWithdrawalAmount, 30000.0)
	sp = ps.StochasticParameters()
	assert.Equal(t, domain.WithdrawalByAmount, sp.Withdrawal.Mode)
	assert.Equal(t, "30000", sp.Withdrawal.Amount.String())
}

func TestParamSourceGoalMultipleFromRate(t *testing.T) {
	ps := NewParamSource()
	ps.Set(FieldWithdrawalRate, 4.0)

	in := ps.GoalInputs()
	assert.Equal(t, "25", in.TargetMultiple.String())

	// An explicit multiple is not overridden by the rate.
	ps = NewParamSource()
	ps.Set(FieldWithdrawalRate, 4.0)
	ps.Set(FieldTargetMultiple, 30.0)
	in = ps.GoalInputs()
	assert.Equal(t, "30", in.TargetMultiple.String())
}

func TestParamSourceSnapshotRoundTrip(t *testing.T) {
	ps := NewParamSource()
	ps.Set(FieldPresentValue, 750000.0)
	ps.Set(FieldScenario, string(domain.ScenarioStressed))

	snap := ps.Snapshot()
	assert.Equal(t, "750000", snap.Fields[FieldPresentValue])
	assert.False(t, snap.SavedAt.IsZero())

	restored := NewParamSource()
	restored.ApplySnapshot(snap)
	assert.Equal(t, "750000", restored.DrawdownParameters().PresentValue.String())
	assert.Equal(t, domain.ScenarioStressed, restored.StochasticParameters().Scenario)
	assert.True(t, restored.Provided(FieldPresentValue))
}

func TestParamSourceApplySnapshotIgnoresUnknownFields(t *testing.T) {
	ps := NewParamSource()
	ps.ApplySnapshot(ParamSnapshot{Fields: map[string]string{
		"mystery-field": "123",
		FieldHorizon:    "15",
	}})

	assert.Equal(t, 15, ps.DrawdownParameters().Horizon)
	assert.False(t, ps.Provided("mystery-field"))
}
