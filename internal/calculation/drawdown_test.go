package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firecalc/firecalc/internal/domain"
)

func TestRunDrawdownBalancePath(t *testing.T) {
	// No growth: each year removes exactly the withdrawal.
	result := RunDrawdown(domain.DrawdownParameters{
		PresentValue:     decimal.NewFromInt(100),
		AnnualWithdrawal: decimal.NewFromInt(10),
		Horizon:          3,
	})

	require.Len(t, result.Balances, 4)
	assert.True(t, result.Balances[0].Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Balances[1].Balance.Equal(decimal.NewFromInt(90)))
	assert.True(t, result.Balances[2].Balance.Equal(decimal.NewFromInt(80)))
	assert.True(t, result.Balances[3].Balance.Equal(decimal.NewFromInt(70)))
	assert.True(t, result.TotalWithdrawn.Equal(decimal.NewFromInt(30)))
	assert.False(t, result.Depleted())
	assert.False(t, result.Sustainable)
}

func TestRunDrawdownGrowthCoversWithdrawal(t *testing.T) {
	result := RunDrawdown(domain.DrawdownParameters{
		PresentValue:     decimal.NewFromInt(1000000),
		CapitalRate:      decimal.NewFromFloat(0.05),
		DividendRate:     decimal.NewFromFloat(0.02),
		AnnualWithdrawal: decimal.NewFromInt(40000),
		Horizon:          50,
	})

	assert.False(t, result.Depleted())
	assert.True(t, result.Sustainable)
	assert.True(t, result.FinalBalance().GreaterThan(decimal.NewFromInt(1000000)))
}

func TestRunDrawdownDepletionClampsToZero(t *testing.T) {
	result := RunDrawdown(domain.DrawdownParameters{
		PresentValue:     decimal.NewFromInt(100),
		AnnualWithdrawal: decimal.NewFromInt(60),
		Horizon:          4,
	})

	require.NotNil(t, result.DepletionPeriod)
	assert.Equal(t, 2, *result.DepletionPeriod)

	// Year 2 only had 40 left to pay out; later years pay nothing.
	assert.True(t, result.TotalWithdrawn.Equal(decimal.NewFromInt(100)),
		"got %s", result.TotalWithdrawn)

	for _, pb := range result.Balances {
		assert.False(t, pb.Balance.IsNegative(), "period %d went negative", pb.Period)
	}
	assert.True(t, result.Balances[2].Balance.IsZero())
	assert.True(t, result.FinalBalance().IsZero())
}

func TestRunDrawdownDepletionRecordedOnce(t *testing.T) {
	result := RunDrawdown(domain.DrawdownParameters{
		PresentValue:     decimal.NewFromInt(10),
		AnnualWithdrawal: decimal.NewFromInt(100),
		Horizon:          10,
	})

	require.NotNil(t, result.DepletionPeriod)
	assert.Equal(t, 1, *result.DepletionPeriod)
}

func TestRunDrawdownNormalizesInputs(t *testing.T) {
	result := RunDrawdown(domain.DrawdownParameters{
		PresentValue:     decimal.NewFromInt(-500),
		AnnualWithdrawal: decimal.NewFromInt(10),
		Horizon:          0,
	})

	// Horizon floors to one period and a negative start is treated as
	// an empty portfolio.
	require.Len(t, result.Balances, 2)
	assert.True(t, result.Balances[0].Balance.IsZero())
}

func TestRunDrawdownZeroWithdrawalIsSustainable(t *testing.T) {
	result := RunDrawdown(domain.DrawdownParameters{
		PresentValue: decimal.NewFromInt(1000),
		CapitalRate:  decimal.NewFromFloat(0.05),
		Horizon:      10,
	})

	assert.True(t, result.Sustainable)
	assert.True(t, result.TotalWithdrawn.IsZero())
	assert.False(t, result.Depleted())
}
