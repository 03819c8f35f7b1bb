package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firecalc/firecalc/internal/domain"
)

func TestSweepWithdrawalsGrid(t *testing.T) {
	base := domain.DrawdownParameters{
		PresentValue: decimal.NewFromInt(1000000),
		CapitalRate:  decimal.NewFromFloat(0.05),
		DividendRate: decimal.NewFromFloat(0.02),
		Horizon:      40,
	}

	points := SweepWithdrawals(base,
		decimal.NewFromInt(20000),
		decimal.NewFromInt(100000),
		decimal.NewFromInt(20000))

	require.Len(t, points, 5)
	assert.True(t, points[0].AnnualWithdrawal.Equal(decimal.NewFromInt(20000)))
	assert.True(t, points[4].AnnualWithdrawal.Equal(decimal.NewFromInt(100000)))

	// Heavier withdrawals can never leave more money behind.
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].FinalBalance.LessThanOrEqual(points[i-1].FinalBalance),
			"final balance increased between steps %d and %d", i-1, i)
	}

	// 2% of the portfolio is covered by 7% growth; 10% is not.
	assert.Nil(t, points[0].DepletionPeriod)
	assert.True(t, points[0].Sustainable)
	assert.NotNil(t, points[4].DepletionPeriod)
}

func TestDrawdownDepletionMonotonicInWithdrawal(t *testing.T) {
	base := domain.DrawdownParameters{
		PresentValue: decimal.NewFromInt(1000000),
		CapitalRate:  decimal.NewFromFloat(0.05),
		DividendRate: decimal.NewFromFloat(0.02),
		Horizon:      40,
	}

	// Survivors count as depleting just past the horizon so the
	// comparison stays total.
	depletionOf := func(r *domain.ProjectionResult) int {
		if r.DepletionPeriod == nil {
			return base.Horizon + 1
		}
		return *r.DepletionPeriod
	}

	prev := base.Horizon + 1
	for w := 30000; w <= 300000; w += 30000 {
		params := base
		params.AnnualWithdrawal = decimal.NewFromInt(int64(w))
		got := depletionOf(RunDrawdown(params))

		assert.LessOrEqual(t, got, prev,
			"depletion moved later when withdrawing %d", w)
		prev = got
	}
}

func TestSweepWithdrawalsNonPositiveStep(t *testing.T) {
	base := domain.DrawdownParameters{
		PresentValue: decimal.NewFromInt(100000),
		Horizon:      10,
	}

	points := SweepWithdrawals(base,
		decimal.NewFromInt(5000),
		decimal.NewFromInt(50000),
		decimal.Zero)

	require.Len(t, points, 1)
	assert.True(t, points[0].AnnualWithdrawal.Equal(decimal.NewFromInt(5000)))
}
