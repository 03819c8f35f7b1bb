package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/firecalc/firecalc/internal/domain"
)

// RunDrawdown simulates a portfolio compounding at a fixed combined
// capital-plus-dividend rate while paying out a constant annual
// withdrawal. The balance is floored at zero and the first period that
// would have gone negative is recorded once as the depletion period.
func RunDrawdown(params domain.DrawdownParameters) *domain.ProjectionResult {
	params.Normalize()

	one := decimal.NewFromInt(1)
	growth := one.Add(params.CapitalRate).Add(params.DividendRate)

	balance := params.PresentValue
	balances := make([]domain.PeriodBalance, 0, params.Horizon+1)
	balances = append(balances, domain.PeriodBalance{Period: 0, Balance: balance})

	var depletion *int
	totalWithdrawn := decimal.Zero

	for period := 1; period <= params.Horizon; period++ {
		grown := balance.Mul(growth)
		balance = grown.Sub(params.AnnualWithdrawal)

		withdrawn := params.AnnualWithdrawal
		if balance.IsNegative() {
			// Only the available balance was actually paid out.
			if grown.IsPositive() {
				withdrawn = grown
			} else {
				withdrawn = decimal.Zero
			}
			balance = decimal.Zero
			if depletion == nil {
				p := period
				depletion = &p
			}
		}
		totalWithdrawn = totalWithdrawn.Add(withdrawn)
		balances = append(balances, domain.PeriodBalance{Period: period, Balance: balance})
	}

	last := balances[len(balances)-1].Balance
	prior := balances[len(balances)-2].Balance

	return &domain.ProjectionResult{
		Balances:        balances,
		DepletionPeriod: depletion,
		TotalWithdrawn:  totalWithdrawn,
		Sustainable:     last.GreaterThanOrEqual(prior),
	}
}
