package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/firecalc/firecalc/internal/domain"
)

// stressReturns is the scripted sequence-of-returns stress scenario:
// three bad opening years, then the mean return. The values are a fixed
// narrative, not configuration.
var stressReturns = [...]decimal.Decimal{
	decimal.NewFromFloat(-0.15),
	decimal.NewFromFloat(-0.10),
	decimal.NewFromFloat(-0.05),
}

// RunStochastic simulates an inflation-escalating withdrawal against
// per-period returns chosen by the scenario selector: the fixed mean, the
// scripted stress pattern, or Gaussian samples from a seeded generator.
//
// Each period withdraws first (clamped to the available balance), grows
// the remainder by the period's return, floors at zero, and escalates the
// next period's nominal withdrawal by the inflation rate. The first
// period that could not cover the full withdrawal is recorded as the
// depletion period.
func RunStochastic(params domain.StochasticParameters) *domain.ProjectionResult {
	params.Normalize()

	var normal *NormalSource
	if params.Scenario == domain.ScenarioStochastic {
		normal = NewNormalSource(params.Seed)
	}

	one := decimal.NewFromInt(1)
	inflationFactor := one.Add(params.InflationRate)
	withdrawal := params.Withdrawal.Resolve(params.PresentValue)

	balance := params.PresentValue
	balances := make([]domain.PeriodBalance, 0, params.Horizon+1)
	balances = append(balances, domain.PeriodBalance{Period: 0, Balance: balance})

	var depletion *int
	totalWithdrawn := decimal.Zero

	for period := 1; period <= params.Horizon; period++ {
		taken := withdrawal
		if taken.GreaterThan(balance) {
			taken = balance
			if depletion == nil {
				p := period
				depletion = &p
			}
		}
		balance = balance.Sub(taken)
		totalWithdrawn = totalWithdrawn.Add(taken)

		r := periodReturn(params, period, normal)
		balance = balance.Mul(one.Add(r))
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		balances = append(balances, domain.PeriodBalance{Period: period, Balance: balance})
		withdrawal = withdrawal.Mul(inflationFactor)
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

// periodReturn picks the return for one period according to the scenario
// selector. period is 1-based.
func periodReturn(params domain.StochasticParameters, period int, normal *NormalSource) decimal.Decimal {
	switch params.Scenario {
	case domain.ScenarioStressed:
		if period <= len(stressReturns) {
			return stressReturns[period-1]
		}
		return params.MeanReturn
	case domain.ScenarioStochastic:
		return normal.Sample(params.MeanReturn, params.StdDev)
	default:
		return params.MeanReturn
	}
}
