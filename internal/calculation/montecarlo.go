package calculation

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/firecalc/firecalc/internal/domain"
)

// MonteCarloConfig holds the batch settings for repeated stochastic runs.
type MonteCarloConfig struct {
	NumRuns int
	Seed    int64
	Params  domain.StochasticParameters

	// KeepRuns retains every per-run outcome in the result. Off by
	// default to keep large batches cheap to serialize.
	KeepRuns bool
}

// DefaultMonteCarloRuns is used when a batch size is not specified.
const DefaultMonteCarloRuns = 1000

// RunMonteCarlo executes the stochastic analyzer NumRuns times with
// per-run derived seeds and aggregates success rate and ending-balance
// percentiles. Runs are independent, so they fan out across goroutines.
func RunMonteCarlo(cfg MonteCarloConfig) *domain.MonteCarloResult {
	if cfg.NumRuns <= 0 {
		cfg.NumRuns = DefaultMonteCarloRuns
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Params.Normalize()
	cfg.Params.Scenario = domain.ScenarioStochastic

	outcomes := make([]domain.RunOutcome, cfg.NumRuns)

	var wg sync.WaitGroup
	sem := make(chan struct{}, 16)
	for i := 0; i < cfg.NumRuns; i++ {
		wg.Add(1)
		go func(runID int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			params := cfg.Params
			params.Seed = cfg.Seed + int64(runID)
			result := RunStochastic(params)

			depletion := params.Horizon + 1
			if result.DepletionPeriod != nil {
				depletion = *result.DepletionPeriod
			}
			outcomes[runID] = domain.RunOutcome{
				RunID:           runID,
				EndingBalance:   result.FinalBalance(),
				Depleted:        result.Depleted(),
				DepletionPeriod: depletion,
				TotalWithdrawn:  result.TotalWithdrawn,
			}
		}(i)
	}
	wg.Wait()

	successCount := 0
	balances := make([]decimal.Decimal, len(outcomes))
	depletions := make([]int, len(outcomes))
	for i, o := range outcomes {
		if !o.Depleted {
			successCount++
		}
		balances[i] = o.EndingBalance
		depletions[i] = o.DepletionPeriod
	}

	sort.Slice(balances, func(i, j int) bool { return balances[i].LessThan(balances[j]) })
	sort.Ints(depletions)

	result := &domain.MonteCarloResult{
		NumRuns: cfg.NumRuns,
		Horizon: cfg.Params.Horizon,
		Seed:    cfg.Seed,
		SuccessRate: decimal.NewFromInt(int64(successCount)).
			Div(decimal.NewFromInt(int64(cfg.NumRuns))),
		MedianEndingBalance: percentileOf(balances, 0.5),
		Percentiles: domain.PercentileRanges{
			P10: percentileOf(balances, 0.10),
			P25: percentileOf(balances, 0.25),
			P50: percentileOf(balances, 0.50),
			P75: percentileOf(balances, 0.75),
			P90: percentileOf(balances, 0.90),
		},
		MedianDepletion: depletions[len(depletions)/2],
	}
	if cfg.KeepRuns {
		result.Runs = outcomes
	}
	return result
}

// percentileOf interpolates linearly between the two nearest ranks of a
// sorted slice.
func percentileOf(sorted []decimal.Decimal, p float64) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	index := p * float64(len(sorted)-1)
	lo := int(index)
	if float64(lo) == index || lo+1 >= len(sorted) {
		return sorted[lo]
	}
	fraction := decimal.NewFromFloat(index - float64(lo))
	return sorted[lo].Add(sorted[lo+1].Sub(sorted[lo]).Mul(fraction))
}
