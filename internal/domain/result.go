package domain

import (
	"encoding/json"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodBalance is one point of a projection: the account balance at the
// end of a period. Period 0 is the starting balance.
type PeriodBalance struct {
	Period  int             `json:"period"`
	Balance decimal.Decimal `json:"balance"`
}

// ProjectionResult is the output of a single simulator run.
type ProjectionResult struct {
	// Balances has length horizon+1; index 0 is the starting balance.
	Balances []PeriodBalance `json:"balances"`

	// DepletionPeriod is the first period at which the balance reached
	// zero after having been positive, nil if the portfolio survived.
	DepletionPeriod *int `json:"depletionPeriod,omitempty"`

	// TotalWithdrawn accumulates the withdrawals actually taken.
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn"`

	// Sustainable is true when the balance did not decrease in the final
	// period relative to the prior period.
	Sustainable bool `json:"sustainable"`
}

// Depleted reports whether the portfolio ran out within the horizon.
func (r *ProjectionResult) Depleted() bool {
	return r.DepletionPeriod != nil
}

// FinalBalance returns the balance at the end of the horizon.
func (r *ProjectionResult) FinalBalance() decimal.Decimal {
	if len(r.Balances) == 0 {
		return decimal.Zero
	}
	return r.Balances[len(r.Balances)-1].Balance
}

// GoalStatus classifies a goal-date solve. Degenerate inputs map to a
// status, never to an error.
type GoalStatus string

const (
	GoalStatusOK             GoalStatus = "ok"
	GoalStatusComputing      GoalStatus = "computing"
	GoalStatusNeedSpending   GoalStatus = "need_spending"
	GoalStatusAlreadyReached GoalStatus = "already_reached"
	GoalStatusUnreachable    GoalStatus = "unreachable"
)

// GoalResult is the output of the goal-date solver.
type GoalResult struct {
	Status GoalStatus `json:"status"`

	// MonthsToGoal is +Inf for the computing, need-spending and
	// unreachable statuses.
	MonthsToGoal float64 `json:"monthsToGoal"`

	// TargetAmount is the resolved savings goal (spending x multiple).
	TargetAmount decimal.Decimal `json:"targetAmount"`

	// TargetDate is the first of the month the goal is reached, nil when
	// the goal is unreachable or inputs are incomplete.
	TargetDate *time.Time `json:"targetDate,omitempty"`

	// SavingsRatePercent is contribution over income, floored at zero
	// for display.
	SavingsRatePercent decimal.Decimal `json:"savingsRatePercent"`
}

// Reachable reports whether the solve produced a finite month count.
func (g GoalResult) Reachable() bool {
	return !math.IsInf(g.MonthsToGoal, 1)
}

// MarshalJSON emits a null month count when no finite answer exists,
// since JSON cannot represent +Inf.
func (g GoalResult) MarshalJSON() ([]byte, error) {
	type plain GoalResult
	out := struct {
		plain
		MonthsToGoal *float64 `json:"monthsToGoal"`
	}{plain: plain(g)}
	if !math.IsInf(g.MonthsToGoal, 0) && !math.IsNaN(g.MonthsToGoal) {
		out.MonthsToGoal = &g.MonthsToGoal
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the +Inf sentinel from a null month count.
func (g *GoalResult) UnmarshalJSON(data []byte) error {
	type plain GoalResult
	in := struct {
		*plain
		MonthsToGoal *float64 `json:"monthsToGoal"`
	}{plain: (*plain)(g)}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.MonthsToGoal != nil {
		g.MonthsToGoal = *in.MonthsToGoal
	} else {
		g.MonthsToGoal = math.Inf(1)
	}
	return nil
}

// RunOutcome is a single run inside a Monte Carlo batch.
type RunOutcome struct {
	RunID         int             `json:"runId"`
	EndingBalance decimal.Decimal `json:"endingBalance"`
	Depleted      bool            `json:"depleted"`
	// DepletionPeriod is horizon+1 for runs that survived, so percentile
	// math over the batch stays well defined.
	DepletionPeriod int             `json:"depletionPeriod"`
	TotalWithdrawn  decimal.Decimal `json:"totalWithdrawn"`
}

// PercentileRanges holds ending-balance percentiles across a batch.
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// MonteCarloResult aggregates many stochastic analyzer runs.
type MonteCarloResult struct {
	NumRuns             int              `json:"numRuns"`
	Horizon             int              `json:"horizon"`
	Seed                int64            `json:"seed"`
	SuccessRate         decimal.Decimal  `json:"successRate"`
	MedianEndingBalance decimal.Decimal  `json:"medianEndingBalance"`
	Percentiles         PercentileRanges `json:"percentiles"`
	MedianDepletion     int              `json:"medianDepletion"`
	Runs                []RunOutcome     `json:"runs,omitempty"`
}

// SweepPoint is one step of a withdrawal sensitivity sweep.
type SweepPoint struct {
	AnnualWithdrawal decimal.Decimal `json:"annualWithdrawal"`
	DepletionPeriod  *int            `json:"depletionPeriod,omitempty"`
	FinalBalance     decimal.Decimal `json:"finalBalance"`
	Sustainable      bool            `json:"sustainable"`
}
