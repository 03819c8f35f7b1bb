package calculation

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/firecalc/firecalc/internal/domain"
	"github.com/firecalc/firecalc/pkg/dateutil"
)

// SolveGoal computes how many months of saving are needed before the
// portfolio covers the target multiple of annual spending. Degenerate
// inputs resolve to a status, never an error, and the month count is
// +Inf whenever no finite answer exists.
//
// The compound case is the closed-form annuity solution
//
//	months = ln((goal + c/i) / (pv + c/i)) / ln(1+i)
//
// with i the effective monthly rate equivalent to the annual growth rate.
func SolveGoal(in domain.GoalInputs, now time.Time) domain.GoalResult {
	result := domain.GoalResult{
		Status:             domain.GoalStatusOK,
		MonthsToGoal:       math.Inf(1),
		SavingsRatePercent: savingsRate(in),
	}

	if in.IsEmpty() {
		result.Status = domain.GoalStatusComputing
		return result
	}

	if in.AnnualSpending.LessThanOrEqual(decimal.Zero) {
		result.Status = domain.GoalStatusNeedSpending
		return result
	}

	target := in.TargetAmount()
	result.TargetAmount = target

	if in.PresentValue.GreaterThanOrEqual(target) {
		result.Status = domain.GoalStatusAlreadyReached
		result.MonthsToGoal = 0
		reached := dateutil.StartOfMonth(now)
		result.TargetDate = &reached
		return result
	}

	pv := in.PresentValue.InexactFloat64()
	goal := target.InexactFloat64()
	contribution := in.MonthlyContribution().InexactFloat64()
	annualRate := in.AnnualGrowthRate.InexactFloat64()

	// Effective monthly rate equivalent to the stated annual rate.
	monthlyRate := math.Pow(1+annualRate, 1.0/12.0) - 1

	var months float64
	if monthlyRate <= 0 {
		if contribution <= 0 {
			result.Status = domain.GoalStatusUnreachable
			return result
		}
		months = (goal - pv) / contribution
	} else {
		adj := contribution / monthlyRate
		num := goal + adj
		den := pv + adj
		if num <= 0 || den <= 0 {
			result.Status = domain.GoalStatusUnreachable
			return result
		}
		months = math.Log(num/den) / math.Log(1+monthlyRate)
		if months < 0 {
			months = 0
		}
	}

	result.MonthsToGoal = months
	date := dateutil.StartOfMonth(dateutil.AddMonths(now, int(math.Ceil(months))))
	result.TargetDate = &date
	return result
}

// savingsRate derives the contribution-over-income percentage, floored
// at zero for display. Zero income yields zero rather than a division
// failure.
func savingsRate(in domain.GoalInputs) decimal.Decimal {
	if in.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := in.MonthlyContribution().
		Div(in.MonthlyIncome).
		Mul(decimal.NewFromInt(100))
	if rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}
