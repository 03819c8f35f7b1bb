package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/firecalc/firecalc/internal/domain"
)

// SweepWithdrawals re-runs the steady-withdrawal simulator over a grid of
// annual withdrawal amounts from min to max inclusive and reports the
// depletion behavior at each step. A non-positive step yields a single
// point at min.
func SweepWithdrawals(base domain.DrawdownParameters, min, max, step decimal.Decimal) []domain.SweepPoint {
	if step.LessThanOrEqual(decimal.Zero) {
		max = min
		step = decimal.NewFromInt(1)
	}

	var points []domain.SweepPoint
	for w := min; w.LessThanOrEqual(max); w = w.Add(step) {
		params := base
		params.AnnualWithdrawal = w
		result := RunDrawdown(params)
		points = append(points, domain.SweepPoint{
			AnnualWithdrawal: w,
			DepletionPeriod:  result.DepletionPeriod,
			FinalBalance:     result.FinalBalance(),
			Sustainable:      result.Sustainable,
		})
	}
	return points
}
