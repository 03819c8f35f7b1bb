package output

import (
	"github.com/firecalc/firecalc/internal/domain"
)

// ChartSeries is a projection reduced to float values for plotting,
// consumed by the TUI's ASCII chart.
type ChartSeries struct {
	Name   string
	Values []float64
}

// SeriesFromProjection extracts the balance path of a projection.
func SeriesFromProjection(name string, p *domain.ProjectionResult) ChartSeries {
	series := ChartSeries{Name: name, Values: make([]float64, 0, len(p.Balances))}
	for _, pb := range p.Balances {
		series.Values = append(series.Values, pb.Balance.InexactFloat64())
	}
	return series
}

// SeriesFromSweep extracts final balances across a withdrawal sweep.
func SeriesFromSweep(name string, points []domain.SweepPoint) ChartSeries {
	series := ChartSeries{Name: name, Values: make([]float64, 0, len(points))}
	for _, pt := range points {
		series.Values = append(series.Values, pt.FinalBalance.InexactFloat64())
	}
	return series
}
