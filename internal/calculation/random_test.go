package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalSourceDeterminism(t *testing.T) {
	a := NewNormalSource(42)
	b := NewNormalSource(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.standard(), b.standard(), "draw %d diverged", i)
	}
}

func TestNormalSourceStandardMoments(t *testing.T) {
	src := NewNormalSource(1)

	const n = 20000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		z := src.standard()
		sum += z
		sumSq += z * z
	}

	mean := sum / n
	variance := sumSq/n - mean*mean

	assert.InDelta(t, 0.0, mean, 0.05)
	assert.InDelta(t, 1.0, math.Sqrt(variance), 0.05)
}

func TestNormalSourceSampleScalesAndShifts(t *testing.T) {
	src := NewNormalSource(3)

	// Zero deviation collapses every draw to the mean.
	mean := decimal.NewFromFloat(0.07)
	for i := 0; i < 5; i++ {
		assert.True(t, src.Sample(mean, decimal.Zero).Equal(mean))
	}
}

func TestNormalSourceUnitCircleAcceptance(t *testing.T) {
	// Every draw must be finite; the rejection loop cannot emit values
	// from a degenerate pair.
	src := NewNormalSource(99)
	for i := 0; i < 1000; i++ {
		z := src.standard()
		assert.False(t, math.IsNaN(z))
		assert.False(t, math.IsInf(z, 0))
	}
}
