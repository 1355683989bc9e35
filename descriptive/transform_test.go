package descriptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZScore(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9} // mean 5, population std 2

	assert.InDelta(t, 2.0, ZScore(9, values), 1e-12)
	assert.InDelta(t, -1.5, ZScore(2, values), 1e-12)
	assert.InDelta(t, 1.5, ZScoreFrom(8, 5, 2), 1e-12)
}

func TestZScoreZeroStdDev(t *testing.T) {
	assert.Equal(t, 0.0, ZScore(10, []float64{5, 5, 5}))
	assert.Equal(t, 0.0, ZScoreFrom(10, 5, 0))
}

func TestNormalize(t *testing.T) {
	out := Normalize([]float64{2, 4, 6})
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, out, 1e-12)
}

func TestNormalizeZeroRange(t *testing.T) {
	// midpoint convention avoids NaN
	out := Normalize([]float64{3, 3, 3})
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, out)
}

func TestStandardizeRoundTrip(t *testing.T) {
	values := []float64{12, 3, 7, 9, 1, 15, 8, 4, 11, 2}
	out := Standardize(values)

	assert.InDelta(t, 0.0, Mean(out), 1e-9)
	assert.InDelta(t, 1.0, StdDev(out, false), 1e-9)
	// input untouched
	assert.Equal(t, []float64{12, 3, 7, 9, 1, 15, 8, 4, 11, 2}, values)
}

func TestStandardizeZeroVariance(t *testing.T) {
	out := Standardize([]float64{4, 4, 4})
	assert.Equal(t, []float64{0, 0, 0}, out)
}

func TestTransformEmpty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Standardize(nil))
}
