package timeseries

import (
	"math"
	"testing"

	"github.com/riskplane/goanalytics"
	"github.com/riskplane/goanalytics/descriptive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHPFilterLinearSeries(t *testing.T) {
	// a perfectly linear series is its own trend: zero fit error and zero
	// second differences
	data := make([]float64, 20)
	for i := range data {
		data[i] = 2 + 3*float64(i)
	}

	trend, cycle, err := HPFilter(data, 1600)
	require.NoError(t, err)
	require.Len(t, trend, len(data))
	require.Len(t, cycle, len(data))

	for i := range data {
		assert.InDelta(t, data[i], trend[i], 1e-6)
		assert.InDelta(t, 0.0, cycle[i], 1e-6)
	}
}

func TestHPFilterSmoothsNoise(t *testing.T) {
	data := make([]float64, 40)
	for i := range data {
		noise := 5 * math.Sin(float64(i)*2.1)
		data[i] = float64(i) + noise
	}

	trend, cycle, err := HPFilter(data, 1600)
	require.NoError(t, err)

	// the extracted trend varies less than the raw series, and
	// trend + cycle reconstructs the input exactly
	assert.Less(t, descriptive.StdDev(Velocity(trend), false), descriptive.StdDev(Velocity(data), false))
	for i := range data {
		assert.InDelta(t, data[i], trend[i]+cycle[i], 1e-9)
	}
}

func TestHPFilterDegenerate(t *testing.T) {
	trend, cycle, err := HPFilter([]float64{}, 1600)
	require.NoError(t, err)
	assert.Empty(t, trend)
	assert.Empty(t, cycle)

	trend, cycle, err = HPFilter([]float64{4, 7}, 1600)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 7}, trend)
	assert.Equal(t, []float64{0, 0}, cycle)
}

func TestHPFilterInvalidLambda(t *testing.T) {
	_, _, err := HPFilter([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)
}

func TestSavitzkyGolayReproducesPolynomial(t *testing.T) {
	// a quadratic is reproduced exactly by a second-order fit
	data := make([]float64, 15)
	for i := range data {
		x := float64(i)
		data[i] = 1 + 2*x + 0.5*x*x
	}

	out, err := SavitzkyGolay(data, 5, 2)
	require.NoError(t, err)
	require.Len(t, out, len(data))
	for i := range data {
		assert.InDelta(t, data[i], out[i], 1e-8)
	}
}

func TestSavitzkyGolayReducesNoise(t *testing.T) {
	data := make([]float64, 60)
	for i := range data {
		data[i] = float64(i) + 3*math.Sin(float64(i)*1.7)
	}

	out, err := SavitzkyGolay(data, 7, 2)
	require.NoError(t, err)
	require.Len(t, out, len(data))

	residRaw := 0.0
	residSmooth := 0.0
	for i := range data {
		residRaw += math.Abs(data[i] - float64(i))
		residSmooth += math.Abs(out[i] - float64(i))
	}
	assert.Less(t, residSmooth, residRaw)
}

func TestSavitzkyGolayInvalidParams(t *testing.T) {
	_, err := SavitzkyGolay([]float64{1, 2, 3}, 4, 2) // even window
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)

	_, err = SavitzkyGolay([]float64{1, 2, 3}, 5, 5) // order >= window
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)

	_, err = SavitzkyGolay([]float64{1, 2, 3}, 5, 0)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)
}

func TestRollingVolatility(t *testing.T) {
	out, err := RollingVolatility([]float64{1, 1, 1, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, out)

	out, err = RollingVolatility([]float64{2, 4, 2, 4, 2}, 2)
	require.NoError(t, err)
	require.Len(t, out, 4)
	for _, v := range out {
		assert.InDelta(t, 1.0, v, 1e-12)
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestRollingVolatilityEmpty(t *testing.T) {
	out, err := RollingVolatility(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRollingVolatilityInvalidWindow(t *testing.T) {
	_, err := RollingVolatility([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)
}
