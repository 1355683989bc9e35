package timeseries

import (
	"testing"

	"github.com/riskplane/goanalytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROCConstantGrowth(t *testing.T) {
	out, err := ROC([]float64{100, 110, 121, 133.1}, 1)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, v := range out {
		assert.InDelta(t, 10.0, v, 1e-9)
	}
}

func TestROCZeroPrior(t *testing.T) {
	out, err := ROC([]float64{0, 5}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, out)
}

func TestROCInvalidPeriod(t *testing.T) {
	_, err := ROC([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)
}

func TestROCShortInput(t *testing.T) {
	out, err := ROC([]float64{100}, 2)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMomentum(t *testing.T) {
	out, err := Momentum([]float64{1, 4, 9, 16}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 12}, out)
}

func TestVelocityAcceleration(t *testing.T) {
	data := []float64{1, 4, 9, 16}

	assert.Equal(t, []float64{3, 5, 7}, Velocity(data))
	assert.Equal(t, []float64{2, 2}, Acceleration(data))
	assert.Empty(t, Velocity([]float64{7}))
	assert.Empty(t, Acceleration([]float64{7, 8}))
}

func TestPercentageDifference(t *testing.T) {
	assert.InDelta(t, 50.0, PercentageDifference(10, 15), 1e-12)
	assert.InDelta(t, -25.0, PercentageDifference(20, 15), 1e-12)
	assert.Equal(t, 0.0, PercentageDifference(0, 15))
}

func TestCumSum(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 6, 10}, CumSum([]float64{1, 2, 3, 4}))
	assert.Empty(t, CumSum(nil))
}

func TestCumProd(t *testing.T) {
	assert.Equal(t, []float64{2, 6, 24}, CumProd([]float64{2, 3, 4}))
}

func TestReturns(t *testing.T) {
	out := Returns([]float64{100, 110, 121})
	assert.InDeltaSlice(t, []float64{10, 10}, out, 1e-9)
	assert.Empty(t, Returns([]float64{}))
}
