package timeseries

import (
	"testing"

	"github.com/riskplane/goanalytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTrendUp(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	trend := DetectTrend(data)

	assert.Equal(t, DirectionUp, trend.Direction)
	assert.Greater(t, trend.Slope, 0.0)
	assert.Greater(t, trend.Strength, 0.5)
}

func TestDetectTrendDown(t *testing.T) {
	data := []float64{10, 8, 6, 4, 2}
	trend := DetectTrend(data)

	assert.Equal(t, DirectionDown, trend.Direction)
	assert.Less(t, trend.Slope, 0.0)
}

func TestDetectTrendFlat(t *testing.T) {
	trend := DetectTrend([]float64{5, 5, 5, 5, 5})

	assert.Equal(t, DirectionFlat, trend.Direction)
	assert.Equal(t, 0.0, trend.Slope)
	assert.Equal(t, 0.0, trend.Strength)
}

func TestDetectTrendSmallSlopeIsFlat(t *testing.T) {
	// slope 0.005 sits inside the ±0.01 epsilon
	data := []float64{1.000, 1.005, 1.010, 1.015, 1.020}
	trend := DetectTrend(data)
	assert.Equal(t, DirectionFlat, trend.Direction)
}

func TestDetectTrendEmpty(t *testing.T) {
	trend := DetectTrend(nil)

	assert.Equal(t, DirectionFlat, trend.Direction)
	assert.Equal(t, 0.0, trend.Slope)
	assert.Equal(t, 0.0, trend.Strength)
}

func TestDetectTrendChanges(t *testing.T) {
	// ramp up to a peak at index 5, then back down
	data := []float64{0, 1, 2, 3, 4, 5, 4, 3, 2, 1, 0}

	changes, err := DetectTrendChanges(data, 3)
	require.NoError(t, err)
	require.NotEmpty(t, changes)

	// the reported reversal should sit near the peak
	assert.InDelta(t, 5, float64(changes[0]), 2)
}

func TestDetectTrendChangesMonotonic(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	changes, err := DetectTrendChanges(data, 3)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestDetectTrendChangesInvalidWindow(t *testing.T) {
	_, err := DetectTrendChanges([]float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)
}

func TestDetectTrendChangesShortInput(t *testing.T) {
	changes, err := DetectTrendChanges([]float64{1, 2}, 3)
	require.NoError(t, err)
	assert.Empty(t, changes)
}
