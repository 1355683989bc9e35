package outlier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectIQR(t *testing.T) {
	data := []float64{10, 11, 10, 12, 11, 10, 100, 11, 10, 12}

	out := DetectIQR(data, 1.5)
	require.Len(t, out, 1)
	assert.Equal(t, 6, out[0].Index)
	assert.Equal(t, DirectionHigh, out[0].Direction)
}

func TestDetectIQRBothSides(t *testing.T) {
	data := []float64{-90, 10, 11, 10, 12, 11, 10, 11, 10, 95}

	out := DetectIQR(data, 1.5)
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].Index)
	assert.Equal(t, DirectionLow, out[0].Direction)
	assert.Equal(t, 9, out[1].Index)
	assert.Equal(t, DirectionHigh, out[1].Direction)
}

func TestDetectIQRDefaultMultiplier(t *testing.T) {
	data := []float64{10, 11, 10, 12, 11, 10, 100, 11, 10, 12}
	assert.Equal(t, DetectIQR(data, 1.5), DetectIQR(data, 0))
}

func TestDetectIQRMultiplierMonotonicity(t *testing.T) {
	data := []float64{1, 14, 3, 50, 7, 2, 90, 5, 4, 160, 6, 8, 2, 30, 9}

	multipliers := []float64{0.5, 1.0, 1.5, 2.0, 3.0, 5.0}
	prev := len(DetectIQR(data, multipliers[0]))
	for _, k := range multipliers[1:] {
		cur := len(DetectIQR(data, k))
		assert.LessOrEqual(t, cur, prev, "k=%v flagged more than a smaller multiplier", k)
		prev = cur
	}
}

func TestDetectIQREmpty(t *testing.T) {
	assert.Empty(t, DetectIQR(nil, 1.5))
}
