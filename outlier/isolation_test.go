package outlier

import (
	"testing"

	"github.com/riskplane/goanalytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolationScoreOrdersByExtremity(t *testing.T) {
	data := []float64{10, 11, 10, 12, 11, 10, 100, 11, 10, 12}

	extreme := IsolationScore(100, data)
	central := IsolationScore(11, data)

	assert.Greater(t, extreme, central)
	assert.Greater(t, extreme, 0.0)
	assert.LessOrEqual(t, extreme, 1.0)
}

func TestIsolationScoreRepeatedMajorityValue(t *testing.T) {
	// the duplicated majority value can never separate from its copies,
	// so it must score near 0 while the lone extreme still isolates
	data := []float64{5, 5, 5, 5, 5, 100}

	assert.Greater(t, IsolationScore(100, data), 0.6)
	assert.Less(t, IsolationScore(5, data), 0.05)

	out, err := DetectIsolation(data, 0.6)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Index)
	assert.Equal(t, 100.0, out[0].Value)
}

func TestIsolationScoreDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, IsolationScore(5, nil))
	assert.Equal(t, 0.0, IsolationScore(5, []float64{5}))
	assert.Equal(t, 0.0, IsolationScore(5, []float64{5, 5, 5}))
}

func TestDetectIsolation(t *testing.T) {
	data := []float64{10, 11, 10, 12, 11, 10, 100, 11, 10, 12}

	out, err := DetectIsolation(data, 0.6)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, 6, out[0].Index)
	assert.Equal(t, DirectionHigh, out[0].Direction)

	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i].Index, out[i-1].Index)
	}
}

func TestDetectIsolationThresholdValidation(t *testing.T) {
	_, err := DetectIsolation([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)

	_, err = DetectIsolation([]float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)
}

func TestDetectIsolationEmpty(t *testing.T) {
	out, err := DetectIsolation(nil, 0.6)
	require.NoError(t, err)
	assert.Empty(t, out)
}
