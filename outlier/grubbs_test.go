package outlier

import (
	"math"
	"testing"

	"github.com/riskplane/goanalytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrubbsTestFlagsExtreme(t *testing.T) {
	data := []float64{10, 11, 10, 12, 11, 10, 100, 11, 10, 12}

	res, err := GrubbsTest(data, 0.05)
	require.NoError(t, err)
	assert.True(t, res.IsOutlier)
	assert.Equal(t, 6, res.Index)
	assert.Equal(t, 100.0, res.Value)
	assert.Greater(t, res.Statistic, res.CriticalValue)
}

func TestGrubbsTestCleanData(t *testing.T) {
	data := []float64{10, 11, 10, 12, 11, 10, 11, 12, 10, 11}

	res, err := GrubbsTest(data, 0.05)
	require.NoError(t, err)
	assert.False(t, res.IsOutlier)
}

func TestGrubbsTestDegenerate(t *testing.T) {
	res, err := GrubbsTest([]float64{1, 2}, 0.05)
	require.NoError(t, err)
	assert.False(t, res.IsOutlier)

	res, err = GrubbsTest([]float64{5, 5, 5, 5}, 0.05)
	require.NoError(t, err)
	assert.False(t, res.IsOutlier)
}

func TestGrubbsTestInvalidSignificance(t *testing.T) {
	_, err := GrubbsTest([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)

	_, err = GrubbsTest([]float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)
}

func TestDetectGrubbsDefeatsMasking(t *testing.T) {
	// 200 inflates the standard deviation enough to hide 100 from a
	// single pass; iterative removal must find both
	data := []float64{10, 11, 10, 100, 11, 10, 200, 11, 10, 12}

	out, err := DetectGrubbs(data, 0.05, 5)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 3, out[0].Index)
	assert.Equal(t, 100.0, out[0].Value)
	assert.Equal(t, 6, out[1].Index)
	assert.Equal(t, 200.0, out[1].Value)
	assert.Equal(t, DirectionHigh, out[0].Direction)
	assert.Equal(t, DirectionHigh, out[1].Direction)
}

func TestDetectGrubbsRespectsMaxIterations(t *testing.T) {
	data := []float64{10, 11, 10, 100, 11, 10, 200, 11, 10, 12}

	out, err := DetectGrubbs(data, 0.05, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 200.0, out[0].Value)
}

func TestDetectGrubbsInvalidIterations(t *testing.T) {
	_, err := DetectGrubbs([]float64{1, 2, 3}, 0.05, 0)
	assert.ErrorIs(t, err, goanalytics.ErrInvalidArgument)
}

func TestDetectGrubbsDoesNotMutateInput(t *testing.T) {
	data := []float64{10, 11, 10, 100, 11, 10, 200, 11, 10, 12}
	_, err := DetectGrubbs(data, 0.05, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 11, 10, 100, 11, 10, 200, 11, 10, 12}, data)
}

func TestStudentTQuantile(t *testing.T) {
	// textbook two-sided 95% critical values
	cases := []struct {
		p, df, want float64
	}{
		{0.975, 10, 2.228},
		{0.975, 5, 2.571},
		{0.95, 10, 1.812},
		{0.995, 8, 3.355},
	}
	for _, c := range cases {
		got := studentTQuantile(c.p, c.df)
		assert.InDelta(t, c.want, got, 5e-3, "p=%v df=%v", c.p, c.df)
	}

	// symmetry around the median
	assert.InDelta(t, 0.0, studentTQuantile(0.5, 7), 1e-12)
	assert.InDelta(t, -studentTQuantile(0.9, 7), studentTQuantile(0.1, 7), 1e-6)
}

func TestStudentTCDF(t *testing.T) {
	assert.InDelta(t, 0.5, studentTCDF(0, 9), 1e-9)
	assert.InDelta(t, 0.975, studentTCDF(2.228, 10), 1e-3)
	assert.True(t, math.Abs(studentTCDF(-2.228, 10)-0.025) < 1e-3)
}
