package timeseries

import (
	"fmt"
	"math"

	"github.com/riskplane/goanalytics"
	"github.com/riskplane/goanalytics/descriptive"
)

// Direction labels the sign of a detected trend.
type Direction string

// Trend directions.
const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// flatSlopeEpsilon is the slope magnitude below which a fitted trend is
// reported as flat.
const flatSlopeEpsilon = 0.01

// Trend describes the linear trend of a sequence: the OLS slope of value
// against index, a direction, and an R²-derived strength in [0, 1].
type Trend struct {
	Direction Direction
	Slope     float64
	Strength  float64
}

// DetectTrend fits an ordinary least-squares regression of value against
// index. Slopes within ±0.01 are reported as flat; otherwise the direction
// follows the slope sign. An empty sequence is flat with zero slope and
// strength.
func DetectTrend(data []float64) *Trend {
	if len(data) == 0 {
		return &Trend{Direction: DirectionFlat}
	}

	fit := indexRegression(data)

	dir := DirectionFlat
	if math.Abs(fit.Slope) >= flatSlopeEpsilon {
		if fit.Slope > 0 {
			dir = DirectionUp
		} else {
			dir = DirectionDown
		}
	}

	strength := fit.R2
	if strength < 0 {
		strength = 0
	} else if strength > 1 {
		strength = 1
	}

	return &Trend{
		Direction: dir,
		Slope:     fit.Slope,
		Strength:  strength,
	}
}

// DetectTrendChanges scans overlapping windows of the given size, fits a
// local slope per window, and reports the indices where the slope sign
// reverses with both magnitudes above the flat threshold — the reversal
// points such as peaks and troughs. Each reported index is the center of
// the window in which the reversal was observed.
func DetectTrendChanges(data []float64, window int) ([]int, error) {
	if window < 2 {
		return nil, fmt.Errorf("%w: trend window must be at least 2, got %d", goanalytics.ErrInvalidArgument, window)
	}
	if len(data) < window+1 {
		return []int{}, nil
	}

	slopes := make([]float64, 0, len(data)-window+1)
	for i := 0; i+window <= len(data); i++ {
		slopes = append(slopes, indexRegression(data[i:i+window]).Slope)
	}

	changes := []int{}
	havePrev := false
	prev := 0.0
	for i, cur := range slopes {
		if math.Abs(cur) < flatSlopeEpsilon {
			// flat windows (a peak or plateau) do not reset the direction
			continue
		}
		if havePrev && (prev > 0) != (cur > 0) {
			changes = append(changes, i+window/2)
		}
		prev = cur
		havePrev = true
	}
	return changes, nil
}

// indexRegression fits the sequence against its indices 0..n-1. The index
// axis always has positive variance for n>1, so the error path of
// LinearRegression cannot trigger here.
func indexRegression(data []float64) *descriptive.RegressionResult {
	x := make([]float64, len(data))
	for i := range x {
		x[i] = float64(i)
	}
	fit, _ := descriptive.LinearRegression(x, data)
	return fit
}
