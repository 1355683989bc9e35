package timeseries

import (
	"fmt"
	"math"

	"github.com/riskplane/goanalytics"
)

// intervalZ is the normal quantile used for the ~95% prediction interval.
const intervalZ = 1.96

// Forecast holds point forecasts with lower and upper prediction-interval
// bounds of the same length.
type Forecast struct {
	Forecast []float64
	Lower    []float64
	Upper    []float64
}

// ForecastLinear extrapolates an ordinary least-squares fit of the sequence
// against its index for horizon steps beyond the last observation. The
// interval is a constant-width band of ±1.96 residual standard errors, so a
// perfectly linear (or flat) input forecasts with a near-zero-width
// interval. An empty sequence forecasts zeros.
func ForecastLinear(data []float64, horizon int) (*Forecast, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("%w: forecast horizon must be positive, got %d", goanalytics.ErrInvalidArgument, horizon)
	}

	fc := &Forecast{
		Forecast: make([]float64, horizon),
		Lower:    make([]float64, horizon),
		Upper:    make([]float64, horizon),
	}
	n := len(data)
	if n == 0 {
		return fc, nil
	}

	fit := indexRegression(data)

	// Residual standard error with the two fitted parameters removed.
	se := 0.0
	if n > 2 {
		ssRes := 0.0
		for i, v := range data {
			res := v - (fit.Intercept + fit.Slope*float64(i))
			ssRes += res * res
		}
		se = math.Sqrt(ssRes / float64(n-2))
	}

	margin := intervalZ * se
	for h := 0; h < horizon; h++ {
		point := fit.Intercept + fit.Slope*float64(n+h)
		fc.Forecast[h] = point
		fc.Lower[h] = point - margin
		fc.Upper[h] = point + margin
	}
	return fc, nil
}

// ForecastSES forecasts with simple exponential smoothing: the final
// smoothed level is repeated for every step of the horizon (SES carries no
// trend component, so multi-step forecasts are flat by design). alpha must
// lie in (0, 1]. The interval width comes from the standard deviation of
// the one-step-ahead smoothing errors.
func ForecastSES(data []float64, horizon int, alpha float64) (*Forecast, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("%w: forecast horizon must be positive, got %d", goanalytics.ErrInvalidArgument, horizon)
	}
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: smoothing factor must be in (0, 1], got %v", goanalytics.ErrInvalidArgument, alpha)
	}

	fc := &Forecast{
		Forecast: make([]float64, horizon),
		Lower:    make([]float64, horizon),
		Upper:    make([]float64, horizon),
	}
	n := len(data)
	if n == 0 {
		return fc, nil
	}

	level := data[0]
	var sumSqErr float64
	for _, v := range data[1:] {
		err := v - level
		sumSqErr += err * err
		level += alpha * err
	}

	se := 0.0
	if n > 1 {
		se = math.Sqrt(sumSqErr / float64(n-1))
	}

	margin := intervalZ * se
	for h := 0; h < horizon; h++ {
		fc.Forecast[h] = level
		fc.Lower[h] = level - margin
		fc.Upper[h] = level + margin
	}
	return fc, nil
}
