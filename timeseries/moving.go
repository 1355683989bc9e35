package timeseries

import (
	"fmt"

	"github.com/riskplane/goanalytics"
)

// checkWindow validates a trailing window size and clamps it to the series
// length, so a window of at least n yields a single aggregated point.
func checkWindow(n, window int) (int, error) {
	if window < 1 {
		return 0, fmt.Errorf("%w: window must be positive, got %d", goanalytics.ErrInvalidArgument, window)
	}
	if window > n {
		window = n
	}
	return window, nil
}

// SMA returns the simple moving average: each output point is the
// arithmetic mean of the trailing window ending at that position. The
// output has n-window+1 points; window=1 returns the input unchanged.
func SMA(data []float64, window int) ([]float64, error) {
	if len(data) == 0 {
		if _, err := checkWindow(1, window); err != nil {
			return nil, err
		}
		return []float64{}, nil
	}
	window, err := checkWindow(len(data), window)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(data)-window+1)
	sum := 0.0
	for i, v := range data {
		sum += v
		if i >= window {
			sum -= data[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out, nil
}

// WMA returns the linearly weighted moving average: within each trailing
// window the oldest point has weight 1 and the newest weight equal to the
// window size, normalized by the sum of weights.
func WMA(data []float64, window int) ([]float64, error) {
	if len(data) == 0 {
		if _, err := checkWindow(1, window); err != nil {
			return nil, err
		}
		return []float64{}, nil
	}
	window, err := checkWindow(len(data), window)
	if err != nil {
		return nil, err
	}

	weightSum := float64(window*(window+1)) / 2
	out := make([]float64, 0, len(data)-window+1)
	for i := window - 1; i < len(data); i++ {
		acc := 0.0
		for j := 0; j < window; j++ {
			acc += data[i-window+1+j] * float64(j+1)
		}
		out = append(out, acc/weightSum)
	}
	return out, nil
}

// EMA returns the exponential moving average with smoothing factor
// alpha = 2/(window+1). The first output value seeds from the simple
// average of the first window points, so the output has n-window+1 points.
func EMA(data []float64, window int) ([]float64, error) {
	if len(data) == 0 {
		if _, err := checkWindow(1, window); err != nil {
			return nil, err
		}
		return []float64{}, nil
	}
	window, err := checkWindow(len(data), window)
	if err != nil {
		return nil, err
	}

	alpha := 2 / float64(window+1)

	seed := 0.0
	for _, v := range data[:window] {
		seed += v
	}
	seed /= float64(window)

	out := make([]float64, 0, len(data)-window+1)
	out = append(out, seed)
	ema := seed
	for _, v := range data[window:] {
		ema = alpha*v + (1-alpha)*ema
		out = append(out, ema)
	}
	return out, nil
}

// DEMA returns the double exponential moving average, 2*EMA - EMA(EMA),
// which tracks turning points with less lag than a plain EMA. Each EMA pass
// shortens the output by window-1 points.
func DEMA(data []float64, window int) ([]float64, error) {
	ema1, err := EMA(data, window)
	if err != nil {
		return nil, err
	}
	ema2, err := EMA(ema1, window)
	if err != nil {
		return nil, err
	}

	offset := len(ema1) - len(ema2)
	out := make([]float64, len(ema2))
	for i := range ema2 {
		out[i] = 2*ema1[i+offset] - ema2[i]
	}
	return out, nil
}

// TEMA returns the triple exponential moving average,
// 3*EMA - 3*EMA(EMA) + EMA(EMA(EMA)), the triple analogue of DEMA.
func TEMA(data []float64, window int) ([]float64, error) {
	ema1, err := EMA(data, window)
	if err != nil {
		return nil, err
	}
	ema2, err := EMA(ema1, window)
	if err != nil {
		return nil, err
	}
	ema3, err := EMA(ema2, window)
	if err != nil {
		return nil, err
	}

	off1 := len(ema1) - len(ema3)
	off2 := len(ema2) - len(ema3)
	out := make([]float64, len(ema3))
	for i := range ema3 {
		out[i] = 3*ema1[i+off1] - 3*ema2[i+off2] + ema3[i]
	}
	return out, nil
}
