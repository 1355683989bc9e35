package timeseries

import "github.com/riskplane/goanalytics/descriptive"

// RollingVolatility returns the trailing-window population standard
// deviation series. Each output point covers the window ending at that
// position, so the output has n-window+1 points and every value is >= 0.
func RollingVolatility(data []float64, window int) ([]float64, error) {
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
	for i := window - 1; i < len(data); i++ {
		out = append(out, descriptive.StdDev(data[i-window+1:i+1], false))
	}
	return out, nil
}
