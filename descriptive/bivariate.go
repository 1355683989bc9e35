package descriptive

import (
	"fmt"

	"github.com/riskplane/goanalytics"
)

// RegressionResult holds an ordinary least-squares fit of y against x.
type RegressionResult struct {
	Slope     float64
	Intercept float64
	R2        float64
}

// Covariance returns the population covariance of two aligned sequences.
// The sequences must have equal length; an empty pair yields 0.
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: covariance over %d and %d points", goanalytics.ErrLengthMismatch, len(x), len(y))
	}
	n := len(x)
	if n == 0 {
		return 0, nil
	}

	meanX := Mean(x)
	meanY := Mean(y)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}
	return sum / float64(n), nil
}

// Correlation returns the Pearson correlation coefficient of two aligned
// sequences. If either sequence has zero variance the coefficient is 0.
func Correlation(x, y []float64) (float64, error) {
	cov, err := Covariance(x, y)
	if err != nil {
		return 0, err
	}

	stdX := StdDev(x, false)
	stdY := StdDev(y, false)
	if stdX == 0 || stdY == 0 {
		return 0, nil
	}
	return cov / (stdX * stdY), nil
}

// LinearRegression fits y = intercept + slope*x by ordinary least squares
// and reports R-squared from the residual and total sums of squares. When
// the total variance of y is zero, R-squared is defined as 0. When x has
// zero variance the fit is the horizontal line through the mean of y.
func LinearRegression(x, y []float64) (*RegressionResult, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: regression over %d and %d points", goanalytics.ErrLengthMismatch, len(x), len(y))
	}
	n := len(x)
	if n == 0 {
		return &RegressionResult{}, nil
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}

	slope := 0.0
	if sxx != 0 {
		slope = sxy / sxx
	}
	intercept := meanY - slope*meanX

	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		fitted := intercept + slope*x[i]
		res := y[i] - fitted
		ssRes += res * res
		dy := y[i] - meanY
		ssTot += dy * dy
	}

	r2 := 0.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
		if r2 < 0 {
			r2 = 0
		}
	}

	return &RegressionResult{
		Slope:     slope,
		Intercept: intercept,
		R2:        r2,
	}, nil
}
