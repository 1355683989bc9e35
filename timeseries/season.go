package timeseries

import (
	"fmt"

	"github.com/riskplane/goanalytics"
	"github.com/riskplane/goanalytics/descriptive"
)

// defaultSeasonThreshold is the autocorrelation significance level used by
// DetectSeasonality when the caller passes a non-positive threshold.
const defaultSeasonThreshold = 0.5

// Seasonality reports whether a dominant seasonal period was found.
type Seasonality struct {
	HasSeason bool
	Period    int
	Strength  float64 // autocorrelation at the detected period
}

// Autocorrelation returns the normalized autocorrelation coefficient of the
// sequence at the given lag. Lag 0 is 1 for any non-constant sequence; lags
// outside [0, n), or a zero-variance sequence, yield 0.
func Autocorrelation(data []float64, lag int) float64 {
	n := len(data)
	if lag < 0 || lag >= n {
		return 0
	}

	mean := descriptive.Mean(data)
	variance := 0.0
	for _, v := range data {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return 0
	}

	sum := 0.0
	for i := lag; i < n; i++ {
		sum += (data[i] - mean) * (data[i-lag] - mean)
	}
	return sum / variance
}

// AutocorrelationFunc sweeps lags 1..n/2 and returns the autocorrelation at
// each; index i of the result holds the coefficient at lag i+1.
func AutocorrelationFunc(data []float64) []float64 {
	maxLag := len(data) / 2
	out := make([]float64, 0, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		out = append(out, Autocorrelation(data, lag))
	}
	return out
}

// PACF returns the partial autocorrelation function for lags 0..maxLag
// using the Durbin-Levinson recursion. Lag 0 is always 1. A maxLag below 1
// or at least the sequence length is clamped; zero-variance input yields
// a nil slice.
func PACF(data []float64, maxLag int) []float64 {
	n := len(data)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		acf[k] = Autocorrelation(data, k)
	}
	if acf[0] == 0 {
		return nil
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1
	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}

	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}
		if den == 0 {
			pacf[k] = 0
			continue
		}
		phi[k][k] = num / den
		pacf[k] = phi[k][k]
		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}
	return pacf
}

// DetectSeasonality scans the autocorrelation function for the lag with the
// strongest coefficient at or above the threshold and reports it as the
// seasonal period. A non-positive threshold selects the default 0.5.
func DetectSeasonality(data []float64, threshold float64) *Seasonality {
	if threshold <= 0 {
		threshold = defaultSeasonThreshold
	}

	acf := AutocorrelationFunc(data)
	best := &Seasonality{}
	for i, r := range acf {
		lag := i + 1
		if lag < 2 {
			// lag 1 autocorrelation reflects smoothness, not a season
			continue
		}
		if r >= threshold && r > best.Strength {
			best.HasSeason = true
			best.Period = lag
			best.Strength = r
		}
	}
	return best
}

// Decomposition splits a sequence into additive trend, seasonal, and
// residual components of the same length as the input.
type Decomposition struct {
	Trend    []float64
	Seasonal []float64
	Residual []float64
	Period   int
}

// Decompose performs classical additive decomposition with the given
// seasonal period: a centered moving-average trend (partial windows at the
// edges, so no point is undefined), phase-averaged seasonal offsets
// normalized to sum to zero, and the residual remainder. The sequence must
// cover at least two full periods.
func Decompose(data []float64, period int) (*Decomposition, error) {
	if period < 2 {
		return nil, fmt.Errorf("%w: seasonal period must be at least 2, got %d", goanalytics.ErrInvalidArgument, period)
	}
	n := len(data)
	if n < 2*period {
		return nil, fmt.Errorf("%w: need at least 2 full periods (%d points), got %d", goanalytics.ErrInvalidArgument, 2*period, n)
	}

	// Centered moving-average trend; edge windows are clamped to the data.
	half := period / 2
	trend := make([]float64, n)
	for i := 0; i < n; i++ {
		lo := i - half
		hi := i + half
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += data[j]
		}
		trend[i] = sum / float64(hi-lo+1)
	}

	// Phase averages of the detrended series.
	phaseSum := make([]float64, period)
	phaseCount := make([]int, period)
	for i := 0; i < n; i++ {
		ph := i % period
		phaseSum[ph] += data[i] - trend[i]
		phaseCount[ph]++
	}
	pattern := make([]float64, period)
	patternMean := 0.0
	for ph := range pattern {
		if phaseCount[ph] > 0 {
			pattern[ph] = phaseSum[ph] / float64(phaseCount[ph])
		}
		patternMean += pattern[ph]
	}
	patternMean /= float64(period)
	for ph := range pattern {
		pattern[ph] -= patternMean
	}

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		seasonal[i] = pattern[i%period]
		residual[i] = data[i] - trend[i] - seasonal[i]
	}

	return &Decomposition{
		Trend:    trend,
		Seasonal: seasonal,
		Residual: residual,
		Period:   period,
	}, nil
}
