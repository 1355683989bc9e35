package outlier

import (
	"fmt"
	"math"

	"github.com/riskplane/goanalytics"
	"github.com/riskplane/goanalytics/descriptive"
)

// checkLocalParams validates the shared window/threshold parameters of the
// time-series-aware detectors.
func checkLocalParams(window int, threshold float64) error {
	if window < 2 {
		return fmt.Errorf("%w: window must be at least 2, got %d", goanalytics.ErrInvalidArgument, window)
	}
	if threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive, got %v", goanalytics.ErrInvalidArgument, threshold)
	}
	return nil
}

// DetectTimeSeriesAnomalies flags points whose deviation from the trailing
// rolling baseline — rather than the global distribution — exceeds
// threshold local standard deviations. Points before the first full window
// have no baseline and are never flagged; a flat baseline flags nothing.
func DetectTimeSeriesAnomalies(data []float64, window int, threshold float64) ([]Result, error) {
	if err := checkLocalParams(window, threshold); err != nil {
		return nil, err
	}

	out := []Result{}
	for i := window; i < len(data); i++ {
		baseline := data[i-window : i]
		mean := descriptive.Mean(baseline)
		std := descriptive.StdDev(baseline, false)
		if std == 0 {
			continue
		}
		if math.Abs(data[i]-mean)/std > threshold {
			out = append(out, Result{Index: i, Value: data[i], Direction: direction(data[i], mean)})
		}
	}
	return out, nil
}

// DetectSpikes flags transient single-point deviations: a point far from
// the average of its immediate neighbors, where the series reverts right
// after (the neighbors stay close to each other). Distance is measured in
// global population standard deviations against the threshold.
func DetectSpikes(data []float64, threshold float64) ([]Result, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: threshold must be positive, got %v", goanalytics.ErrInvalidArgument, threshold)
	}

	out := []Result{}
	std := descriptive.StdDev(data, false)
	if std == 0 {
		return out, nil
	}

	for i := 1; i < len(data)-1; i++ {
		local := (data[i-1] + data[i+1]) / 2
		dev := math.Abs(data[i] - local)
		if dev <= threshold*std {
			continue
		}
		// transient only: the neighbors must agree with each other,
		// otherwise this is a step rather than a spike
		if math.Abs(data[i+1]-data[i-1]) >= dev {
			continue
		}
		out = append(out, Result{Index: i, Value: data[i], Direction: direction(data[i], local)})
	}
	return out, nil
}

// DetectLevelShifts flags sustained step-changes in the local mean: the
// mean of the minRun points from an index onward differing from the mean of
// the window points before it by more than threshold baseline standard
// deviations, with every run point on the shifted side of the baseline.
// The persistence requirement separates a regime change from a transient
// spike, and anchors the reported index at the first point of the new
// level rather than a blended window that merely overlaps it.
func DetectLevelShifts(data []float64, window int, threshold float64, minRun int) ([]Result, error) {
	if err := checkLocalParams(window, threshold); err != nil {
		return nil, err
	}
	if minRun < 2 {
		return nil, fmt.Errorf("%w: min run must be at least 2, got %d", goanalytics.ErrInvalidArgument, minRun)
	}

	out := []Result{}
	i := window
	for i+minRun <= len(data) {
		before := data[i-window : i]
		after := data[i : i+minRun]
		beforeMean := descriptive.Mean(before)
		std := descriptive.StdDev(before, false)
		if std == 0 {
			// a flat baseline shifts on any sustained nonzero change
			std = 1e-9
		}

		afterMean := descriptive.Mean(after)
		shift := afterMean - beforeMean
		if math.Abs(shift)/std > threshold && sustained(after, beforeMean, shift) {
			out = append(out, Result{Index: i, Value: data[i], Direction: direction(afterMean, beforeMean)})
			// skip past the new level so one shift is reported once
			i += minRun
			continue
		}
		i++
	}
	return out, nil
}

// sustained reports whether every run point sits on the same side of the
// baseline as the shift. A run straddling the baseline is a transient, not
// a new level.
func sustained(run []float64, baseline, shift float64) bool {
	for _, v := range run {
		if shift > 0 && v <= baseline {
			return false
		}
		if shift < 0 && v >= baseline {
			return false
		}
	}
	return shift != 0
}

// DetectContextualAnomalies evaluates each point against a centered local
// window (excluding the point itself) instead of the global distribution,
// so a globally unremarkable value inside a quiet local segment is still
// flagged. windowSize is the number of neighbors considered on each side's
// half of the window.
func DetectContextualAnomalies(data []float64, windowSize int, threshold float64) ([]Result, error) {
	if err := checkLocalParams(windowSize, threshold); err != nil {
		return nil, err
	}

	out := []Result{}
	half := windowSize / 2
	if half < 1 {
		half = 1
	}
	for i := range data {
		lo := i - half
		hi := i + half
		if lo < 0 {
			lo = 0
		}
		if hi > len(data)-1 {
			hi = len(data) - 1
		}

		neighbors := make([]float64, 0, hi-lo)
		for j := lo; j <= hi; j++ {
			if j != i {
				neighbors = append(neighbors, data[j])
			}
		}
		if len(neighbors) < 2 {
			continue
		}

		mean := descriptive.Mean(neighbors)
		std := descriptive.StdDev(neighbors, false)
		if std == 0 {
			continue
		}
		if math.Abs(data[i]-mean)/std > threshold {
			out = append(out, Result{Index: i, Value: data[i], Direction: direction(data[i], mean)})
		}
	}
	return out, nil
}
