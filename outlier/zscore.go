package outlier

import (
	"math"

	"github.com/riskplane/goanalytics/descriptive"
)

// madScale makes the MAD comparable to the standard deviation under
// normality.
const madScale = 0.6745

// DetectZScore flags every value whose population z-score magnitude exceeds
// the threshold. The threshold is caller-chosen sensitivity (2 and 3 are
// the common choices); zero variance flags nothing.
func DetectZScore(data []float64, threshold float64) []Result {
	out := []Result{}
	mean := descriptive.Mean(data)
	std := descriptive.StdDev(data, false)
	if std == 0 {
		return out
	}

	for i, v := range data {
		z := (v - mean) / std
		if math.Abs(z) > threshold {
			out = append(out, Result{Index: i, Value: v, Direction: direction(v, mean)})
		}
	}
	return out
}

// MAD returns the median absolute deviation: the median of the absolute
// deviations from the median. An empty sequence yields 0.
func MAD(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	med := descriptive.Median(values)
	devs := make([]float64, len(values))
	for i, v := range values {
		devs[i] = math.Abs(v - med)
	}
	return descriptive.Median(devs)
}

// DetectModifiedZScore flags values by the robust modified z-score,
// 0.6745*(x-median)/MAD, which resists the variance inflation that lets
// extreme points hide from the plain z-score. Zero MAD flags nothing
// (the score is defined as 0 rather than an infinity).
func DetectModifiedZScore(data []float64, threshold float64) []Result {
	out := []Result{}
	med := descriptive.Median(data)
	mad := MAD(data)
	if mad == 0 {
		return out
	}

	for i, v := range data {
		mz := madScale * (v - med) / mad
		if math.Abs(mz) > threshold {
			out = append(out, Result{Index: i, Value: v, Direction: direction(v, med)})
		}
	}
	return out
}
