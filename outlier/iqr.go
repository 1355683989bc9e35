package outlier

import "github.com/riskplane/goanalytics/descriptive"

// defaultIQRMultiplier is the classic Tukey fence multiplier.
const defaultIQRMultiplier = 1.5

// DetectIQR flags values outside the Tukey fences [Q1-k*IQR, Q3+k*IQR].
// A non-positive k selects the default 1.5. A larger k widens the fences,
// so it never flags more points than a smaller one.
func DetectIQR(data []float64, k float64) []Result {
	if k <= 0 {
		k = defaultIQRMultiplier
	}

	out := []Result{}
	if len(data) == 0 {
		return out
	}

	q := descriptive.Quartiles(data)
	iqr := q.Q3 - q.Q1
	low := q.Q1 - k*iqr
	high := q.Q3 + k*iqr

	for i, v := range data {
		if v < low {
			out = append(out, Result{Index: i, Value: v, Direction: DirectionLow})
		} else if v > high {
			out = append(out, Result{Index: i, Value: v, Direction: DirectionHigh})
		}
	}
	return out
}
