package descriptive

import (
	"fmt"
	"math"

	"github.com/riskplane/goanalytics"
)

// QuartileSet holds the three quartiles of a sequence.
type QuartileSet struct {
	Q1 float64
	Q2 float64
	Q3 float64
}

// Percentile returns the p-th percentile of the sequence using linear
// interpolation between the two bracketing order statistics (the R-7 method
// used by spreadsheets): index = p/100 * (n-1), interpolated between floor
// and ceil. p must lie in [0, 100]; an empty sequence yields 0.
func Percentile(values []float64, p float64) (float64, error) {
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("%w: percentile rank %v outside [0, 100]", goanalytics.ErrInvalidArgument, p)
	}
	return percentileSorted(sortedCopy(values), p), nil
}

// percentileSorted computes the R-7 percentile over an already-sorted slice.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p / 100 * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Quartiles returns Q1, Q2 (the median), and Q3 as the 25th, 50th, and 75th
// percentiles.
func Quartiles(values []float64) QuartileSet {
	sorted := sortedCopy(values)
	return QuartileSet{
		Q1: percentileSorted(sorted, 25),
		Q2: percentileSorted(sorted, 50),
		Q3: percentileSorted(sorted, 75),
	}
}

// IQR returns the interquartile range, Q3 minus Q1.
func IQR(values []float64) float64 {
	q := Quartiles(values)
	return q.Q3 - q.Q1
}
