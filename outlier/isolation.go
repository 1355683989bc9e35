package outlier

import (
	"fmt"
	"math"

	"github.com/riskplane/goanalytics"
	"github.com/riskplane/goanalytics/descriptive"
)

// eulerMascheroni is used by the average-path-length normalizer.
const eulerMascheroni = 0.5772156649015329

// isolationMaxDepth caps the midpoint-partition recursion.
const isolationMaxDepth = 64

// IsolationScore scores how easily the value separates from the rest of the
// population: the range containing the value is repeatedly halved at its
// midpoint, descending into the half that holds the value, until the value
// sits alone. Duplicates of the value count as population, so a repeated
// majority value never isolates and scores near 0. The partition depth is
// normalized like an isolation-forest path length into (0, 1); higher
// scores are more anomalous. Fewer than two points score 0.
func IsolationScore(value float64, data []float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}

	lo := math.Min(descriptive.Min(data), value)
	hi := math.Max(descriptive.Max(data), value)
	if lo == hi {
		// nothing distinguishes the value from the population
		return 0
	}

	depth := 0
	for depth < isolationMaxDepth {
		// neighbors in the interval, excluding one slot for the
		// candidate itself
		inside := 0
		seenSelf := false
		for _, v := range data {
			if v < lo || v > hi {
				continue
			}
			if v == value && !seenSelf {
				seenSelf = true
				continue
			}
			inside++
		}
		if inside == 0 {
			break
		}
		mid := (lo + hi) / 2
		if value <= mid {
			hi = mid
		} else {
			lo = mid
		}
		depth++
	}

	// c(n): average search depth in a binary tree over n points.
	nf := float64(n)
	c := 2*(math.Log(nf-1)+eulerMascheroni) - 2*(nf-1)/nf
	if c <= 0 {
		c = 1
	}
	return math.Pow(2, -float64(depth)/c)
}

// DetectIsolation flags values whose isolation score exceeds the threshold
// (0..1 scale; around 0.6 is a common operating point). Direction is
// relative to the median.
func DetectIsolation(data []float64, threshold float64) ([]Result, error) {
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("%w: isolation threshold must be in (0, 1), got %v", goanalytics.ErrInvalidArgument, threshold)
	}

	out := []Result{}
	if len(data) == 0 {
		return out, nil
	}

	med := descriptive.Median(data)
	for i, v := range data {
		if IsolationScore(v, data) > threshold {
			out = append(out, Result{Index: i, Value: v, Direction: direction(v, med)})
		}
	}
	return out, nil
}
