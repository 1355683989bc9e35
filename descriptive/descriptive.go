package descriptive

import (
	"math"
	"sort"
)

// Sum returns the sum of the sequence. An empty sequence sums to 0.
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean, or 0 for an empty sequence.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Min returns the smallest value, or 0 for an empty sequence.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value, or 0 for an empty sequence.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Range returns Max minus Min, or 0 for an empty sequence.
func Range(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Max(values) - Min(values)
}

// Median returns the middle value of the sorted sequence; for an even count
// it averages the two middle values. The input is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := sortedCopy(values)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Mode returns every value tied for the highest frequency, sorted ascending.
// A multi-modal sequence is a valid outcome, not an error; an empty sequence
// yields an empty slice.
func Mode(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	freq := make(map[float64]int, len(values))
	maxCount := 0
	for _, v := range values {
		freq[v]++
		if freq[v] > maxCount {
			maxCount = freq[v]
		}
	}

	modes := make([]float64, 0, 1)
	for v, c := range freq {
		if c == maxCount {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)
	return modes
}

// Variance returns the variance of the sequence. With sample set, the
// divisor is n-1; otherwise it is n (population variance). Sequences with
// fewer than two points have zero variance regardless of the flag.
func Variance(values []float64, sample bool) float64 {
	n := len(values)
	if n <= 1 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	if sample {
		return sumSq / float64(n-1)
	}
	return sumSq / float64(n)
}

// StdDev returns the standard deviation, the square root of Variance.
func StdDev(values []float64, sample bool) float64 {
	return math.Sqrt(Variance(values, sample))
}

// CoefficientOfVariation returns the population standard deviation divided
// by the mean, a dimensionless spread measure. A zero mean yields 0.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return StdDev(values, false) / mean
}

// sortedCopy returns the values sorted ascending without touching the
// caller's slice.
func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
