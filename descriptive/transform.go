package descriptive

// ZScore returns how many population standard deviations x lies from the
// mean of the sequence. A zero standard deviation yields 0.
func ZScore(x float64, values []float64) float64 {
	return ZScoreFrom(x, Mean(values), StdDev(values, false))
}

// ZScoreFrom returns the z-score of x against a precomputed mean and
// standard deviation, for callers that already hold the moments. A zero
// standard deviation yields 0 rather than an infinity.
func ZScoreFrom(x, mean, stdDev float64) float64 {
	if stdDev == 0 {
		return 0
	}
	return (x - mean) / stdDev
}

// Normalize rescales the sequence into [0, 1] by min-max scaling. A
// zero-range sequence maps every element to the midpoint 0.5.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	min := Min(values)
	span := Max(values) - min
	if span == 0 {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range values {
		out[i] = (v - min) / span
	}
	return out
}

// Standardize rescales the sequence to mean 0 and population standard
// deviation 1. A zero-variance sequence maps every element to 0.
func Standardize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	mean := Mean(values)
	std := StdDev(values, false)
	if std == 0 {
		return out
	}
	for i, v := range values {
		out[i] = (v - mean) / std
	}
	return out
}
