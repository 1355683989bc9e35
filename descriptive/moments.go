package descriptive

// Skewness returns the population skewness, standardized by the population
// standard deviation. Fewer than three points, or zero variance, yields 0.
func Skewness(values []float64) float64 {
	n := len(values)
	if n < 3 {
		return 0
	}
	mean := Mean(values)
	std := StdDev(values, false)
	if std == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		z := (v - mean) / std
		sum += z * z * z
	}
	return sum / float64(n)
}

// Kurtosis returns the population excess kurtosis (the fourth standardized
// moment minus 3), so a normal distribution scores approximately 0. Fewer
// than four points, or zero variance, yields 0.
func Kurtosis(values []float64) float64 {
	n := len(values)
	if n < 4 {
		return 0
	}
	mean := Mean(values)
	std := StdDev(values, false)
	if std == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		z := (v - mean) / std
		sum += z * z * z * z
	}
	return sum/float64(n) - 3
}
