package descriptive

// Stats is the full descriptive profile of a single sequence. Every field
// is 0 (and Mode empty) for an empty input; that is a defined outcome, not
// an error.
type Stats struct {
	Count    int
	Sum      float64
	Mean     float64
	Median   float64
	Mode     []float64
	Min      float64
	Max      float64
	Range    float64
	Variance float64
	StdDev   float64
	CV       float64
	Q1       float64
	Q2       float64
	Q3       float64
	IQR      float64
	Skewness float64
	Kurtosis float64
}

// Describe computes the full descriptive profile of the sequence in one
// call. Variance and StdDev are population statistics; Kurtosis is excess
// kurtosis. The input is not modified.
func Describe(values []float64) *Stats {
	sorted := sortedCopy(values)
	q1 := percentileSorted(sorted, 25)
	q2 := percentileSorted(sorted, 50)
	q3 := percentileSorted(sorted, 75)

	return &Stats{
		Count:    len(values),
		Sum:      Sum(values),
		Mean:     Mean(values),
		Median:   Median(values),
		Mode:     Mode(values),
		Min:      Min(values),
		Max:      Max(values),
		Range:    Range(values),
		Variance: Variance(values, false),
		StdDev:   StdDev(values, false),
		CV:       CoefficientOfVariation(values),
		Q1:       q1,
		Q2:       q2,
		Q3:       q3,
		IQR:      q3 - q1,
		Skewness: Skewness(values),
		Kurtosis: Kurtosis(values),
	}
}
