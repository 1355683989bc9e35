package timeseries

import (
	"fmt"

	"github.com/riskplane/goanalytics"
)

// ROC returns the percentage change of each point versus the value n steps
// earlier: ((current-prior)/prior)*100. The output has len(data)-n points.
// A zero prior value contributes 0 rather than an infinity.
func ROC(data []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: roc period must be positive, got %d", goanalytics.ErrInvalidArgument, n)
	}
	if len(data) <= n {
		return []float64{}, nil
	}

	out := make([]float64, 0, len(data)-n)
	for i := n; i < len(data); i++ {
		prior := data[i-n]
		if prior == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (data[i]-prior)/prior*100)
	}
	return out, nil
}

// Momentum returns the raw difference of each point versus the value n
// steps earlier (ROC without the percentage scaling).
func Momentum(data []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: momentum period must be positive, got %d", goanalytics.ErrInvalidArgument, n)
	}
	if len(data) <= n {
		return []float64{}, nil
	}

	out := make([]float64, 0, len(data)-n)
	for i := n; i < len(data); i++ {
		out = append(out, data[i]-data[i-n])
	}
	return out, nil
}

// Velocity returns the first discrete difference of the sequence.
func Velocity(data []float64) []float64 {
	if len(data) < 2 {
		return []float64{}
	}
	out := make([]float64, 0, len(data)-1)
	for i := 1; i < len(data); i++ {
		out = append(out, data[i]-data[i-1])
	}
	return out
}

// Acceleration returns the second discrete difference of the sequence.
func Acceleration(data []float64) []float64 {
	return Velocity(Velocity(data))
}

// PercentageDifference returns the percentage change from the first value
// to the second, ((to-from)/from)*100, or 0 when the first value is 0.
func PercentageDifference(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return (to - from) / from * 100
}

// CumSum returns the running sum of the sequence.
func CumSum(data []float64) []float64 {
	out := make([]float64, len(data))
	sum := 0.0
	for i, v := range data {
		sum += v
		out[i] = sum
	}
	return out
}

// CumProd returns the running product of the sequence.
func CumProd(data []float64) []float64 {
	out := make([]float64, len(data))
	prod := 1.0
	for i, v := range data {
		prod *= v
		out[i] = prod
	}
	return out
}

// Returns reports the period-over-period percentage change, equivalent to
// ROC with period 1.
func Returns(data []float64) []float64 {
	out, _ := ROC(data, 1)
	return out
}
