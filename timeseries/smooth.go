package timeseries

import (
	"fmt"
	"math"

	"github.com/riskplane/goanalytics"
)

// HPFilter applies the Hodrick-Prescott filter, splitting the sequence into
// a smooth trend and the cyclical remainder. Both outputs have the same
// length as the input. lambda controls smoothness (larger is smoother; 1600
// is the classic quarterly-data choice) and must be positive. Sequences of
// fewer than three points are their own trend with a zero cycle.
func HPFilter(data []float64, lambda float64) (trend, cycle []float64, err error) {
	if lambda <= 0 {
		return nil, nil, fmt.Errorf("%w: hp lambda must be positive, got %v", goanalytics.ErrInvalidArgument, lambda)
	}
	n := len(data)
	if n == 0 {
		return []float64{}, []float64{}, nil
	}
	if n < 3 {
		trend = make([]float64, n)
		copy(trend, data)
		return trend, make([]float64, n), nil
	}

	// Solve (I + lambda*K'K) trend = data, where K is the second-difference
	// operator. The system matrix is pentadiagonal, symmetric positive
	// definite; band[i] holds the row at column offsets -2..+2.
	band := make([][5]float64, n)
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		band[i][2] = 1 + 6*lambda
		band[i][1] = -4 * lambda
		band[i][3] = -4 * lambda
		band[i][0] = lambda
		band[i][4] = lambda
		rhs[i] = data[i]
	}
	band[0][0], band[0][1] = 0, 0
	band[0][2] = 1 + lambda
	band[0][3] = -2 * lambda
	band[1][0] = 0
	band[1][1] = -2 * lambda
	band[1][2] = 1 + 5*lambda
	band[n-1][3], band[n-1][4] = 0, 0
	band[n-1][2] = 1 + lambda
	band[n-1][1] = -2 * lambda
	band[n-2][4] = 0
	band[n-2][3] = -2 * lambda
	band[n-2][2] = 1 + 5*lambda
	if n == 3 {
		// the middle row borders both ends
		band[1][2] = 1 + 4*lambda
	}

	// Banded Gaussian elimination; no pivoting needed for an SPD matrix.
	for i := 0; i < n; i++ {
		for k := 1; k <= 2 && i+k < n; k++ {
			factor := band[i+k][2-k] / band[i][2]
			for j := 0; j <= 2 && 2+j < 5 && 2-k+j < 5; j++ {
				band[i+k][2-k+j] -= factor * band[i][2+j]
			}
			rhs[i+k] -= factor * rhs[i]
		}
	}

	trend = make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		v := rhs[i]
		if i+1 < n {
			v -= band[i][3] * trend[i+1]
		}
		if i+2 < n {
			v -= band[i][4] * trend[i+2]
		}
		trend[i] = v / band[i][2]
	}

	cycle = make([]float64, n)
	for i := range data {
		cycle[i] = data[i] - trend[i]
	}
	return trend, cycle, nil
}

// SavitzkyGolay smooths the sequence by fitting a local polynomial of the
// given order over a centered window at every position and evaluating the
// fit at that position. The window must be odd and larger than the order.
// Output length equals input length; windows are clamped at the edges.
func SavitzkyGolay(data []float64, window, order int) ([]float64, error) {
	if window < 3 || window%2 == 0 {
		return nil, fmt.Errorf("%w: savitzky-golay window must be odd and >= 3, got %d", goanalytics.ErrInvalidArgument, window)
	}
	if order < 1 || order >= window {
		return nil, fmt.Errorf("%w: savitzky-golay order must be in [1, window), got %d", goanalytics.ErrInvalidArgument, order)
	}
	n := len(data)
	if n == 0 {
		return []float64{}, nil
	}
	if n <= order {
		out := make([]float64, n)
		copy(out, data)
		return out, nil
	}

	half := window / 2
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		lo := i - half
		hi := i + half
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		out[i] = polyFitAt(data[lo:hi+1], i-lo, order)
	}
	return out, nil
}

// polyFitAt fits a polynomial of the given order to the window by least
// squares (offsets relative to position at) and returns the fitted value at
// that position. Degenerate normal equations fall back to the raw value.
func polyFitAt(window []float64, at, order int) float64 {
	m := len(window)
	if order >= m {
		order = m - 1
	}
	terms := order + 1

	// Normal equations A'A c = A'y over the Vandermonde of offsets.
	ata := make([][]float64, terms)
	aty := make([]float64, terms)
	for r := range ata {
		ata[r] = make([]float64, terms)
	}
	for t := 0; t < m; t++ {
		x := float64(t - at)
		pow := make([]float64, terms)
		pow[0] = 1
		for p := 1; p < terms; p++ {
			pow[p] = pow[p-1] * x
		}
		for r := 0; r < terms; r++ {
			for c := 0; c < terms; c++ {
				ata[r][c] += pow[r] * pow[c]
			}
			aty[r] += pow[r] * window[t]
		}
	}

	coeffs, ok := solveLinear(ata, aty)
	if !ok {
		return window[at]
	}
	// The constant term is the fitted value at offset 0.
	return coeffs[0]
}

// solveLinear solves a small dense system by Gaussian elimination with
// partial pivoting. Reports false for a singular system.
func solveLinear(a [][]float64, b []float64) ([]float64, bool) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		v := b[r]
		for c := r + 1; c < n; c++ {
			v -= a[r][c] * x[c]
		}
		x[r] = v / a[r][r]
	}
	return x, true
}
