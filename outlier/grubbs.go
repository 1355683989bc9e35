package outlier

import (
	"fmt"
	"math"
	"sort"

	"github.com/riskplane/goanalytics"
	"github.com/riskplane/goanalytics/descriptive"
)

// GrubbsResult is the outcome of a single Grubbs' test: the most extreme
// standardized residual in the sequence, the critical value at the given
// significance level, and whether the point is declared an outlier.
type GrubbsResult struct {
	Statistic     float64
	CriticalValue float64
	Index         int
	Value         float64
	IsOutlier     bool
}

// GrubbsTest computes Grubbs' statistic G = max|x-mean|/s for the single
// most extreme point and compares it against the critical value derived
// from the t-distribution at the given significance level (two-sided).
// Sequences of fewer than three points, or with zero variance, are never
// flagged. significance must lie in (0, 1).
func GrubbsTest(data []float64, significance float64) (*GrubbsResult, error) {
	if significance <= 0 || significance >= 1 {
		return nil, fmt.Errorf("%w: significance must be in (0, 1), got %v", goanalytics.ErrInvalidArgument, significance)
	}

	n := len(data)
	res := &GrubbsResult{}
	if n < 3 {
		return res, nil
	}

	mean := descriptive.Mean(data)
	std := descriptive.StdDev(data, true)
	if std == 0 {
		return res, nil
	}

	for i, v := range data {
		g := math.Abs(v-mean) / std
		if g > res.Statistic {
			res.Statistic = g
			res.Index = i
			res.Value = v
		}
	}

	// Two-sided critical value: G_crit = ((n-1)/sqrt(n)) *
	// sqrt(t^2/(n-2+t^2)) with t the upper alpha/(2n) quantile at n-2
	// degrees of freedom.
	nf := float64(n)
	t := studentTQuantile(1-significance/(2*nf), nf-2)
	res.CriticalValue = (nf - 1) / math.Sqrt(nf) * math.Sqrt(t*t/(nf-2+t*t))
	res.IsOutlier = res.Statistic > res.CriticalValue
	return res, nil
}

// DetectGrubbs applies Grubbs' test iteratively: the most extreme point is
// removed and the remainder re-tested until no point exceeds the critical
// value or maxIterations is reached. The iteration defeats masking, where
// one extreme outlier inflates the standard deviation enough to hide a
// second from a single pass. Results are sorted by original index.
func DetectGrubbs(data []float64, significance float64, maxIterations int) ([]Result, error) {
	if maxIterations < 1 {
		return nil, fmt.Errorf("%w: max iterations must be positive, got %d", goanalytics.ErrInvalidArgument, maxIterations)
	}

	remaining := make([]float64, len(data))
	copy(remaining, data)
	indices := make([]int, len(data))
	for i := range indices {
		indices[i] = i
	}

	out := []Result{}
	for iter := 0; iter < maxIterations; iter++ {
		res, err := GrubbsTest(remaining, significance)
		if err != nil {
			return nil, err
		}
		if !res.IsOutlier {
			break
		}

		out = append(out, Result{
			Index:     indices[res.Index],
			Value:     res.Value,
			Direction: direction(res.Value, descriptive.Mean(remaining)),
		})
		remaining = append(remaining[:res.Index], remaining[res.Index+1:]...)
		indices = append(indices[:res.Index], indices[res.Index+1:]...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// studentTQuantile returns the p-quantile of Student's t-distribution with
// df degrees of freedom, inverted from the CDF by bisection.
func studentTQuantile(p, df float64) float64 {
	if df <= 0 {
		return 0
	}
	if p == 0.5 {
		return 0
	}
	if p < 0.5 {
		return -studentTQuantile(1-p, df)
	}

	lo, hi := 0.0, 1.0
	for studentTCDF(hi, df) < p && hi < 1e8 {
		hi *= 2
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if studentTCDF(mid, df) < p {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-12*(1+hi) {
			break
		}
	}
	return (lo + hi) / 2
}

// studentTCDF returns P(T <= t) for Student's t with df degrees of freedom,
// via the regularized incomplete beta function.
func studentTCDF(t, df float64) float64 {
	x := df / (df + t*t)
	tail := 0.5 * regIncBeta(df/2, 0.5, x)
	if t > 0 {
		return 1 - tail
	}
	return tail
}

// regIncBeta computes the regularized incomplete beta function I_x(a, b)
// using the continued-fraction expansion.
func regIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	front := math.Exp(logGamma(a+b) - logGamma(a) - logGamma(b) +
		a*math.Log(x) + b*math.Log(1-x))

	// The continued fraction converges quickly for x < (a+1)/(a+b+2);
	// otherwise use the symmetry relation.
	if x >= (a+1)/(a+b+2) {
		return 1 - regIncBeta(b, a, 1-x)
	}
	return front * betaCF(a, b, x) / a
}

// betaCF evaluates the continued fraction for the incomplete beta function
// by the modified Lentz method.
func betaCF(a, b, x float64) float64 {
	const (
		maxIter = 200
		eps     = 1e-12
		fpmin   = 1e-30
	)

	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < fpmin {
		d = fpmin
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIter; m++ {
		mf := float64(m)
		m2 := 2 * mf

		aa := mf * (b - mf) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		h *= d * c

		aa = -(a + mf) * (qab + mf) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < eps {
			break
		}
	}
	return h
}

// logGamma computes the natural log of the gamma function by the Lanczos
// approximation.
func logGamma(z float64) float64 {
	if z < 0.5 {
		// reflection formula
		return math.Log(math.Pi/math.Sin(math.Pi*z)) - logGamma(1-z)
	}

	z--
	coeffs := []float64{
		0.99999999999980993,
		676.5203681218851,
		-1259.1392167224028,
		771.32342877765313,
		-176.61502916214059,
		12.507343278686905,
		-0.13857109526572012,
		9.9843695780195716e-6,
		1.5056327351493116e-7,
	}

	x := coeffs[0]
	for i := 1; i < len(coeffs); i++ {
		x += coeffs[i] / (z + float64(i))
	}

	t := z + float64(len(coeffs)-2) + 0.5
	return 0.5*math.Log(2*math.Pi) + (z+0.5)*math.Log(t) - t + math.Log(x)
}
