// Package descriptive provides descriptive statistics over numeric sequences.
//
// This package is the leaf of the module: it depends on nothing but the
// standard library, and both the timeseries and outlier packages build on it.
// All functions take plain []float64 slices in population or chronological
// order and never modify them; order-sensitive computations (median, mode,
// percentiles) sort an internal copy.
//
// # Basic Usage
//
// Compute individual statistics:
//
//	m := descriptive.Mean(values)
//	sd := descriptive.StdDev(values, false) // population
//	q1, _ := descriptive.Percentile(values, 25)
//
// Or everything at once:
//
//	stats := descriptive.Describe(values)
//	fmt.Printf("mean=%.2f sd=%.2f iqr=%.2f\n", stats.Mean, stats.StdDev, stats.IQR)
//
// # Degenerate Input
//
// An empty sequence yields zeros (and an empty mode list), a single point
// yields zero variance, and zero-variance input yields zero correlation and
// zero z-scores. These outcomes are contractual: callers never receive NaN
// or an infinity from this package.
package descriptive
