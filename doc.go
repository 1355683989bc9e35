// Package goanalytics provides the statistical core of a governance, risk,
// and compliance analytics platform: descriptive statistics, time-series
// analytics, and outlier/anomaly detection.
//
// Every function in this module is a pure, deterministic transform of its
// inputs. Nothing here performs I/O, holds state, or mutates a caller's
// slice; sorting and windowing always happen on internal copies, so callers
// may hold long-lived references to the sequences they pass in and may call
// any function from multiple goroutines without locking.
//
// # Packages
//
// The library is organized leaf to root:
//
//   - descriptive: single-pass and sort-based statistics over one or two
//     numeric sequences (mean, median, mode, quantiles, moments, regression)
//   - timeseries: derived sequences, trend and seasonality detection,
//     smoothing, and forecasting
//   - outlier: single-method anomaly detectors and a confidence-scored
//     ensemble
//
// # Quick Start
//
// Describe a series and scan it for anomalies:
//
//	stats := descriptive.Describe(values)
//	trend := timeseries.DetectTrend(values)
//	flagged := outlier.DetectEnsemble(values)
//
// # Edge Cases
//
// Degenerate numeric input (empty sequences, a single point, zero variance,
// zero MAD) is part of the documented contract, not an error: such cases
// resolve to defined zero, empty, or flat results, and no function ever
// returns NaN or an infinity. Only shape violations fail: parameters outside
// their documented domain return ErrInvalidArgument, and paired sequences of
// unequal length return ErrLengthMismatch.
package goanalytics
