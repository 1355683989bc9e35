// Package outlier provides single-method and ensemble anomaly detection
// over numeric sequences.
//
// Single-method detectors (z-score, modified z-score, IQR fences, Grubbs'
// test, isolation scoring, and the time-series-aware spike/level-shift/
// contextual detectors) each return results sorted by original index with a
// high/low direction relative to the method's center. DetectEnsemble runs a
// fixed panel of detectors, merges the flags by index, and scores each
// flagged point with the fraction of panel methods that agree — the
// recommended default for production alerting, since agreement suppresses
// single-method noise while the iterative Grubbs member defeats masking.
//
// # Basic Usage
//
//	flagged := outlier.DetectZScore(amounts, 2)
//	for _, f := range flagged {
//	    fmt.Printf("index %d value %.2f (%s)\n", f.Index, f.Value, f.Direction)
//	}
//
//	ranked := outlier.DetectEnsemble(amounts)
//	summary := outlier.Summarize(amounts)
//
// # Degenerate Input
//
// Empty sequences yield empty result sets; zero variance or zero MAD means
// nothing can be flagged by the affected method (never a NaN or panic).
package outlier
