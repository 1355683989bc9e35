package outlier

import "sort"

// Panel method names reported in Ensemble.Methods.
const (
	MethodZScore    = "zscore"
	MethodModifiedZ = "modified_zscore"
	MethodIQR       = "iqr"
	MethodGrubbs    = "grubbs"
)

// EnsembleConfig fixes the detector panel's thresholds. The panel
// membership itself is fixed at four methods: z-score, modified z-score,
// IQR fences, and iterative Grubbs.
type EnsembleConfig struct {
	ZScoreThreshold    float64
	ModifiedZThreshold float64
	IQRMultiplier      float64
	GrubbsSignificance float64
	GrubbsMaxIter      int
}

// DefaultEnsembleConfig returns the production panel: z-score at 2.0,
// modified z-score at 3.5, IQR fences at 1.5, and Grubbs at the 0.05
// significance level with up to 5 removals.
func DefaultEnsembleConfig() EnsembleConfig {
	return EnsembleConfig{
		ZScoreThreshold:    2.0,
		ModifiedZThreshold: 3.5,
		IQRMultiplier:      1.5,
		GrubbsSignificance: 0.05,
		GrubbsMaxIter:      5,
	}
}

// DetectEnsemble runs the default panel over the sequence and merges the
// flags by index. Each flagged index appears once; Confidence is the
// fraction of the four panel methods that flagged it and Methods lists the
// agreeing detectors sorted ascending. Agreement across independent methods
// suppresses single-method false positives, while the Grubbs member's
// iterative removal recovers outliers masked from the single-pass methods.
func DetectEnsemble(data []float64) []Ensemble {
	// the default configuration is always in-domain
	out, _ := DetectEnsembleWith(data, DefaultEnsembleConfig())
	return out
}

// DetectEnsembleWith runs the panel with caller-tuned thresholds. An
// out-of-domain Grubbs configuration fails the whole panel rather than
// silently dropping its vote, which would deflate every confidence.
func DetectEnsembleWith(data []float64, cfg EnsembleConfig) ([]Ensemble, error) {
	type vote struct {
		method string
		flags  []Result
	}

	grubbs, err := DetectGrubbs(data, cfg.GrubbsSignificance, cfg.GrubbsMaxIter)
	if err != nil {
		return nil, err
	}
	votes := []vote{
		{MethodZScore, DetectZScore(data, cfg.ZScoreThreshold)},
		{MethodModifiedZ, DetectModifiedZScore(data, cfg.ModifiedZThreshold)},
		{MethodIQR, DetectIQR(data, cfg.IQRMultiplier)},
		{MethodGrubbs, grubbs},
	}
	panelSize := float64(len(votes))

	merged := make(map[int]*Ensemble)
	for _, v := range votes {
		for _, r := range v.flags {
			e, ok := merged[r.Index]
			if !ok {
				e = &Ensemble{Result: r}
				merged[r.Index] = e
			}
			e.Methods = append(e.Methods, v.method)
		}
	}

	out := make([]Ensemble, 0, len(merged))
	for _, e := range merged {
		sort.Strings(e.Methods)
		e.Confidence = float64(len(e.Methods)) / panelSize
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// Summarize runs the ensemble detector and reports the totals and the
// flagged fraction — a convenience aggregation, not a new algorithm.
func Summarize(data []float64) *Summary {
	flagged := DetectEnsemble(data)
	s := &Summary{
		TotalPoints:  len(data),
		OutlierCount: len(flagged),
	}
	if s.TotalPoints > 0 {
		s.OutlierRate = float64(s.OutlierCount) / float64(s.TotalPoints)
	}
	return s
}
