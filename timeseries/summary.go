package timeseries

import "github.com/riskplane/goanalytics/descriptive"

// summaryVolatilityWindow is the trailing window used for the summary's
// mean rolling volatility, clamped to the series length.
const summaryVolatilityWindow = 10

// SeriesSummary is the one-call profile of a time series used by the
// predictive analytics service: full descriptive statistics plus trend,
// seasonality, volatility, and net-change figures.
type SeriesSummary struct {
	Stats         *descriptive.Stats
	Trend         *Trend
	Seasonality   *Seasonality
	Volatility    float64 // mean trailing-window standard deviation
	First         float64
	Last          float64
	Change        float64
	ChangePercent float64
}

// Summarize describes a time series in one call: Describe, DetectTrend, and
// DetectSeasonality (at the default threshold) over the same sequence,
// together with the mean rolling volatility and first-to-last change. An
// empty sequence yields a zero-valued summary.
func Summarize(data []float64) *SeriesSummary {
	s := &SeriesSummary{
		Stats:       descriptive.Describe(data),
		Trend:       DetectTrend(data),
		Seasonality: DetectSeasonality(data, 0),
	}
	if len(data) == 0 {
		return s
	}

	vol, _ := RollingVolatility(data, summaryVolatilityWindow)
	s.Volatility = descriptive.Mean(vol)

	s.First = data[0]
	s.Last = data[len(data)-1]
	s.Change = s.Last - s.First
	s.ChangePercent = PercentageDifference(s.First, s.Last)
	return s
}
