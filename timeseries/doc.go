// Package timeseries provides analytics over position-ordered numeric
// sequences: moving averages, rates of change, trend and seasonality
// detection, smoothing, and forecasting.
//
// Index 0 is the oldest observation. Window parameters always denote a
// trailing look-back count, so a windowed transform of n points yields
// n-window+1 points. Inputs are never modified.
//
// # Trend and Seasonality
//
// Detect direction and strength of a trend, and a dominant seasonal period:
//
//	trend := timeseries.DetectTrend(values)
//	if trend.Direction == timeseries.DirectionUp {
//	    // slope and R²-based strength are on the result
//	}
//
//	season := timeseries.DetectSeasonality(values, 0) // 0 = default 0.5 threshold
//
// # Forecasting
//
// Two forecasters are provided: ForecastLinear extrapolates an ordinary
// least-squares fit with a prediction interval derived from the residual
// standard error, and ForecastSES repeats the last exponentially smoothed
// level (a flat multi-step forecast, by construction of simple exponential
// smoothing).
//
// # Degenerate Input
//
// Empty input produces empty output (or a flat zero-valued result struct);
// shape violations such as a non-positive window or horizon return
// goanalytics.ErrInvalidArgument.
package timeseries
