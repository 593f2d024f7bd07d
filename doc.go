// Package gotrend provides trend-following technical indicator calculations.
//
// GoTrend is a Go package for computing derived series from ordered
// price/volume time series: moving averages, volatility-adaptive trend lines,
// and multi-component cloud indicators. Every indicator is a pure function
// over complete finite series, producing output of the same length as its
// input with NaN marking the warm-up region where insufficient history exists.
//
// # Features
//
//   - Simple recurrences: SMA, EMA, WMA
//   - Lag-reduced moving averages: DEMA, TEMA, HMA, ZLEMA, T3
//   - Weighted-window averages: VWMA, ALMA
//   - Adaptive moving averages: KAMA, FRAMA
//   - Trend state machines and clouds: Supertrend, Ichimoku
//   - Series container with optional timestamps, preserved end-to-end
//   - OHLCV loading from CSV files
//
// # Quick Start
//
// Compute a moving average:
//
//	close := timeseries.New(values)
//	ema, err := trend.EMA(close, 20)
//
// Compute Supertrend from high/low/close series:
//
//	st, err := trend.Supertrend(high, low, close,
//	    trend.DefaultSupertrendPeriod, trend.DefaultSupertrendMultiplier)
//	line, direction := st.Line, st.Direction
//
// # Packages
//
// The library is organized into the following packages:
//
//   - trend: Indicator kernels (moving averages, Supertrend, Ichimoku, ...)
//   - timeseries: Series container, validation, alignment, CSV loading
//
// # Conventions
//
// Outputs are always the same length as the (aligned) inputs; positions
// inside an indicator's warm-up window hold math.NaN(). Inputs are never
// mutated, and no state survives across calls. Invalid parameters are
// rejected before any computation begins.
package gotrend
