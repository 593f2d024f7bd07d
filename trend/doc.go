// Package trend implements trend-following technical indicators.
//
// Every indicator is a pure function: it takes complete series in, allocates
// fresh output of the same length, and leaves NaN in the positions that fall
// inside its warm-up window. Inputs are never mutated and no state survives
// across calls, so independent invocations may run concurrently.
//
// # Moving Averages
//
// Simple recurrences over a single series:
//
//	sma, err := trend.SMA(close, 20)
//	ema, err := trend.EMA(close, 20)
//	wma, err := trend.WMA(close, 20)
//
// Lag-reduced averages composed from EMA and WMA:
//
//	dema, err := trend.DEMA(close, 20)
//	tema, err := trend.TEMA(close, 20)
//	hma, err := trend.HMA(close, 16)
//	zlema, err := trend.ZLEMA(close, 20)
//	t3, err := trend.T3(close, trend.DefaultT3Period, trend.DefaultT3VFactor)
//
// Weighted windows:
//
//	vwma, err := trend.VWMA(close, volume, 20)
//	alma, err := trend.ALMA(close, trend.DefaultALMAPeriod,
//	    trend.DefaultALMAOffset, trend.DefaultALMASigma)
//
// Adaptive averages:
//
//	kama, err := trend.KAMA(close, trend.DefaultKAMAPeriod,
//	    trend.DefaultKAMAFast, trend.DefaultKAMASlow)
//	frama, err := trend.FRAMA(close, trend.DefaultFRAMAPeriod)
//
// # Multi-Output Indicators
//
// Supertrend returns the trend line with a +1/-1 direction series:
//
//	st, err := trend.Supertrend(high, low, close, 10, 3.0)
//	if st.Direction.Values[i] == trend.DirectionUp { ... }
//
// Ichimoku returns the five cloud components:
//
//	cloud, err := trend.Ichimoku(high, low, close, trend.DefaultIchimokuConfig())
//
// # Warm-up Windows
//
// Each indicator defines its own warm-up span: period-1 for the windowed
// averages, longer for composed indicators (2*(period-1) for DEMA,
// 3*(period-1) for TEMA, and the nested extension for HMA). Displaced
// Ichimoku spans push the undefined region out by the displacement.
package trend
