// Package trend implements trend-following technical indicators.
package trend

import (
	"math"

	"github.com/sartorproj/gotrend/timeseries"
)

// SMA calculates the Simple Moving Average.
//
// Formula: SMA = (P1 + P2 + ... + Pn) / n
//
// The window sum is maintained incrementally, so the whole series costs O(n)
// regardless of period. The first period-1 positions are NaN.
func SMA(data *timeseries.Series, period int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}
	return timeseries.Reshape(smaValues(values, period), shape), nil
}

func smaValues(values []float64, period int) []float64 {
	result := nanSlice(len(values))

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	result[period-1] = sum / float64(period)

	for i := period; i < len(values); i++ {
		sum += values[i] - values[i-period]
		result[i] = sum / float64(period)
	}
	return result
}

// EMA calculates the Exponential Moving Average.
//
// Formula: EMA[i] = alpha*P[i] + (1-alpha)*EMA[i-1], alpha = 2/(period+1)
//
// The recurrence is seeded with the SMA of the first period samples, placed
// at index period-1. Composed indicators feed EMA output back through EMA, so
// a leading NaN region shifts the seed to the first defined sample; when
// fewer than period defined samples remain, the output is entirely NaN.
func EMA(data *timeseries.Series, period int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}
	return timeseries.Reshape(emaValues(values, period), shape), nil
}

func emaValues(values []float64, period int) []float64 {
	result := nanSlice(len(values))

	start := 0
	for start < len(values) && math.IsNaN(values[start]) {
		start++
	}
	if start+period > len(values) {
		return result
	}

	sum := 0.0
	for i := start; i < start+period; i++ {
		sum += values[i]
	}
	seed := start + period - 1
	result[seed] = sum / float64(period)

	alpha := 2.0 / float64(period+1)
	for i := seed + 1; i < len(values); i++ {
		result[i] = alpha*values[i] + (1-alpha)*result[i-1]
	}
	return result
}

// WMA calculates the Weighted Moving Average with linearly increasing
// weights 1..period, the most recent sample weighted highest.
//
// Formula: WMA = (P1*1 + P2*2 + ... + Pn*n) / (1 + 2 + ... + n)
func WMA(data *timeseries.Series, period int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}
	return timeseries.Reshape(wmaValues(values, period), shape), nil
}

func wmaValues(values []float64, period int) []float64 {
	result := nanSlice(len(values))
	norm := float64(period*(period+1)) / 2

	for i := period - 1; i < len(values); i++ {
		weighted := 0.0
		for j := 0; j < period; j++ {
			weighted += values[i-period+1+j] * float64(j+1)
		}
		result[i] = weighted / norm
	}
	return result
}

// nanSlice returns a slice of n NaN values, the undefined sentinel used for
// warm-up regions.
func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
