package trend

import (
	"math"

	"github.com/sartorproj/gotrend/timeseries"
)

// Default KAMA parameters.
const (
	DefaultKAMAPeriod = 10
	DefaultKAMAFast   = 2
	DefaultKAMASlow   = 30
)

// DefaultFRAMAPeriod is the default FRAMA lookback.
const DefaultFRAMAPeriod = 16

// KAMA calculates Kaufman's Adaptive Moving Average. The efficiency ratio
// (net movement over total path length) steers the smoothing constant
// between a fast and a slow EMA constant, so the average speeds up in trends
// and slows down in noise.
//
// Formula: KAMA[i] = KAMA[i-1] + SC*(P[i] - KAMA[i-1]),
// SC = (ER*(fastSC-slowSC) + slowSC)^2
//
// The recurrence is seeded with the raw sample at index period-1. A zero
// path length gives ER = 0 rather than an error. Requires
// 0 < fastPeriod < slowPeriod.
func KAMA(data *timeseries.Series, period, fastPeriod, slowPeriod int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if fastPeriod <= 0 {
		return nil, &timeseries.InvalidParameterError{
			Name:       "fastPeriod",
			Value:      float64(fastPeriod),
			Constraint: "must be positive",
		}
	}
	if slowPeriod <= 0 {
		return nil, &timeseries.InvalidParameterError{
			Name:       "slowPeriod",
			Value:      float64(slowPeriod),
			Constraint: "must be positive",
		}
	}
	if fastPeriod >= slowPeriod {
		return nil, &timeseries.InvalidParameterError{
			Name:       "fastPeriod",
			Value:      float64(fastPeriod),
			Constraint: "must be less than slowPeriod",
		}
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}

	fastSC := 2.0 / float64(fastPeriod+1)
	slowSC := 2.0 / float64(slowPeriod+1)

	result := nanSlice(len(values))
	result[period-1] = values[period-1]

	for i := period; i < len(values); i++ {
		direction := math.Abs(values[i] - values[i-period])

		volatility := 0.0
		for j := 0; j < period; j++ {
			volatility += math.Abs(values[i-j] - values[i-j-1])
		}

		er := 0.0
		if volatility > 0 {
			er = direction / volatility
		}

		sc := er*(fastSC-slowSC) + slowSC
		sc *= sc

		result[i] = result[i-1] + sc*(values[i]-result[i-1])
	}
	return timeseries.Reshape(result, shape), nil
}

// FRAMA calculates the Fractal Adaptive Moving Average. Each trailing window
// is split in two halves; the fractal dimension of the three ranges drives
// how aggressively the average follows price.
//
// Formula: D = (log(range1) + log(range2) - log(range3)) / log(2), clamped
// to [1, 2]; alpha = 2/(w*D + 1) with w = log(2/alphaBase)/log(2).
//
// A zero range in any window falls back to D = 1 (maximum smoothing toward
// price) rather than producing NaN. Requires period >= 4.
func FRAMA(data *timeseries.Series, period int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}
	if period < 4 {
		return nil, &timeseries.InvalidParameterError{
			Name:       "period",
			Value:      float64(period),
			Constraint: "must be at least 4",
		}
	}

	alphaBase := 2.0 / float64(period+1)
	w := math.Log(2.0/alphaBase) / math.Ln2
	half2 := period - period/2

	result := nanSlice(len(values))
	result[period-1] = values[period-1]

	for i := period; i < len(values); i++ {
		h1, l1 := windowRange(values[i-period+1 : i-half2+1])
		h2, l2 := windowRange(values[i-half2+1 : i+1])
		h3, l3 := windowRange(values[i-period+1 : i+1])

		d := 1.0
		if h1-l1 > 0 && h2-l2 > 0 && h3-l3 > 0 {
			d = (math.Log(h1-l1) + math.Log(h2-l2) - math.Log(h3-l3)) / math.Ln2
		}
		if d < 1 {
			d = 1
		} else if d > 2 {
			d = 2
		}

		alpha := 2.0 / (w*d + 1)
		result[i] = alpha*values[i] + (1-alpha)*result[i-1]
	}
	return timeseries.Reshape(result, shape), nil
}

// windowRange returns the highest and lowest values in a window.
func windowRange(window []float64) (float64, float64) {
	hi := window[0]
	lo := window[0]
	for _, v := range window[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	return hi, lo
}
