package trend

import (
	"math"

	"github.com/sartorproj/gotrend/timeseries"
)

// Default T3 parameters.
const (
	DefaultT3Period  = 21
	DefaultT3VFactor = 0.7
)

// DEMA calculates the Double Exponential Moving Average, which reduces the
// lag of a plain EMA.
//
// Formula: DEMA = 2*EMA(n) - EMA(EMA(n))
//
// The first defined index is 2*(period-1).
func DEMA(data *timeseries.Series, period int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}

	ema1, err := EMA(data, period)
	if err != nil {
		return nil, err
	}
	ema2, err := EMA(ema1, period)
	if err != nil {
		return nil, err
	}

	result := make([]float64, len(values))
	for i := range result {
		result[i] = 2*ema1.Values[i] - ema2.Values[i]
	}
	return timeseries.Reshape(result, shape), nil
}

// TEMA calculates the Triple Exponential Moving Average.
//
// Formula: TEMA = 3*EMA(n) - 3*EMA(EMA(n)) + EMA(EMA(EMA(n)))
//
// The first defined index is 3*(period-1).
func TEMA(data *timeseries.Series, period int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}

	ema1, err := EMA(data, period)
	if err != nil {
		return nil, err
	}
	ema2, err := EMA(ema1, period)
	if err != nil {
		return nil, err
	}
	ema3, err := EMA(ema2, period)
	if err != nil {
		return nil, err
	}

	result := make([]float64, len(values))
	for i := range result {
		result[i] = 3*ema1.Values[i] - 3*ema2.Values[i] + ema3.Values[i]
	}
	return timeseries.Reshape(result, shape), nil
}

// HMA calculates the Hull Moving Average.
//
// Formula: HMA = WMA(2*WMA(n/2) - WMA(n), sqrt(n))
//
// The warm-up region grows through the nesting: the final WMA over the
// de-lagged difference extends the undefined span of its inputs.
func HMA(data *timeseries.Series, period int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}

	wmaHalf, err := WMA(data, period/2)
	if err != nil {
		return nil, err
	}
	wmaFull, err := WMA(data, period)
	if err != nil {
		return nil, err
	}

	diff := make([]float64, len(values))
	for i := range diff {
		diff[i] = 2*wmaHalf.Values[i] - wmaFull.Values[i]
	}

	sqrtPeriod := int(math.Sqrt(float64(period)))
	result, err := WMA(timeseries.New(diff), sqrtPeriod)
	if err != nil {
		return nil, err
	}
	return timeseries.Reshape(result.Values, shape), nil
}

// ZLEMA calculates the Zero Lag Exponential Moving Average: an EMA over a
// de-lagged input that projects price momentum forward.
//
// Formula: ZLEMA = EMA(2*P[i] - P[i-lag], n), lag = (n-1)/2
func ZLEMA(data *timeseries.Series, period int) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}

	lag := (period - 1) / 2
	adjusted := make([]float64, len(values))
	copy(adjusted, values[:lag])
	for i := lag; i < len(values); i++ {
		adjusted[i] = 2*values[i] - values[i-lag]
	}

	result, err := EMA(timeseries.New(adjusted), period)
	if err != nil {
		return nil, err
	}
	return timeseries.Reshape(result.Values, shape), nil
}

// T3 calculates the T3 Moving Average: three nested applications of a
// generalized DEMA smoothing.
//
// Formula: T3 = GD(GD(GD(data))), GD(x) = (1+v)*EMA1(x) - v*EMA2(EMA1(x))
func T3(data *timeseries.Series, period int, vFactor float64) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}

	result := gd(values, period, vFactor)
	result = gd(result, period, vFactor)
	result = gd(result, period, vFactor)
	return timeseries.Reshape(result, shape), nil
}

// gd applies the generalized DEMA smoothing used by T3. Its exponential
// smoothing seeds with the first raw sample rather than an SMA, so it is a
// different recurrence from EMA and deliberately not shared with it.
func gd(values []float64, period int, vFactor float64) []float64 {
	alpha := 2.0 / float64(period+1)

	ema1 := make([]float64, len(values))
	ema1[0] = values[0]
	for i := 1; i < len(values); i++ {
		ema1[i] = alpha*values[i] + (1-alpha)*ema1[i-1]
	}

	ema2 := make([]float64, len(values))
	ema2[0] = ema1[0]
	for i := 1; i < len(values); i++ {
		ema2[i] = alpha*ema1[i] + (1-alpha)*ema2[i-1]
	}

	result := make([]float64, len(values))
	for i := range result {
		result[i] = (1+vFactor)*ema1[i] - vFactor*ema2[i]
	}
	return result
}
