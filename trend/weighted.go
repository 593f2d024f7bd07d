package trend

import (
	"math"

	"github.com/sartorproj/gotrend/timeseries"
)

// Default ALMA parameters.
const (
	DefaultALMAPeriod = 21
	DefaultALMAOffset = 0.85
	DefaultALMASigma  = 6.0
)

// VWMA calculates the Volume Weighted Moving Average, giving more weight to
// periods with higher volume.
//
// Formula: VWMA = sum(P*V) / sum(V) over the trailing window
//
// When the windowed volume sum is not positive, the raw price at that index
// is used instead, so a dead window never divides by zero or widens the
// warm-up region.
func VWMA(data, volume *timeseries.Series, period int) (*timeseries.Series, error) {
	buffers, shape, err := timeseries.Align(data, volume)
	if err != nil {
		return nil, err
	}
	prices, volumes := buffers[0], buffers[1]
	if err := timeseries.ValidatePeriod(period, len(prices)); err != nil {
		return nil, err
	}

	result := nanSlice(len(prices))
	for i := period - 1; i < len(prices); i++ {
		sumPV := 0.0
		sumV := 0.0
		for j := i - period + 1; j <= i; j++ {
			sumPV += prices[j] * volumes[j]
			sumV += volumes[j]
		}
		if sumV > 0 {
			result[i] = sumPV / sumV
		} else {
			result[i] = prices[i]
		}
	}
	return timeseries.Reshape(result, shape), nil
}

// ALMA calculates the Arnaud Legoux Moving Average, a Gaussian-weighted
// trailing window whose offset shifts the weight peak toward recent samples.
//
// Formula: w[i] = exp(-(i-m)^2 / (2*s^2)), m = offset*(period-1), s = period/sigma
//
// Weights are normalized to sum to 1 before the weighted sum is taken.
// Offset must lie in [0, 1] and sigma must be positive.
func ALMA(data *timeseries.Series, period int, offset, sigma float64) (*timeseries.Series, error) {
	values, shape, err := timeseries.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := timeseries.ValidatePeriod(period, len(values)); err != nil {
		return nil, err
	}
	if offset < 0 || offset > 1 {
		return nil, &timeseries.InvalidParameterError{
			Name:       "offset",
			Value:      offset,
			Constraint: "must be between 0 and 1",
		}
	}
	if sigma <= 0 {
		return nil, &timeseries.InvalidParameterError{
			Name:       "sigma",
			Value:      sigma,
			Constraint: "must be positive",
		}
	}

	m := offset * float64(period-1)
	s := float64(period) / sigma

	weights := make([]float64, period)
	weightSum := 0.0
	for i := range weights {
		d := float64(i) - m
		weights[i] = math.Exp(-(d * d) / (2 * s * s))
		weightSum += weights[i]
	}
	for i := range weights {
		weights[i] /= weightSum
	}

	result := nanSlice(len(values))
	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		for j := 0; j < period; j++ {
			sum += weights[j] * values[i-period+1+j]
		}
		result[i] = sum
	}
	return timeseries.Reshape(result, shape), nil
}
