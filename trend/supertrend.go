package trend

import "github.com/sartorproj/gotrend/timeseries"

// Default Supertrend parameters.
const (
	DefaultSupertrendPeriod     = 10
	DefaultSupertrendMultiplier = 3.0
)

// Direction values carried in SupertrendResult.Direction.
const (
	DirectionUp   = 1.0
	DirectionDown = -1.0
)

// SupertrendResult holds the two Supertrend outputs: the trend line itself
// and the trend direction (+1 uptrend, -1 downtrend). Warm-up positions in
// both series are NaN.
type SupertrendResult struct {
	Line      *timeseries.Series
	Direction *timeseries.Series
}

// Supertrend calculates the Supertrend indicator, a trend-following state
// machine over ATR-based bands.
//
// Basic bands are (high+low)/2 +/- multiplier*ATR. The final upper band only
// ratchets downward while price stays below it, re-anchoring after the prior
// close breaks above; the lower band mirrors this. The line rides the upper
// band in a downtrend and the lower band in an uptrend, flipping state when
// the close crosses the opposing band.
func Supertrend(high, low, close *timeseries.Series, period int, multiplier float64) (*SupertrendResult, error) {
	buffers, shape, err := timeseries.Align(high, low, close)
	if err != nil {
		return nil, err
	}
	h, l, c := buffers[0], buffers[1], buffers[2]
	if err := timeseries.ValidatePeriod(period, len(c)); err != nil {
		return nil, err
	}
	if multiplier <= 0 {
		return nil, &timeseries.InvalidParameterError{
			Name:       "multiplier",
			Value:      multiplier,
			Constraint: "must be positive",
		}
	}

	n := len(c)
	atrValues := atr(h, l, c, period)

	upperBand := make([]float64, n)
	lowerBand := make([]float64, n)
	for i := 0; i < n; i++ {
		mid := (h[i] + l[i]) / 2
		upperBand[i] = mid + multiplier*atrValues[i]
		lowerBand[i] = mid - multiplier*atrValues[i]
	}

	line := nanSlice(n)
	direction := nanSlice(n)
	finalUpper := nanSlice(n)
	finalLower := nanSlice(n)

	seed := period - 1
	finalUpper[seed] = upperBand[seed]
	finalLower[seed] = lowerBand[seed]
	line[seed] = finalUpper[seed]
	direction[seed] = DirectionUp

	for i := seed + 1; i < n; i++ {
		if upperBand[i] < finalUpper[i-1] || c[i-1] > finalUpper[i-1] {
			finalUpper[i] = upperBand[i]
		} else {
			finalUpper[i] = finalUpper[i-1]
		}

		if lowerBand[i] > finalLower[i-1] || c[i-1] < finalLower[i-1] {
			finalLower[i] = lowerBand[i]
		} else {
			finalLower[i] = finalLower[i-1]
		}

		if direction[i-1] == DirectionUp {
			if c[i] <= finalLower[i] {
				direction[i] = DirectionDown
				line[i] = finalLower[i]
			} else {
				direction[i] = DirectionUp
				line[i] = finalUpper[i]
			}
		} else {
			if c[i] >= finalUpper[i] {
				direction[i] = DirectionUp
				line[i] = finalUpper[i]
			} else {
				direction[i] = DirectionDown
				line[i] = finalLower[i]
			}
		}
	}

	outputs := timeseries.ReshapeAll([][]float64{line, direction}, shape)
	return &SupertrendResult{Line: outputs[0], Direction: outputs[1]}, nil
}
