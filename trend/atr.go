package trend

import "math"

// atr computes the Average True Range with Wilder smoothing. True range at
// index 0 is high-low only; it contributes to the seed sum but index 0 is
// never itself a defined ATR output. The seed at index period-1 is the
// simple mean of the first period true ranges.
func atr(high, low, close []float64, period int) []float64 {
	n := len(high)

	tr := make([]float64, n)
	tr[0] = high[0] - low[0]
	for i := 1; i < n; i++ {
		hl := high[i] - low[i]
		hc := math.Abs(high[i] - close[i-1])
		lc := math.Abs(low[i] - close[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}

	result := nanSlice(n)
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += tr[i]
	}
	result[period-1] = sum / float64(period)

	for i := period; i < n; i++ {
		result[i] = (result[i-1]*float64(period-1) + tr[i]) / float64(period)
	}
	return result
}
