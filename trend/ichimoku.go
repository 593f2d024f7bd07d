package trend

import (
	"fmt"

	"github.com/sartorproj/gotrend/timeseries"
)

// IchimokuConfig holds the periods and displacement for the Ichimoku Cloud.
type IchimokuConfig struct {
	TenkanPeriod  int // Conversion line period
	KijunPeriod   int // Base line period
	SenkouBPeriod int // Leading span B period
	Displacement  int // Forward shift for the leading spans, backward for Chikou
}

// DefaultIchimokuConfig returns the conventional 9/26/52 configuration with
// a displacement of 26.
func DefaultIchimokuConfig() IchimokuConfig {
	return IchimokuConfig{
		TenkanPeriod:  9,
		KijunPeriod:   26,
		SenkouBPeriod: 52,
		Displacement:  26,
	}
}

// IchimokuResult holds the five aligned Ichimoku components. All series have
// the same length as the aligned input; displaced values that would fall
// past the end are dropped.
type IchimokuResult struct {
	TenkanSen   *timeseries.Series
	KijunSen    *timeseries.Series
	SenkouSpanA *timeseries.Series
	SenkouSpanB *timeseries.Series
	ChikouSpan  *timeseries.Series
}

// Ichimoku calculates the Ichimoku Cloud.
//
// Tenkan-sen and Kijun-sen are midpoints of the rolling high/low range over
// their periods. Senkou Span A averages the two and is plotted Displacement
// bars ahead; Senkou Span B is the SenkouBPeriod midpoint, also plotted
// ahead. Chikou Span is the close displaced by the same amount.
func Ichimoku(high, low, close *timeseries.Series, cfg IchimokuConfig) (*IchimokuResult, error) {
	buffers, shape, err := timeseries.Align(high, low, close)
	if err != nil {
		return nil, err
	}
	h, l, c := buffers[0], buffers[1], buffers[2]
	n := len(c)

	periods := []struct {
		name  string
		value int
	}{
		{"tenkanPeriod", cfg.TenkanPeriod},
		{"kijunPeriod", cfg.KijunPeriod},
		{"senkouBPeriod", cfg.SenkouBPeriod},
	}
	for _, p := range periods {
		if p.value <= 0 {
			return nil, &timeseries.InvalidParameterError{
				Name:       p.name,
				Value:      float64(p.value),
				Constraint: "must be positive",
			}
		}
		if p.value > n {
			return nil, &timeseries.InvalidParameterError{
				Name:       p.name,
				Value:      float64(p.value),
				Constraint: fmt.Sprintf("exceeds series length %d", n),
			}
		}
	}
	if cfg.Displacement < 0 {
		return nil, &timeseries.InvalidParameterError{
			Name:       "displacement",
			Value:      float64(cfg.Displacement),
			Constraint: "must not be negative",
		}
	}

	tenkan := midline(h, l, cfg.TenkanPeriod)
	kijun := midline(h, l, cfg.KijunPeriod)
	senkouBBase := midline(h, l, cfg.SenkouBPeriod)

	d := cfg.Displacement
	spanA := nanSlice(n + d)
	spanB := nanSlice(n + d)

	start := max(cfg.TenkanPeriod, cfg.KijunPeriod) - 1
	for i := start; i < n; i++ {
		spanA[i+d] = (tenkan[i] + kijun[i]) / 2
	}
	for i := cfg.SenkouBPeriod - 1; i < n; i++ {
		spanB[i+d] = senkouBBase[i]
	}

	chikou := nanSlice(n)
	for i := d; i < n; i++ {
		chikou[i] = c[i-d]
	}

	// Values displaced past the original length are dropped.
	return &IchimokuResult{
		TenkanSen:   timeseries.Reshape(tenkan, shape),
		KijunSen:    timeseries.Reshape(kijun, shape),
		SenkouSpanA: timeseries.Reshape(spanA[:n], shape),
		SenkouSpanB: timeseries.Reshape(spanB[:n], shape),
		ChikouSpan:  timeseries.Reshape(chikou, shape),
	}, nil
}

// midline returns (highest high + lowest low)/2 over each trailing window.
func midline(high, low []float64, period int) []float64 {
	result := nanSlice(len(high))
	for i := period - 1; i < len(high); i++ {
		hi := high[i-period+1]
		lo := low[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if high[j] > hi {
				hi = high[j]
			}
			if low[j] < lo {
				lo = low[j]
			}
		}
		result[i] = (hi + lo) / 2
	}
	return result
}
