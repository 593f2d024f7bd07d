// Package main demonstrates the trend indicators on a synthetic OHLCV walk.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sartorproj/gotrend/timeseries"
	"github.com/sartorproj/gotrend/trend"
)

// IndicatorResult holds one indicator's output for JSON export
type IndicatorResult struct {
	Name   string    `json:"name"`
	Params string    `json:"params"`
	Warmup int       `json:"warmup"`
	Tail   []float64 `json:"tail"`
}

// OutputData holds all results for visualization
type OutputData struct {
	Bars       int               `json:"bars"`
	Close      []float64         `json:"close"`
	Indicators []IndicatorResult `json:"indicators"`
}

const (
	nBars    = 250
	tailSize = 5
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoTrend Demonstration - Moving Averages / Supertrend / Ichimoku")
	fmt.Println(strings.Repeat("=", 80))

	high, low, close, volume := syntheticBars(nBars)
	fmt.Printf("\nGenerated %d bars (close %.2f to %.2f)\n", nBars, close.Min(), close.Max())

	output := OutputData{Bars: nBars, Close: close.Values, Indicators: []IndicatorResult{}}

	record := func(name, params string, s *timeseries.Series, err error) {
		if err != nil {
			fmt.Printf("   %-12s error: %v\n", name, err)
			return
		}
		warmup := firstDefined(s.Values)
		tail := s.Values[s.Len()-tailSize:]
		fmt.Printf("   %-12s %-22s warmup=%-3d tail=%s\n", name, params, warmup, formatTail(tail))
		output.Indicators = append(output.Indicators, IndicatorResult{
			Name: name, Params: params, Warmup: warmup, Tail: tail,
		})
	}

	fmt.Println("\nMoving averages:")
	sma, err := trend.SMA(close, 20)
	record("SMA", "period=20", sma, err)
	ema, err := trend.EMA(close, 20)
	record("EMA", "period=20", ema, err)
	wma, err := trend.WMA(close, 20)
	record("WMA", "period=20", wma, err)

	fmt.Println("\nComposed smoothers:")
	dema, err := trend.DEMA(close, 20)
	record("DEMA", "period=20", dema, err)
	tema, err := trend.TEMA(close, 20)
	record("TEMA", "period=20", tema, err)
	hma, err := trend.HMA(close, 16)
	record("HMA", "period=16", hma, err)
	zlema, err := trend.ZLEMA(close, 20)
	record("ZLEMA", "period=20", zlema, err)
	t3, err := trend.T3(close, trend.DefaultT3Period, trend.DefaultT3VFactor)
	record("T3", fmt.Sprintf("period=%d v=%.1f", trend.DefaultT3Period, trend.DefaultT3VFactor), t3, err)

	fmt.Println("\nWeighted and adaptive:")
	vwma, err := trend.VWMA(close, volume, 20)
	record("VWMA", "period=20", vwma, err)
	alma, err := trend.ALMA(close, trend.DefaultALMAPeriod, trend.DefaultALMAOffset, trend.DefaultALMASigma)
	record("ALMA", fmt.Sprintf("period=%d offset=%.2f", trend.DefaultALMAPeriod, trend.DefaultALMAOffset), alma, err)
	kama, err := trend.KAMA(close, trend.DefaultKAMAPeriod, trend.DefaultKAMAFast, trend.DefaultKAMASlow)
	record("KAMA", fmt.Sprintf("period=%d fast=%d slow=%d", trend.DefaultKAMAPeriod, trend.DefaultKAMAFast, trend.DefaultKAMASlow), kama, err)
	frama, err := trend.FRAMA(close, trend.DefaultFRAMAPeriod)
	record("FRAMA", fmt.Sprintf("period=%d", trend.DefaultFRAMAPeriod), frama, err)

	fmt.Println("\nSupertrend:")
	st, err := trend.Supertrend(high, low, close, trend.DefaultSupertrendPeriod, trend.DefaultSupertrendMultiplier)
	if err != nil {
		fmt.Printf("   Supertrend error: %v\n", err)
	} else {
		record("Supertrend", fmt.Sprintf("period=%d mult=%.1f", trend.DefaultSupertrendPeriod, trend.DefaultSupertrendMultiplier), st.Line, nil)
		dir := "up"
		if st.Direction.Values[nBars-1] == trend.DirectionDown {
			dir = "down"
		}
		flips := directionFlips(st.Direction.Values)
		fmt.Printf("   current direction: %s (%d flips over %d bars)\n", dir, flips, nBars)
	}

	fmt.Println("\nIchimoku Cloud:")
	ichimoku, err := trend.Ichimoku(high, low, close, trend.DefaultIchimokuConfig())
	if err != nil {
		fmt.Printf("   Ichimoku error: %v\n", err)
	} else {
		record("TenkanSen", "period=9", ichimoku.TenkanSen, nil)
		record("KijunSen", "period=26", ichimoku.KijunSen, nil)
		record("SenkouSpanA", "displacement=26", ichimoku.SenkouSpanA, nil)
		record("SenkouSpanB", "period=52", ichimoku.SenkouSpanB, nil)
		record("ChikouSpan", "displacement=26", ichimoku.ChikouSpan, nil)
	}

	// Export results
	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	if data, err := json.MarshalIndent(output, "", "  "); err == nil {
		os.WriteFile("indicator_results.json", data, 0644)
		fmt.Printf("Exported %d indicators to indicator_results.json\n", len(output.Indicators))
	}

	fmt.Println(strings.Repeat("=", 80))
}

// syntheticBars generates a seeded random walk with intrabar range and volume.
func syntheticBars(n int) (high, low, close, volume *timeseries.Series) {
	rng := rand.New(rand.NewSource(42))
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	timestamps := make([]time.Time, n)
	h := make([]float64, n)
	l := make([]float64, n)
	c := make([]float64, n)
	v := make([]float64, n)

	price := 100.0
	for i := 0; i < n; i++ {
		timestamps[i] = start.AddDate(0, 0, i)
		price += 0.1 + rng.NormFloat64()
		if price < 10 {
			price = 10
		}
		spread := 0.5 + math.Abs(rng.NormFloat64())
		c[i] = price
		h[i] = price + spread
		l[i] = price - spread
		v[i] = 1000 + 500*rng.Float64()
	}

	high, _ = timeseries.NewWithTimestamps(timestamps, h)
	low, _ = timeseries.NewWithTimestamps(timestamps, l)
	close, _ = timeseries.NewWithTimestamps(timestamps, c)
	volume, _ = timeseries.NewWithTimestamps(timestamps, v)
	high.Name, low.Name, close.Name, volume.Name = "high", "low", "close", "volume"
	return high, low, close, volume
}

// firstDefined returns the index of the first non-NaN value, or -1.
func firstDefined(values []float64) int {
	for i, v := range values {
		if !math.IsNaN(v) {
			return i
		}
	}
	return -1
}

func directionFlips(direction []float64) int {
	flips := 0
	prev := math.NaN()
	for _, d := range direction {
		if math.IsNaN(d) {
			continue
		}
		if !math.IsNaN(prev) && d != prev {
			flips++
		}
		prev = d
	}
	return flips
}

func formatTail(tail []float64) string {
	parts := make([]string, len(tail))
	for i, v := range tail {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
