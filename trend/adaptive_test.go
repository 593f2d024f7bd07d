package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/gotrend/timeseries"
)

func TestKAMASeed(t *testing.T) {
	values := []float64{4, 8, 15, 16, 23, 42}

	result, err := KAMA(timeseries.New(values), 3, 2, 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertWarmup(t, result, 2)
	if !almostEqual(result.Values[2], 15) {
		t.Errorf("Expected seed data[period-1]=15, got %v", result.Values[2])
	}
}

func TestKAMAPerfectTrend(t *testing.T) {
	// Strictly monotone input gives ER = 1, so the smoothing constant is
	// fastSC^2 = (2/3)^2 = 4/9 with fastPeriod 2.
	values := []float64{1, 2, 3, 4, 5}

	result, err := KAMA(timeseries.New(values), 3, 2, 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sc := 4.0 / 9.0
	want3 := 3 + sc*(4-3)
	want4 := want3 + sc*(5-want3)
	if !almostEqual(result.Values[3], want3) {
		t.Errorf("Expected %v at index 3, got %v", want3, result.Values[3])
	}
	if !almostEqual(result.Values[4], want4) {
		t.Errorf("Expected %v at index 4, got %v", want4, result.Values[4])
	}
}

func TestKAMAConstant(t *testing.T) {
	// Zero volatility gives ER = 0 and the average stays pinned.
	result, err := KAMA(constantSeries(77, 20), 5, 2, 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertWarmup(t, result, 4)
	for i := 4; i < result.Len(); i++ {
		if !almostEqual(result.Values[i], 77) {
			t.Errorf("Expected 77 at index %d, got %v", i, result.Values[i])
		}
	}
}

func TestKAMAInvalidParameters(t *testing.T) {
	data := timeseries.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	tests := []struct {
		name string
		fast int
		slow int
	}{
		{"fast equals slow", 5, 5},
		{"fast above slow", 10, 2},
		{"fast zero", 0, 30},
		{"slow negative", 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KAMA(data, 3, tt.fast, tt.slow)
			if err == nil {
				t.Fatal("Expected error")
			}
			var invalid *timeseries.InvalidParameterError
			if !errors.As(err, &invalid) {
				t.Errorf("Expected InvalidParameterError, got %T", err)
			}
		})
	}
}

func TestFRAMAConstant(t *testing.T) {
	// Zero ranges fall back to D = 1; the recurrence stays on the constant.
	result, err := FRAMA(constantSeries(31, 25), 8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertWarmup(t, result, 7)
	for i := 7; i < result.Len(); i++ {
		if !almostEqual(result.Values[i], 31) {
			t.Errorf("Expected 31 at index %d, got %v", i, result.Values[i])
		}
	}
}

func TestFRAMASeedAndWarmup(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 100 + 5*math.Sin(float64(i)/2) + float64(i)/10
	}

	result, err := FRAMA(timeseries.New(values), DefaultFRAMAPeriod)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertWarmup(t, result, DefaultFRAMAPeriod-1)
	if !almostEqual(result.Values[DefaultFRAMAPeriod-1], values[DefaultFRAMAPeriod-1]) {
		t.Errorf("Expected seed %v, got %v",
			values[DefaultFRAMAPeriod-1], result.Values[DefaultFRAMAPeriod-1])
	}
}

func TestFRAMATracksPrice(t *testing.T) {
	// Alpha stays in (0, 1], so each step moves from the previous value
	// toward the current price without overshooting.
	values := []float64{10, 12, 9, 14, 11, 16, 13, 18, 15, 20, 17, 22}

	result, err := FRAMA(timeseries.New(values), 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := 4; i < len(values); i++ {
		prev := result.Values[i-1]
		lo := math.Min(prev, values[i])
		hi := math.Max(prev, values[i])
		if result.Values[i] < lo-1e-9 || result.Values[i] > hi+1e-9 {
			t.Errorf("FRAMA %v at index %d outside [%v, %v]", result.Values[i], i, lo, hi)
		}
	}
}

func TestFRAMAPeriodTooSmall(t *testing.T) {
	_, err := FRAMA(timeseries.New([]float64{1, 2, 3, 4, 5}), 3)
	if err == nil {
		t.Fatal("Expected error for period below 4")
	}
	var invalid *timeseries.InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidParameterError, got %T", err)
	}
}
