package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/gotrend/timeseries"
)

func TestVWMA(t *testing.T) {
	nan := math.NaN()
	prices := timeseries.New([]float64{1, 2, 3, 4})
	volumes := timeseries.New([]float64{1, 1, 1, 1})

	result, err := VWMA(prices, volumes, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertSeries(t, result, []float64{nan, 1.5, 2.5, 3.5})
}

func TestVWMAWeighting(t *testing.T) {
	prices := timeseries.New([]float64{10, 20})
	volumes := timeseries.New([]float64{1, 3})

	result, err := VWMA(prices, volumes, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// (10*1 + 20*3) / 4 = 17.5
	if !almostEqual(result.Values[1], 17.5) {
		t.Errorf("Expected 17.5, got %v", result.Values[1])
	}
}

func TestVWMAZeroVolumeFallsBackToPrice(t *testing.T) {
	prices := timeseries.New([]float64{5, 6, 7, 8})
	volumes := timeseries.New([]float64{0, 0, 0, 2})

	result, err := VWMA(prices, volumes, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Windows ending at 1 and 2 have zero volume: fall back to the raw price.
	if !almostEqual(result.Values[1], 6) || !almostEqual(result.Values[2], 7) {
		t.Errorf("Expected raw-price fallback, got %v", result.Values)
	}
	// Window ending at 3 has volume only at index 3.
	if !almostEqual(result.Values[3], 8) {
		t.Errorf("Expected 8, got %v", result.Values[3])
	}
}

func TestVWMAConstantPrice(t *testing.T) {
	prices := constantSeries(50, 12)
	volumes := timeseries.New([]float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8})

	result, err := VWMA(prices, volumes, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertWarmup(t, result, 3)
	for i := 3; i < result.Len(); i++ {
		if !almostEqual(result.Values[i], 50) {
			t.Errorf("Expected 50 at index %d, got %v", i, result.Values[i])
		}
	}
}

func TestVWMAMisaligned(t *testing.T) {
	prices := timeseries.New([]float64{1, 2, 3})
	volumes := timeseries.New([]float64{1, 2})

	_, err := VWMA(prices, volumes, 2)
	if err == nil {
		t.Fatal("Expected error for mismatched lengths")
	}
	var misaligned *timeseries.MisalignedInputError
	if !errors.As(err, &misaligned) {
		t.Errorf("Expected MisalignedInputError, got %T", err)
	}
}

func TestALMAConstant(t *testing.T) {
	// Normalized weights mean a constant window reproduces the constant.
	result, err := ALMA(constantSeries(13, 30), DefaultALMAPeriod, DefaultALMAOffset, DefaultALMASigma)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertWarmup(t, result, DefaultALMAPeriod-1)
	for i := DefaultALMAPeriod - 1; i < result.Len(); i++ {
		if !almostEqual(result.Values[i], 13) {
			t.Errorf("Expected 13 at index %d, got %v", i, result.Values[i])
		}
	}
}

func TestALMAWithinWindowBounds(t *testing.T) {
	values := []float64{3, 9, 1, 7, 5, 8, 2, 6, 4, 10}

	result, err := ALMA(timeseries.New(values), 5, 0.85, 6.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// A convex weighting stays inside the window's min/max.
	for i := 4; i < len(values); i++ {
		hi, lo := windowRange(values[i-4 : i+1])
		if result.Values[i] < lo-1e-9 || result.Values[i] > hi+1e-9 {
			t.Errorf("ALMA %v at index %d outside window range [%v, %v]", result.Values[i], i, lo, hi)
		}
	}
}

func TestALMAInvalidParameters(t *testing.T) {
	data := timeseries.New([]float64{1, 2, 3, 4, 5})

	tests := []struct {
		name   string
		offset float64
		sigma  float64
	}{
		{"offset above one", 1.5, 6.0},
		{"offset negative", -0.1, 6.0},
		{"sigma zero", 0.85, 0},
		{"sigma negative", 0.85, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ALMA(data, 3, tt.offset, tt.sigma)
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
