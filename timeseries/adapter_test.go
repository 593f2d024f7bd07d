package timeseries

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeReshape(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)}
	labeled, _ := NewWithTimestamps(timestamps, []float64{1, 2, 3})
	labeled.Name = "close"

	values, shape, err := Normalize(labeled)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("Expected buffer length 3, got %d", len(values))
	}

	out := Reshape([]float64{10, 20, 30}, shape)
	if out.Name != "close" {
		t.Errorf("Expected name preserved, got %q", out.Name)
	}
	if len(out.Timestamps) != 3 || !out.Timestamps[2].Equal(timestamps[2]) {
		t.Error("Expected timestamps reattached to reshaped output")
	}
}

func TestNormalizePlainStaysPlain(t *testing.T) {
	plain := New([]float64{1, 2, 3})

	_, shape, err := Normalize(plain)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := Reshape([]float64{4, 5, 6}, shape)
	if out.Timestamps != nil {
		t.Error("Expected plain input to produce plain output")
	}
}

func TestNormalizeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		series *Series
	}{
		{"nil", nil},
		{"empty", New([]float64{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Normalize(tt.series)
			if err == nil {
				t.Fatal("Expected error")
			}
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Errorf("Expected InvalidInputError, got %T", err)
			}
		})
	}
}

func TestReshapeAll(t *testing.T) {
	_, shape, err := Normalize(New([]float64{1, 2}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	outputs := ReshapeAll([][]float64{{1, 2}, {3, 4}}, shape)
	if len(outputs) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(outputs))
	}
	if outputs[1].Values[0] != 3 {
		t.Errorf("Unexpected reshaped values: %v", outputs[1].Values)
	}
}

func TestValidatePeriod(t *testing.T) {
	tests := []struct {
		name    string
		period  int
		length  int
		wantErr bool
	}{
		{"zero", 0, 10, true},
		{"negative", -3, 10, true},
		{"exceeds length", 11, 10, true},
		{"equals length", 10, 10, false},
		{"valid", 5, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeriod(tt.period, tt.length)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				var invalid *InvalidParameterError
				if !errors.As(err, &invalid) {
					t.Errorf("Expected InvalidParameterError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	a := New([]float64{1, 2, 3})
	b := New([]float64{4, 5, 6})

	buffers, _, err := Align(a, b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(buffers) != 2 || len(buffers[0]) != 3 || len(buffers[1]) != 3 {
		t.Errorf("Unexpected aligned buffers: %v", buffers)
	}
}

func TestAlignMismatch(t *testing.T) {
	a := New([]float64{1, 2, 3})
	b := New([]float64{4, 5})

	_, _, err := Align(a, b)
	if err == nil {
		t.Fatal("Expected error for mismatched lengths")
	}
	var misaligned *MisalignedInputError
	if !errors.As(err, &misaligned) {
		t.Fatalf("Expected MisalignedInputError, got %T", err)
	}
	if misaligned.Expected != 3 || misaligned.Got != 2 {
		t.Errorf("Unexpected error detail: expected=%d got=%d", misaligned.Expected, misaligned.Got)
	}
}

func TestAlignShapeFromFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.AddDate(0, 0, 1)}
	labeled, _ := NewWithTimestamps(timestamps, []float64{1, 2})
	plain := New([]float64{3, 4})

	_, shape, err := Align(labeled, plain)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := Reshape([]float64{7, 8}, shape)
	if len(out.Timestamps) != 2 {
		t.Error("Expected shape taken from the first series")
	}
}
