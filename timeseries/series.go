// Package timeseries provides the series container and validation boundary
// used by the indicator kernels.
package timeseries

import (
	"math"
	"time"
)

// Series represents an ordered sequence of samples with optional timestamps.
// Timestamps, when present, are labels only: they are carried through
// indicator calculations unchanged and never interpreted.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a plain series from values, without timestamps. A plain series
// stays plain through indicator calculations.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewWithTimestamps creates a labeled series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, &MisalignedInputError{Expected: len(values), Got: len(timestamps)}
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series, skipping NaN values.
func (s *Series) Mean() float64 {
	sum := 0.0
	n := 0
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Min returns the minimum value in the series, skipping NaN values.
func (s *Series) Min() float64 {
	min := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series, skipping NaN values.
func (s *Series) Max() float64 {
	max := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Slice returns a copy of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	result := &Series{Values: values, Name: s.Name}
	if len(s.Timestamps) == len(s.Values) {
		timestamps := make([]time.Time, end-start)
		copy(timestamps, s.Timestamps[start:end])
		result.Timestamps = timestamps
	}
	return result
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	result := &Series{Values: values, Name: s.Name}
	if len(s.Timestamps) > 0 {
		timestamps := make([]time.Time, len(s.Timestamps))
		copy(timestamps, s.Timestamps)
		result.Timestamps = timestamps
	}
	return result
}
