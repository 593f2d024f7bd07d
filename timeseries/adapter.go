package timeseries

import (
	"fmt"
	"time"
)

// Shape records the container kind of a normalized series: its name and its
// timestamp labels, if any. It is produced by Normalize and consumed by
// Reshape so that indicator output comes back in the caller's container kind.
type Shape struct {
	timestamps []time.Time
	name       string
}

// Normalize converts a series into a dense value buffer plus a shape token.
// The buffer is borrowed from the series and must be treated as read-only.
func Normalize(s *Series) ([]float64, Shape, error) {
	if s == nil || len(s.Values) == 0 {
		return nil, Shape{}, &InvalidInputError{Reason: "series is empty"}
	}
	shape := Shape{name: s.Name}
	if len(s.Timestamps) == len(s.Values) && len(s.Timestamps) > 0 {
		shape.timestamps = s.Timestamps
	}
	return s.Values, shape, nil
}

// Reshape wraps freshly computed values in the container kind recorded by
// Normalize, reattaching timestamp labels where the input carried them.
func Reshape(values []float64, shape Shape) *Series {
	s := &Series{Values: values, Name: shape.name}
	if len(shape.timestamps) == len(values) {
		s.Timestamps = shape.timestamps
	}
	return s
}

// ReshapeAll applies Reshape to each buffer of a multi-output result.
func ReshapeAll(buffers [][]float64, shape Shape) []*Series {
	result := make([]*Series, len(buffers))
	for i, values := range buffers {
		result[i] = Reshape(values, shape)
	}
	return result
}

// ValidatePeriod checks that a lookback period can produce at least one
// defined value for a series of the given length.
func ValidatePeriod(period, length int) error {
	if period <= 0 {
		return &InvalidParameterError{
			Name:       "period",
			Value:      float64(period),
			Constraint: "must be positive",
		}
	}
	if period > length {
		return &InvalidParameterError{
			Name:       "period",
			Value:      float64(period),
			Constraint: fmt.Sprintf("exceeds series length %d", length),
		}
	}
	return nil
}

// Align normalizes series that are meant to be positionally comparable
// (e.g., high/low/close, or price/volume). Indicators assume chronological
// alignment starting at index 0, so any length mismatch is an error rather
// than being silently truncated. The returned shape is taken from the first
// series.
func Align(series ...*Series) ([][]float64, Shape, error) {
	if len(series) == 0 {
		return nil, Shape{}, &InvalidInputError{Reason: "no series to align"}
	}

	buffers := make([][]float64, len(series))
	var shape Shape
	for i, s := range series {
		values, sh, err := Normalize(s)
		if err != nil {
			return nil, Shape{}, err
		}
		if i == 0 {
			shape = sh
		} else if len(values) != len(buffers[0]) {
			return nil, Shape{}, &MisalignedInputError{Expected: len(buffers[0]), Got: len(values)}
		}
		buffers[i] = values
	}
	return buffers, shape, nil
}
