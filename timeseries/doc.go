// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type used by all indicator kernels, the
// normalize/reshape boundary that preserves the caller's container kind,
// input validation, alignment of positionally comparable series, and CSV
// loading of price data.
//
// # Creating a Series
//
// Create a plain series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Or a labeled series with timestamps:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// # The Adapter Boundary
//
// Indicator kernels operate on dense float64 buffers. Normalize extracts the
// buffer along with a Shape token; Reshape wraps a freshly computed buffer
// back into the same container kind, reattaching timestamp labels when the
// input carried them:
//
//	buf, shape, err := timeseries.Normalize(series)
//	// ... compute ...
//	out := timeseries.Reshape(result, shape)
//
// Multiple series that must be positionally comparable (high/low/close, or
// price/volume) go through Align, which rejects length mismatches:
//
//	buffers, shape, err := timeseries.Align(high, low, close)
//
// # Validation Errors
//
// Three error kinds cover all precondition failures:
//
//   - InvalidInputError: empty or missing input
//   - InvalidParameterError: out-of-range indicator parameters
//   - MisalignedInputError: multi-series length mismatch
//
// # Loading from CSV
//
// Load a single column, or aligned OHLCV series:
//
//	series, err := timeseries.LoadCSV("prices.csv", nil)
//
//	bars, err := timeseries.LoadOHLCV("bars.csv", nil)
//	high, low, close := bars.High, bars.Low, bars.Close
package timeseries
