package timeseries

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for loading a single-column series from CSV.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "close")
	DateFormat  string // Date format (default: "2006-01-02")
	Delimiter   rune   // Field delimiter (default: ',')
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "close",
		DateFormat:  "2006-01-02",
		Delimiter:   ',',
	}
}

// OHLCVOptions holds options for loading aligned OHLCV series from CSV.
type OHLCVOptions struct {
	DateColumn   string
	HighColumn   string
	LowColumn    string
	CloseColumn  string
	VolumeColumn string
	DateFormat   string
	Delimiter    rune
}

// DefaultOHLCVOptions returns default options for OHLCV loading.
func DefaultOHLCVOptions() *OHLCVOptions {
	return &OHLCVOptions{
		DateColumn:   "date",
		HighColumn:   "high",
		LowColumn:    "low",
		CloseColumn:  "close",
		VolumeColumn: "volume",
		DateFormat:   "2006-01-02",
		Delimiter:    ',',
	}
}

// OHLCV holds aligned high/low/close/volume series sharing one timestamp axis.
type OHLCV struct {
	High   *Series
	Low    *Series
	Close  *Series
	Volume *Series
}

// LoadCSV loads a single-column series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a single-column series from an io.Reader.
// Rows with an unparseable value are skipped, like empty or "NA" cells.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	header, records, err := readAll(r, opts.Delimiter)
	if err != nil {
		return nil, err
	}

	valueIdx := columnIndex(header, opts.ValueColumn)
	if valueIdx == -1 {
		return nil, &InvalidInputError{Reason: "column " + opts.ValueColumn + " not found in CSV header"}
	}
	dateIdx := columnIndex(header, opts.DateColumn)

	var values []float64
	var timestamps []time.Time
	for _, record := range records {
		if valueIdx >= len(record) {
			continue
		}
		val, ok := parseCell(record[valueIdx])
		if !ok {
			continue
		}
		if dateIdx >= 0 && dateIdx < len(record) {
			ts, err := time.Parse(opts.DateFormat, strings.TrimSpace(record[dateIdx]))
			if err != nil {
				continue
			}
			timestamps = append(timestamps, ts)
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, &InvalidInputError{Reason: "no valid data found in CSV"}
	}
	if len(timestamps) == len(values) {
		return &Series{Timestamps: timestamps, Values: values, Name: opts.ValueColumn}, nil
	}
	return &Series{Values: values, Name: opts.ValueColumn}, nil
}

// LoadOHLCV loads aligned OHLCV series from a CSV file.
func LoadOHLCV(filename string, opts *OHLCVOptions) (*OHLCV, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadOHLCVFromReader(file, opts)
}

// LoadOHLCVFromReader loads aligned OHLCV series from an io.Reader. A row is
// kept only when every requested column parses, so the four series stay
// positionally aligned. The volume column is optional; when absent, Volume
// is nil.
func LoadOHLCVFromReader(r io.Reader, opts *OHLCVOptions) (*OHLCV, error) {
	if opts == nil {
		opts = DefaultOHLCVOptions()
	}

	header, records, err := readAll(r, opts.Delimiter)
	if err != nil {
		return nil, err
	}

	highIdx := columnIndex(header, opts.HighColumn)
	lowIdx := columnIndex(header, opts.LowColumn)
	closeIdx := columnIndex(header, opts.CloseColumn)
	if highIdx == -1 || lowIdx == -1 || closeIdx == -1 {
		return nil, &InvalidInputError{Reason: "CSV header is missing high/low/close columns"}
	}
	volumeIdx := columnIndex(header, opts.VolumeColumn)
	dateIdx := columnIndex(header, opts.DateColumn)

	var highs, lows, closes, volumes []float64
	var timestamps []time.Time
	for _, record := range records {
		h, okH := parseField(record, highIdx)
		l, okL := parseField(record, lowIdx)
		c, okC := parseField(record, closeIdx)
		if !okH || !okL || !okC {
			continue
		}
		v := 0.0
		if volumeIdx >= 0 {
			var okV bool
			v, okV = parseField(record, volumeIdx)
			if !okV {
				continue
			}
		}
		if dateIdx >= 0 && dateIdx < len(record) {
			ts, err := time.Parse(opts.DateFormat, strings.TrimSpace(record[dateIdx]))
			if err != nil {
				continue
			}
			timestamps = append(timestamps, ts)
		}
		highs = append(highs, h)
		lows = append(lows, l)
		closes = append(closes, c)
		volumes = append(volumes, v)
	}

	if len(closes) == 0 {
		return nil, &InvalidInputError{Reason: "no valid data found in CSV"}
	}

	withLabels := len(timestamps) == len(closes)
	build := func(values []float64, name string) *Series {
		s := &Series{Values: values, Name: name}
		if withLabels {
			s.Timestamps = timestamps
		}
		return s
	}

	result := &OHLCV{
		High:  build(highs, opts.HighColumn),
		Low:   build(lows, opts.LowColumn),
		Close: build(closes, opts.CloseColumn),
	}
	if volumeIdx >= 0 {
		result.Volume = build(volumes, opts.VolumeColumn)
	}
	return result, nil
}

// readAll reads the header row and all data records.
func readAll(r io.Reader, delimiter rune) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		records = append(records, record)
	}
	return header, records, nil
}

// columnIndex finds a header column by case-insensitive name. Returns -1 when
// the name is empty or absent.
func columnIndex(header []string, name string) int {
	if name == "" {
		return -1
	}
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

func parseField(record []string, idx int) (float64, bool) {
	if idx < 0 || idx >= len(record) {
		return 0, false
	}
	return parseCell(record[idx])
}

func parseCell(cell string) (float64, bool) {
	cell = strings.TrimSpace(strings.Trim(cell, "\""))
	if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
		return 0, false
	}
	val, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
