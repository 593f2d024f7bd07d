package timeseries

import "fmt"

// InvalidInputError reports input that cannot be normalized into a dense
// buffer, such as a nil or empty series.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// InvalidParameterError reports an indicator parameter outside its valid
// range. It carries the offending value and the violated constraint.
type InvalidParameterError struct {
	Name       string
	Value      float64
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Constraint)
}

// MisalignedInputError reports series that are expected to be positionally
// comparable but have different lengths.
type MisalignedInputError struct {
	Expected int
	Got      int
}

func (e *MisalignedInputError) Error() string {
	return fmt.Sprintf("misaligned input: series length %d does not match %d", e.Got, e.Expected)
}
