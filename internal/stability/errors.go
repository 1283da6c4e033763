package stability

import (
	"errors"
	"fmt"
)

var (
	// ErrDataIntegrity indicates malformed or inconsistent source tables.
	// No computation proceeds once this is reported.
	ErrDataIntegrity = errors.New("stability: invalid table data")

	// ErrInputRange indicates a draft or derived displacement outside the
	// tabulated coverage. The caller may retry with a corrected input.
	ErrInputRange = errors.New("stability: input outside tabulated range")

	// ErrOutOfRange indicates an interpolation bound violation. It should be
	// unreachable once input-range checks pass; seeing it means the two
	// source tables do not cover consistent domains.
	ErrOutOfRange = errors.New("stability: interpolation outside tabulated range")
)

// RangeError reports a value that falls outside its tabulated domain,
// naming the offending value and the valid bounds so an operator can
// correct the input.
type RangeError struct {
	Quantity string // e.g. "draft", "displacement", "heel angle"
	Unit     string // e.g. "m", "t", "°"
	Value    float64
	Min      float64
	Max      float64
	kind     error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %.3f%s is outside valid range [%.3f%s, %.3f%s]",
		e.Quantity, e.Value, e.Unit, e.Min, e.Unit, e.Max, e.Unit)
}

// Unwrap exposes the error class (ErrInputRange or ErrOutOfRange) so
// callers can dispatch with errors.Is.
func (e *RangeError) Unwrap() error { return e.kind }

func inputRangeError(quantity, unit string, value, min, max float64) error {
	return &RangeError{Quantity: quantity, Unit: unit, Value: value, Min: min, Max: max, kind: ErrInputRange}
}

func outOfRangeError(quantity, unit string, value, min, max float64) error {
	return &RangeError{Quantity: quantity, Unit: unit, Value: value, Min: min, Max: max, kind: ErrOutOfRange}
}
