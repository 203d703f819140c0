package game

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidCategory  = errors.New("invalid category")
	ErrNotAnInteger     = errors.New("not an integer")
	ErrOutOfRange       = errors.New("out of range")
	ErrInvalidComposite = errors.New("invalid composite")
	ErrInvalidLevel     = errors.New("invalid level")
)

// FieldError reports which field of a value object failed validation.
// Err is one of the sentinel errors above, so callers match with errors.Is.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, value any, err error) error {
	return &FieldError{Field: field, Value: value, Err: err}
}

// wholeNumber converts a decoded number to int, rejecting fractions,
// NaN and infinities.
func wholeNumber(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fieldErr(field, v, ErrNotAnInteger)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fieldErr(field, v, ErrOutOfRange)
	}
	return int(v), nil
}

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fieldErr(field, v, fmt.Errorf("%w: want [%d,%d]", ErrOutOfRange, lo, hi))
	}
	return nil
}
