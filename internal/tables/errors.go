package tables

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotNumeric is returned when a numeric field cannot be parsed
	ErrNotNumeric = errors.New("not a valid number")

	// ErrNotPositive is returned when a numeric field is zero, negative or not finite
	ErrNotPositive = errors.New("must be a positive number")

	// ErrUnknown is returned when a value is not a member of its lookup table
	ErrUnknown = errors.New("not a recognized value")

	// ErrOutOfRange is returned when a value is valid on its own but its result overflows
	ErrOutOfRange = errors.New("too large, result is not a finite number")
)

// ValidationError identifies the input field that failed validation
type ValidationError struct {
	Field string // e.g. "wind speed"
	Value string // raw input as received
	Err   error  // one of ErrNotNumeric, ErrNotPositive, ErrUnknown
	Hint  string // optional list of accepted values
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	if e.Hint != "" {
		msg += " (expected " + e.Hint + ")"
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParsePositive parses raw text as a positive, finite real number
func ParsePositive(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: raw, Err: ErrNotNumeric}
	}
	if err := CheckPositive(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckPositive validates an already-numeric field
func CheckPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ValidationError{
			Field: field,
			Value: strconv.FormatFloat(v, 'g', -1, 64),
			Err:   ErrNotPositive,
		}
	}
	return nil
}

// CheckFinite rejects a computed value that overflowed. field and input name the input responsible.
func CheckFinite(field string, input, result float64) error {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return &ValidationError{
			Field: field,
			Value: strconv.FormatFloat(input, 'g', -1, 64),
			Err:   ErrOutOfRange,
		}
	}
	return nil
}

func normalize(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}
