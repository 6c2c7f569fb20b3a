package errors

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// NumericalInstabilityError represents errors caused by numerical instability,
// such as NaN or Inf values appearing during computation. Gradient descent with
// too large a learning rate is the typical source.
type NumericalInstabilityError struct {
	Op     string
	Value  float64
	Reason string
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("descent: %s: numerical instability detected (value: %v): %s", e.Op, e.Value, e.Reason)
}

// MarshalZerologObject adds structured error information to zerolog events.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a stack trace.
func NewNumericalInstabilityError(op string, value float64, reason string) error {
	err := &NumericalInstabilityError{Op: op, Value: value, Reason: reason}
	return errors.WithStack(err)
}

// CheckScalar verifies that a single value is finite.
func CheckScalar(op string, value float64) error {
	if math.IsNaN(value) {
		return NewNumericalInstabilityError(op, value, "NaN value detected")
	}
	if math.IsInf(value, 0) {
		return NewNumericalInstabilityError(op, value, "Inf value detected")
	}
	return nil
}

// CheckVector verifies that every element of a slice is finite. The reported
// reason names the offending index.
func CheckVector(op string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) {
			return NewNumericalInstabilityError(op, v, fmt.Sprintf("NaN value at index %d", i))
		}
		if math.IsInf(v, 0) {
			return NewNumericalInstabilityError(op, v, fmt.Sprintf("Inf value at index %d", i))
		}
	}
	return nil
}

// CheckMatrix verifies that every element of a matrix is finite.
func CheckMatrix(op string, m mat.Matrix) error {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				return NewNumericalInstabilityError(op, v, fmt.Sprintf("NaN value at (%d, %d)", i, j))
			}
			if math.IsInf(v, 0) {
				return NewNumericalInstabilityError(op, v, fmt.Sprintf("Inf value at (%d, %d)", i, j))
			}
		}
	}
	return nil
}
