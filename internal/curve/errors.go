package curve

import (
	"errors"
	"fmt"
)

// Domain errors for curve parameters.
var (
	// ErrNonFinite indicates a NaN or Inf parameter.
	ErrNonFinite = errors.New("curve: parameter is not a finite number")

	// ErrTargetOutOfRange indicates a setpoint outside the entry range.
	ErrTargetOutOfRange = errors.New("curve: target temperature out of range")

	// ErrHeatCurveOutOfRange indicates a label outside the supported range.
	ErrHeatCurveOutOfRange = errors.New("curve: heat curve label out of range")
)

// ParamError wraps a validation error with the offending parameter.
type ParamError struct {
	Field   string
	Value   float64
	Min     float64
	Max     float64
	Wrapped error
}

func (e *ParamError) Error() string {
	if errors.Is(e.Wrapped, ErrNonFinite) {
		return fmt.Sprintf("%s: %v", e.Wrapped, e.Field)
	}
	return fmt.Sprintf("%s: %s=%g not in [%g, %g]", e.Wrapped, e.Field, e.Value, e.Min, e.Max)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
