package circleizer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for out-of-range options before any
	// pixel is processed.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrEmptyInput is returned for images without any sampled area.
	ErrEmptyInput = errors.New("empty input")
)

// ParamError describes which option was rejected. It unwraps to
// ErrInvalidParameter.
type ParamError struct {
	Name   string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s=%v %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

func paramError(name string, value any, reason string) error {
	return &ParamError{Name: name, Value: value, Reason: reason}
}
