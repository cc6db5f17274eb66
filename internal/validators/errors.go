package validators

import "errors"

var (
	// ErrUnsupportedType is returned when the validated value is not a struct
	// or a non-nil pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput wraps every rule violation found in a validated value.
	ErrInvalidInput = errors.New("invalid input")
)
