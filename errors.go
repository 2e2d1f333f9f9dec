package newtype

import (
	"errors"
	"fmt"
)

// Declaration-time failures. Declare reports them wrapped in a
// ConfigurationError; no Type is produced.
var (
	// ErrMissingValidator is returned when a descriptor declares no Validate hook.
	ErrMissingValidator = errors.New("derived type must declare a Validate hook")

	// ErrUnsupportedBase is returned when the base type has in-place-mutating
	// semantics (maps, channels, funcs, pointers) and cannot be wrapped.
	ErrUnsupportedBase = errors.New("unsupported base type")

	// ErrInvalidOp is returned when a declared operation has the wrong shape.
	ErrInvalidOp = errors.New("invalid operation declaration")
)

// Call-time failures raised by the core itself. Errors from user hooks
// and from operation functions are surfaced verbatim, never wrapped.
var (
	// ErrUnknownOp is returned by Call for an unregistered operation name.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrArgument is returned when Call arguments do not fit the operation.
	ErrArgument = errors.New("operation argument mismatch")

	// ErrZeroInstance is returned when an operation is invoked on the zero Instance.
	ErrZeroInstance = errors.New("operation on zero instance")

	// ErrHookInput is returned by an untyped validation hook when the
	// candidate value is not of the base type.
	ErrHookInput = errors.New("hook input is not the base type")

	// ErrDivisionByZero is returned by the built-in div and mod operations.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOutOfBounds is returned by the built-in slice and index operations.
	ErrOutOfBounds = errors.New("index out of bounds")
)

// ConfigurationError reports declaration-time misuse of the factory.
// When Declare returns one, no derived type has been produced.
type ConfigurationError struct {
	Type   string // declared type name
	Reason error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("declaring derived type %q: %s", e.Type, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Reason }

// IsConfigurationError reports whether err is a declaration-time failure.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}
