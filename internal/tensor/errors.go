package tensor

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers match with errors.Is.
var (
	// ErrInvalidSet reports a literal or slice initializer whose shape does not
	// match the target tensor.
	ErrInvalidSet = errors.New("invalid set")

	// ErrInvalidType reports incompatible operand ranks or shapes, or a
	// structural precondition such as "must be square".
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidLookup reports an axis, offset or index outside its valid range.
	ErrInvalidLookup = errors.New("invalid lookup")
)

// Error carries the failing operation alongside the error kind.
type Error struct {
	Kind error  // One of ErrInvalidSet, ErrInvalidType, ErrInvalidLookup
	Op   string // Operation that failed (e.g. "Add", "Contract")
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func errorf(kind error, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}
