package structure

import (
	"errors"
	"fmt"
)

// Failure classes. Every rejected operation wraps exactly one of these.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrEmptyCollection  = errors.New("empty collection")
	ErrNotFound         = errors.New("not found")
	ErrUnsupported      = errors.New("unsupported operation")
)

// OpError describes a rejected operation. Text is the message shown to the
// learner; the wrapped class is available through errors.Is.
type OpError struct {
	Op    Op
	Class error
	Text  string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Text)
}

func (e *OpError) Unwrap() error { return e.Class }

func opErr(op Op, class error, format string, args ...any) *OpError {
	return &OpError{Op: op, Class: class, Text: fmt.Sprintf(format, args...)}
}
