package imaging

import (
	"errors"
	"fmt"
)

// Kind classifies a stitching failure.
type Kind int

const (
	// KindArgument indicates an inconsistent or incomplete set of inputs.
	KindArgument Kind = iota

	// KindDecode indicates an input could not be read or parsed as an image.
	KindDecode

	// KindSizeMismatch indicates the input images do not share identical
	// dimensions.
	KindSizeMismatch

	// KindGridArity indicates the number of supplied images does not match
	// the declared grid shape.
	KindGridArity

	// KindEncode indicates the output image could not be written.
	KindEncode
)

// Sentinel errors for matching a failure kind with errors.Is. Every error
// returned by this package carries exactly one of these kinds.
var (
	ErrArgument     = errors.New("invalid arguments")
	ErrDecode       = errors.New("image decode failed")
	ErrSizeMismatch = errors.New("image size mismatch")
	ErrGridArity    = errors.New("grid arity mismatch")
	ErrEncode       = errors.New("image encode failed")
)

// Error is the error type returned by this package. It pairs a failure Kind
// with a human-readable message and, for I/O and codec failures, the
// underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's kind, so that
// errors.Is(err, ErrSizeMismatch) and friends work across wrapping.
func (e *Error) Is(target error) bool { return target == e.Kind.sentinel() }

func (k Kind) sentinel() error {
	switch k {
	case KindArgument:
		return ErrArgument
	case KindDecode:
		return ErrDecode
	case KindSizeMismatch:
		return ErrSizeMismatch
	case KindGridArity:
		return ErrGridArity
	case KindEncode:
		return ErrEncode
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindDecode:
		return "decode"
	case KindSizeMismatch:
		return "size mismatch"
	case KindGridArity:
		return "grid arity"
	case KindEncode:
		return "encode"
	}
	return "unknown"
}

// newError creates an Error of the given kind with a formatted message.
func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// wrapError creates an Error of the given kind wrapping an underlying cause.
func wrapError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
