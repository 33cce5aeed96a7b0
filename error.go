package chrono

import (
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrCreateFile  = NewError("failed to create trace file")
	ErrWriteTrace  = NewError("failed to write trace stream")
	ErrCloseFile   = NewError("failed to close trace file")
	ErrParseConfig = NewError("failed to parse session config")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg      string
	sentinel *Error      // Identity retained across Wrap for errors.Is
	err      error       // Wrapped cause (for errors.Unwrap)
	attrs    []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements multi-error unwrapping so that errors.Is matches both
// the original sentinel value and the wrapped cause.
func (e *Error) Unwrap() []error {
	chain := make([]error, 0, 2)

	if e.sentinel != nil {
		chain = append(chain, e.sentinel)
	}

	if e.err != nil {
		chain = append(chain, e.err)
	}

	return chain
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error carrying the receiver's message and identity
// along with the underlying cause.
func (e *Error) Wrap(err error) *Error {
	sentinel := e.sentinel
	if sentinel == nil {
		sentinel = e
	}

	return &Error{
		msg:      e.msg,
		sentinel: sentinel,
		err:      err,
		attrs:    e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	sentinel := e.sentinel
	if sentinel == nil {
		sentinel = e
	}

	return &Error{
		msg:      e.msg,
		sentinel: sentinel,
		err:      e.err,
		attrs:    newAttrs,
	}
}
