// Package errors provides structured error handling for the facet
// widget runtime.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindNoWidget indicates a widget id not present in the registry.
	KindNoWidget
	// KindNoComponent indicates a widget without the requested capability.
	KindNoComponent
	// KindNoHandler indicates removal of a handler id that is not registered.
	KindNoHandler
	// KindActionLoop indicates the scheduler exceeded its round cap.
	KindActionLoop
	// KindBorrow indicates a reentrant mutation of runtime state,
	// a programming error rather than a recoverable condition.
	KindBorrow
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindNoWidget:
		return "no widget"
	case KindNoComponent:
		return "no component"
	case KindNoHandler:
		return "no handler"
	case KindActionLoop:
		return "action loop"
	case KindBorrow:
		return "borrow"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the facet runtime.
type Error struct {
	// Op is the operation that failed (e.g., "widget.Context.Spatial").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error, if any.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with an operation and kind.
func New(op string, kind Kind) *Error {
	return &Error{Op: op, Kind: kind}
}

// Wrap creates an error with an operation and kind around an
// underlying cause.
func Wrap(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf extracts the Kind from an error chain. It returns KindUnknown
// for nil errors and errors created outside this package.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widget.Manager.Execute").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the facet runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
