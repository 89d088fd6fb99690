package qerr

import (
	"fmt"
	"runtime"
	"strings"
)

// Category classifies errors by their nature and appropriate handling strategy.
type Category int

const (
	// CategoryUser represents errors caused by invalid caller input.
	// Examples: a non-positive partition count, a partition count exceeding
	// the cardinality of the requested range. These are fixable by changing
	// the request and are never retried internally.
	CategoryUser Category = iota

	// CategoryContract represents violations of a collaborator contract.
	// Examples: a column type outside the supported set reaching range
	// arithmetic, a cardinality model inconsistent with the supplied range.
	// These indicate a bug in the calling planner, not a data condition.
	CategoryContract

	// CategoryInternal represents unexpected internal failures.
	CategoryInternal
)

// Error is a structured error with planner context.
type Error struct {
	// Code is a unique identifier for this error type (e.g., "INVALID_PARTITION_COUNT").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category Category

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	Detail string

	// Operation identifies the operation being performed when the error occurred.
	// Examples: "Partition", "Increment", "ColumnCardinality".
	Operation string

	// Component identifies the component where the error originated.
	// Examples: "UniformRangePartitioner", "CardinalityProvider".
	Component string

	// Cause is the underlying error, if any. Enables errors.Is/errors.As
	// traversal through Unwrap.
	Cause error

	// Stack contains the call stack captured when the error was created.
	Stack []uintptr
}

// New creates a new Error with the specified category, code, and message.
func New(category Category, code, message string) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with operation and component context.
// If err is already an *Error, the existing error is enriched in place
// (only fields not already set).
func Wrap(err error, code, operation, component string) *Error {
	if err == nil {
		return nil
	}

	if qe, ok := err.(*Error); ok {
		if qe.Operation == "" {
			qe.Operation = operation
		}
		if qe.Component == "" {
			qe.Component = component
		}
		return qe
	}

	return &Error{
		Code:      code,
		Category:  CategoryInternal,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// WithDetail sets the detail text and returns the error for chaining.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithContext sets the operation and component and returns the error for chaining.
func (e *Error) WithContext(operation, component string) *Error {
	e.Operation = operation
	e.Component = component
	return e
}

// captureStack captures the current call stack, skipping the frames of this
// package so the trace starts at the error origin.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard error interface.
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component) caused by: underlying error
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *Error) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}
