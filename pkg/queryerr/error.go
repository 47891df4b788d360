// Package queryerr provides the structured error type the optimizer and
// executor use for the five fatal error kinds the core can raise.
// Per-row soft failures (a dropped row during filter or join key
// extraction) never become a queryerr.Error; they are absorbed
// silently, matching the contract in the component docs.
package queryerr

import (
	"fmt"
	"runtime"
	"strings"
)

// Category classifies which of the five fatal kinds an Error is.
type Category int

const (
	// TableNotFound: catalog lookup failed.
	TableNotFound Category = iota
	// SchemaMismatch: a column could not be resolved and no projection
	// survived, or some other fatal schema failure.
	SchemaMismatch
	// InvalidPlan: a plan node is missing a required child, or carries
	// an unsupported node kind or join type.
	InvalidPlan
	// ParseError: raised by the AST collaborator; out of scope for this
	// module but reserved so callers can classify upstream failures
	// alongside the core's own errors.
	ParseError
	// OptimizationFailed: no candidate plan could be generated.
	OptimizationFailed
)

func (c Category) String() string {
	switch c {
	case TableNotFound:
		return "TABLE_NOT_FOUND"
	case SchemaMismatch:
		return "SCHEMA_MISMATCH"
	case InvalidPlan:
		return "INVALID_PLAN"
	case ParseError:
		return "PARSE_ERROR"
	case OptimizationFailed:
		return "OPTIMIZATION_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Error is a structured, chainable error describing a fatal failure in
// optimize() or execute().
type Error struct {
	Category  Category
	Message   string
	Detail    string
	Operation string
	Component string
	Cause     error
	Stack     []uintptr
}

// New creates an Error of the given category with a message.
func New(category Category, message string) *Error {
	return &Error{
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap attaches operation/component context to err. If err is already
// a *Error, the context is merged in (without overwriting fields
// already set, and the category argument is ignored); otherwise a new
// Error of the given category is built around it.
func Wrap(err error, category Category, operation, component string) *Error {
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
		Category:  category,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Category, e.Message))

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

// Unwrap enables errors.Is/errors.As chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}
