package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDispatch Phase = "dispatch" // entry-point decoding
	PhaseMemory   Phase = "memory"   // linear memory views
	PhaseHandle   Phase = "handle"   // handle table lookups
	PhaseBackend  Phase = "backend"  // host graphics backend
	PhaseHost     Phase = "host"     // host module registration
	PhaseLink     Phase = "link"     // guest import checks
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidHandle  Kind = "invalid_handle"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindUnsupported    Kind = "unsupported"
	KindBackendFailure Kind = "backend_failure"
	KindInvalidInput   Kind = "invalid_input"
	KindNotFound       Kind = "not_found"
	KindMissingImport  Kind = "missing_import"
	KindRegistration   Kind = "registration"
	KindInstantiation  Kind = "instantiation"
)

// Error is the structured error type used throughout the shim
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Entry  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Entry != "" {
		b.WriteString(" in ")
		b.WriteString(e.Entry)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Entry sets the entry point name
func (b *Builder) Entry(name string) *Builder {
	b.err.Entry = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidHandle creates an error for an id that is not live in its category
func InvalidHandle(category string, id uint32) *Error {
	return &Error{
		Phase:  PhaseHandle,
		Kind:   KindInvalidHandle,
		Detail: fmt.Sprintf("%s %d is not a live object", category, id),
		Value:  id,
	}
}

// OutOfBounds creates an error for a memory range outside linear memory
func OutOfBounds(pointer uint32, count, elemSize int64, size uint32) *Error {
	return &Error{
		Phase:  PhaseMemory,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("range [%d, +%d*%d) exceeds memory size %d", pointer, count, elemSize, size),
		Value:  pointer,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Backend wraps a failure reported by the graphics backend
func Backend(op string, cause error) *Error {
	return &Error{
		Phase:  PhaseBackend,
		Kind:   KindBackendFailure,
		Detail: op,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingImportsError is returned when a guest imports entry points the host does not provide
type MissingImportsError struct {
	Module  string
	Imports []string
}

// NewMissingImportsError creates a missing imports error with sorted names.
func NewMissingImportsError(module string, imports []string) *MissingImportsError {
	sorted := append([]string(nil), imports...)
	sort.Strings(sorted)
	return &MissingImportsError{Module: module, Imports: sorted}
}

func (e *MissingImportsError) Error() string {
	var b strings.Builder
	b.WriteString("missing ")
	b.WriteString(e.Module)
	b.WriteString(" imports: ")
	b.WriteString(strings.Join(e.Imports, ", "))
	return b.String()
}

// Is matches any *Error with KindMissingImport.
func (e *MissingImportsError) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.Kind == KindMissingImport
	}
	return false
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration creates a registration error
func Registration(phase Phase, namespace, name string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register %s#%s", namespace, name),
		Cause:  cause,
	}
}

// Instantiation creates an instantiation error
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindInstantiation,
		Detail: "instantiate host module",
		Cause:  cause,
	}
}
