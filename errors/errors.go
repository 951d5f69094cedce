package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the boundary crossing the error occurred
type Phase string

const (
	PhaseMarshal  Phase = "marshal"  // text to/from host buffers
	PhaseValidate Phase = "validate" // function table validation
	PhaseDispatch Phase = "dispatch" // calls through a handle
	PhaseOption   Phase = "option"   // option retrieval
	PhaseHost     Phase = "host"     // host-side bookkeeping
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidUTF8   Kind = "invalid_utf8"
	KindNullByte      Kind = "null_byte"
	KindUnterminated  Kind = "unterminated"
	KindMissingEntry  Kind = "missing_entry"
	KindNilHandle     Kind = "nil_handle"
	KindDoubleResolve Kind = "double_resolve"
	KindNotFound      Kind = "not_found"
	KindInvalidInput  Kind = "invalid_input"
	KindRunFailed     Kind = "run_failed"
)

// Error is the structured error type used throughout the bindings
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Table  string
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

	if e.Table != "" || e.Entry != "" {
		b.WriteString(" at ")
		b.WriteString(e.Table)
		if e.Entry != "" {
			b.WriteByte('#')
			b.WriteString(e.Entry)
		}
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

// Convenience constructors for common error patterns

// InvalidUTF8 creates an invalid UTF-8 error with a bounded hex preview
// of the offending bytes
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// NullByte creates an embedded null byte error
func NullByte(phase Phase, index int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullByte,
		Detail: fmt.Sprintf("embedded null byte at index %d", index),
		Value:  index,
	}
}

// Unterminated creates an error for a host buffer with no null terminator
func Unterminated(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnterminated,
		Detail: "buffer has no null terminator",
	}
}

// NilHandle creates an error for a zero handle passed at construction
func NilHandle(table string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindNilHandle,
		Table:  table,
		Detail: "handle is zero",
	}
}

// DoubleResolve creates a protocol-misuse error for a promise that was
// already sent or released
func DoubleResolve() *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindDoubleResolve,
		Table:  "promise",
		Entry:  "send",
		Detail: "promise already resolved or released",
	}
}

// NotFound creates a not-found error
func NotFound(what, name string) *Error {
	return &Error{
		Phase:  PhaseHost,
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

// RunFailed creates an error recording that the run ended with a fatal
// trace, naming the trace entry that caused it
func RunFailed(event string) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindRunFailed,
		Detail: fmt.Sprintf("run failed: %s", event),
	}
}

// MissingEntriesError is returned when a function table is missing
// entries the wrapper intends to call, typically due to a host version
// mismatch. All absent entries are reported at once so the diagnostic is
// actionable in a single pass.
type MissingEntriesError struct {
	Table   string
	Entries []string
}

// NewMissingEntriesError creates an error for a table with absent entries
func NewMissingEntriesError(table string, entries []string) *MissingEntriesError {
	return &MissingEntriesError{
		Table:   table,
		Entries: entries,
	}
}

func (e *MissingEntriesError) Error() string {
	if len(e.Entries) == 0 {
		return fmt.Sprintf("[validate] missing_entry: %s table has no absent entries listed", e.Table)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s table is missing %d function(s):", e.Table, len(e.Entries))
	for _, entry := range e.Entries {
		b.WriteString("\n  - ")
		b.WriteString(e.Table)
		b.WriteByte('#')
		b.WriteString(entry)
	}
	return b.String()
}

// Is reports whether target matches this error type
func (e *MissingEntriesError) Is(target error) bool {
	_, ok := target.(*MissingEntriesError)
	return ok
}
