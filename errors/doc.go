// Package errors provides structured error types for the simload bindings.
//
// Errors are categorized by Phase (where in the boundary crossing the
// error occurred) and Kind (error category). The Error type includes the
// offending table and entry names plus a cause chain.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.InvalidUTF8(errors.PhaseMarshal, data)
//	err := errors.NewMissingEntriesError("context", []string{"trace", "rnd"})
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
