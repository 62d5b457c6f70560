// Package errors provides structured error types for the wasm-gl library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The four kinds a guest can observe through glGetError are KindInvalidHandle,
// KindOutOfBounds, KindUnsupported and KindBackendFailure.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseHandle, errors.KindInvalidHandle).
//		Entry("glBindVertexArray").
//		Value(id).
//		Detail("vertex array %d was deleted", id).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidHandle("texture", 7)
//	err := errors.OutOfBounds(ptr, count, 4, mem.Size())
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
