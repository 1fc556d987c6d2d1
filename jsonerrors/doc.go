// Package jsonerrors provides structured error types for the jsontools library.
//
// Import path: github.com/erraggy/jsontools/jsonerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [PathError]: a mutation path that does not resolve to a value
//   - [SyntaxError]: an ill-formed path expression
//   - [DocumentError]: input JSON that could not be scanned during a splice
//   - [TypeError]: a path component applied to a value of the wrong kind
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrPathNotFound]: Matches any [PathError]
//   - [ErrPathInvalid]: Matches any [SyntaxError]
//   - [ErrJSONInvalid]: Matches any [DocumentError]
//   - [ErrTypeMismatch]: Matches any [TypeError]
//
// Only the mutation surface (the mutate package) returns these errors. The
// read surface (the query package) deliberately collapses every failure into
// a not-present result: a path is a question, and missing-or-invalid is a
// normal answer, detected with Result.Exists().
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	out, err := mutate.Set(doc, "a.b.c", "1")
//	if errors.Is(err, jsonerrors.ErrJSONInvalid) {
//	    // The input document itself is broken
//	}
//
// Extract error details with errors.As():
//
//	var pathErr *jsonerrors.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Printf("no value at %s\n", pathErr.Path)
//	}
package jsonerrors
