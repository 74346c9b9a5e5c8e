// Package errs defines custom error types and utilities.
//
// Its purpose is to give API clients meaningful and consistent error
// payloads: HTTPError carries a machine-readable code alongside the
// human-readable message, and FieldError reports per-field input problems.
package errs
