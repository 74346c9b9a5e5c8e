package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "quantity", "error": "is required" }
type FieldError struct {
	// Field is the field name the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type every API response serializes on failure.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "UNRECOGNIZED_UNIT").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether clients may replace Message with their own copy.
//   - Errors: per-field validation errors, when applicable.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
}

// Error satisfies the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError. It matches on type only,
// not on Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced, leaving
// the original untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format, e.g. "Bad Request" -> "BAD_REQUEST".
// Used to build stable machine-readable codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
