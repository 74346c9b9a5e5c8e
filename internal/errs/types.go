package errs

import (
	"net/http"
)

// Codes for conversion failures. Both map to 400: the request was
// well-formed HTTP but named an unknown unit or an unusable quantity.
const (
	CodeUnrecognizedUnit = "UNRECOGNIZED_UNIT"
	CodeInvalidQuantity  = "INVALID_QUANTITY"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Optional extras:
//   - code: custom code string (nil defaults to "BAD_REQUEST")
//   - errors: field-level validation errors
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError, with an optional custom
// code.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError for rate-limited clients.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500 HTTPError. The message is the generic
// status text, never the underlying error, so internals stay out of
// responses.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewUnrecognizedUnitError creates the 400 returned when a request names a
// unit outside the registry. The message carries the offending token and the
// accepted tokens, as produced by the unit package.
func NewUnrecognizedUnitError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeUnrecognizedUnit,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInvalidQuantityError creates the 400 returned when a request's quantity
// is missing, not a number, or not finite.
func NewInvalidQuantityError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeInvalidQuantity,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}
