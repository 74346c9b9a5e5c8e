package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/oknozor/conversion-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern: a request struct with validator tags plus a Validate()
// method running validator.Struct, or fully custom checks returning
// CustomValidationErrors or an *errs.HTTPError.
type Validatable interface {
	Validate() error
}

// BindErrorMapper is optionally implemented by payload types that want to
// refine transport bind failures into domain errors. MapBindError receives
// the JSON field that failed to decode; returning nil keeps the generic
// bad-request mapping.
type BindErrorMapper interface {
	MapBindError(field string) error
}

// CustomValidationError represents a single validation issue for a specific
// field, for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from the request body.
//  2. Bind failures are classified by error type: a JSON type mismatch
//     yields a field-specific error (optionally refined by the payload via
//     BindErrorMapper); anything else is a generic bad request.
//  3. payload.Validate() applies validation rules; *errs.HTTPError values
//     pass through unchanged, everything else is converted into a 400 with
//     field-level errors.
//
// payload must be a pointer so Bind can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return classifyBindError(payload, err)
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// classifyBindError turns an Echo bind failure into an application error.
// Echo wraps decode failures in *echo.HTTPError with the underlying JSON
// error attached as Internal.
func classifyBindError(payload Validatable, err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(echoErr.Internal, &typeErr) && typeErr.Field != "" {
			if mapper, ok := payload.(BindErrorMapper); ok {
				if mapped := mapper.MapBindError(typeErr.Field); mapped != nil {
					return mapped
				}
			}

			return errs.NewBadRequestError(
				fmt.Sprintf("Invalid value for field '%s'", typeErr.Field),
				false, nil,
				[]errs.FieldError{{Field: typeErr.Field, Error: "must be a " + jsonTypeName(typeErr.Type)}},
			)
		}
	}

	return errs.NewBadRequestError("Invalid request body", false, nil, nil)
}

// jsonTypeName names the expected JSON value for a Go target type.
func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "valid " + t.Kind().String()
	}
}

// extractValidationError converts a validation failure into a message plus
// field errors. It understands validator.ValidationErrors and
// CustomValidationErrors; anything else keeps its own message with no field
// detail.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, custom := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: custom.Field,
				Error: custom.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
