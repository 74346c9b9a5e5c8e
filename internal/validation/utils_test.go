package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oknozor/conversion-api/internal/errs"
)

var validate = validator.New()

type samplePayload struct {
	Name  string `json:"name" validate:"required,min=3"`
	Count int    `json:"count" validate:"max=10"`
	Mode  string `json:"mode" validate:"omitempty,oneof=fast slow"`
}

func (p *samplePayload) Validate() error {
	return validate.Struct(p)
}

type mappedPayload struct {
	Amount *float64 `json:"amount"`
}

func (p *mappedPayload) Validate() error { return nil }

func (p *mappedPayload) MapBindError(field string) error {
	if field == "amount" {
		return errs.NewInvalidQuantityError("amount must be a number")
	}
	return nil
}

type passthroughPayload struct{}

func (p *passthroughPayload) Validate() error {
	return errs.NewInvalidQuantityError("quantity is required")
}

type customRulePayload struct {
	OK bool `json:"ok"`
}

func (p *customRulePayload) Validate() error {
	if !p.OK {
		return CustomValidationErrors{{Field: "ok", Message: "must be true"}}
	}
	return nil
}

func newBindContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	require.Error(t, err)
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	t.Parallel()

	c := newBindContext(t, `{"name":"widget","count":3,"mode":"fast"}`)
	payload := &samplePayload{}

	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "widget", payload.Name)
	assert.Equal(t, 3, payload.Count)
}

func TestBindAndValidateTagFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
		wantError string
	}{
		{"missing required", `{"count":1}`, "name", "is required"},
		{"below min length", `{"name":"ab"}`, "name", "must be at least 3 characters"},
		{"above max", `{"name":"widget","count":99}`, "count", "must not exceed 10"},
		{"outside oneof", `{"name":"widget","mode":"medium"}`, "mode", "must be one of: fast slow"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newBindContext(t, tc.body)
			err := BindAndValidate(c, &samplePayload{})

			httpErr := asHTTPError(t, err)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, "Validation failed", httpErr.Message)
			assert.True(t, httpErr.Override)

			require.NotEmpty(t, httpErr.Errors)
			found := false
			for _, fe := range httpErr.Errors {
				if fe.Field == tc.wantField {
					found = true
					assert.Equal(t, tc.wantError, fe.Error)
				}
			}
			assert.True(t, found, "expected a field error for %q", tc.wantField)
		})
	}
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	t.Parallel()

	c := newBindContext(t, `{"name":`)
	err := BindAndValidate(c, &samplePayload{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.Equal(t, "Invalid request body", httpErr.Message)
}

func TestBindAndValidateTypeMismatch(t *testing.T) {
	t.Parallel()

	c := newBindContext(t, `{"name":"widget","count":"three"}`)
	err := BindAndValidate(c, &samplePayload{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.Contains(t, httpErr.Message, "count")

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "count", httpErr.Errors[0].Field)
	assert.Equal(t, "must be a number", httpErr.Errors[0].Error)
}

func TestBindAndValidateBindErrorMapper(t *testing.T) {
	t.Parallel()

	c := newBindContext(t, `{"amount":"NaN"}`)
	err := BindAndValidate(c, &mappedPayload{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, errs.CodeInvalidQuantity, httpErr.Code)
	assert.Equal(t, "amount must be a number", httpErr.Message)
}

func TestBindAndValidateHTTPErrorPassthrough(t *testing.T) {
	t.Parallel()

	c := newBindContext(t, `{}`)
	err := BindAndValidate(c, &passthroughPayload{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, errs.CodeInvalidQuantity, httpErr.Code)
	assert.Equal(t, "quantity is required", httpErr.Message)
}

func TestBindAndValidateCustomValidationErrors(t *testing.T) {
	t.Parallel()

	c := newBindContext(t, `{"ok":false}`)
	err := BindAndValidate(c, &customRulePayload{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, "Validation failed", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "ok", httpErr.Errors[0].Field)
	assert.Equal(t, "must be true", httpErr.Errors[0].Error)
}
