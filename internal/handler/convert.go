package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/oknozor/conversion-api/internal/errs"
	"github.com/oknozor/conversion-api/internal/server"
	"github.com/oknozor/conversion-api/internal/service"
	"github.com/oknozor/conversion-api/internal/unit"
)

// ConvertRequest is the POST /convert payload.
//
// From and To stay raw strings so unknown or missing units reach the unit
// registry and the response carries its unrecognized-unit message instead
// of a generic validation error. Quantity is a pointer to tell a missing
// field apart from an explicit 0.
type ConvertRequest struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Quantity *float64 `json:"quantity"`
}

// Validate checks the one thing binding cannot: that quantity was present.
// A JSON null binds to a nil pointer without a bind error.
func (r *ConvertRequest) Validate() error {
	if r.Quantity == nil {
		return errs.NewInvalidQuantityError("quantity is required and must be a number")
	}

	return nil
}

// MapBindError classifies a decode failure on the quantity field (wrong JSON
// type, numeric overflow) as an invalid-quantity error rather than a generic
// bad request.
func (r *ConvertRequest) MapBindError(field string) error {
	if field == "quantity" {
		return errs.NewInvalidQuantityError("quantity must be a number")
	}

	return nil
}

// ConvertResponse carries the converted quantity, expressed in the
// request's to unit.
type ConvertResponse struct {
	Result float64 `json:"result"`
}

// ConversionHandler serves the conversion endpoint.
type ConversionHandler struct {
	Handler
	services *service.Services
}

// NewConversionHandler constructs a ConversionHandler.
func NewConversionHandler(s *server.Server, services *service.Services) *ConversionHandler {
	return &ConversionHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// Convert resolves the unit tokens, converts the quantity, and returns the
// result. Domain failures are mapped to their HTTP error codes here.
func (h *ConversionHandler) Convert(c echo.Context, req *ConvertRequest) (*ConvertResponse, error) {
	result, err := h.services.Conversion.ConvertTokens(
		c.Request().Context(),
		req.From,
		req.To,
		*req.Quantity,
	)
	if err != nil {
		return nil, mapConversionError(err)
	}

	return &ConvertResponse{Result: result.Value}, nil
}

// mapConversionError translates service-layer conversion failures into
// HTTP errors. Unknown errors pass through and surface as a 500.
func mapConversionError(err error) error {
	var unrecognized *unit.UnrecognizedUnitError

	switch {
	case errors.As(err, &unrecognized):
		return errs.NewUnrecognizedUnitError(unrecognized.Error())
	case errors.Is(err, service.ErrInvalidQuantity):
		return errs.NewInvalidQuantityError("quantity must be a finite number")
	case errors.Is(err, service.ErrResultOutOfRange):
		return errs.NewInvalidQuantityError("quantity is out of range for this conversion")
	default:
		return err
	}
}
