package service

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oknozor/conversion-api/internal/server"
	"github.com/oknozor/conversion-api/internal/unit"
)

// ErrInvalidQuantity reports a quantity that is not a finite number.
var ErrInvalidQuantity = errors.New("quantity must be a finite number")

// ErrResultOutOfRange reports a conversion whose result does not fit in a
// float64.
var ErrResultOutOfRange = errors.New("conversion result out of range")

// ConversionRequest is a fully resolved conversion: units are registry
// values, quantity is the scalar to convert.
type ConversionRequest struct {
	From     unit.Unit
	To       unit.Unit
	Quantity float64
}

// ConversionResult holds the converted quantity. The value is exact output
// of the double-precision computation; no rounding is applied.
type ConversionResult struct {
	Value float64
}

// ConversionService converts quantities between weight units. It holds no
// per-request state and is safe for concurrent use.
type ConversionService struct {
	server *server.Server
}

func NewConversionService(s *server.Server) *ConversionService {
	return &ConversionService{
		server: s,
	}
}

// Convert computes req.Quantity expressed in req.To units.
//
// The from->to rate is derived with a single division of the units' gram
// factors, so converting a unit to itself multiplies by exactly 1.0 and
// returns the quantity bit-for-bit for any finite input. Negative and zero
// quantities flow through the formula unchanged. A result that overflows
// float64 fails with ErrResultOutOfRange.
func (cs *ConversionService) Convert(ctx context.Context, req ConversionRequest) (ConversionResult, error) {
	if math.IsNaN(req.Quantity) || math.IsInf(req.Quantity, 0) {
		return ConversionResult{}, ErrInvalidQuantity
	}

	// Units normally arrive through unit.Parse, but Convert is also the
	// entry point for callers constructing Unit values directly.
	if !req.From.Valid() {
		return ConversionResult{}, &unit.UnrecognizedUnitError{Token: string(req.From)}
	}
	if !req.To.Valid() {
		return ConversionResult{}, &unit.UnrecognizedUnitError{Token: string(req.To)}
	}

	rate := req.From.Factor() / req.To.Factor()
	result := req.Quantity * rate

	// Factors are finite and positive, so a finite quantity can only go
	// non-finite by overflowing to an infinity.
	if math.IsInf(result, 0) {
		return ConversionResult{}, ErrResultOutOfRange
	}

	zerolog.Ctx(ctx).Debug().
		Str("from", req.From.String()).
		Str("to", req.To.String()).
		Float64("quantity", req.Quantity).
		Float64("rate", rate).
		Float64("result", result).
		Msg("conversion computed")

	cs.recordConversion(req.From, req.To)

	return ConversionResult{Value: result}, nil
}

// ConvertTokens resolves raw unit tokens through the registry and converts.
// The from token is resolved before the to token, so when both are
// unrecognized the error carries the from token.
func (cs *ConversionService) ConvertTokens(ctx context.Context, from, to string, quantity float64) (ConversionResult, error) {
	fromUnit, err := unit.Parse(from)
	if err != nil {
		return ConversionResult{}, err
	}

	toUnit, err := unit.Parse(to)
	if err != nil {
		return ConversionResult{}, err
	}

	return cs.Convert(ctx, ConversionRequest{
		From:     fromUnit,
		To:       toUnit,
		Quantity: quantity,
	})
}

// recordConversion emits a custom APM event per successful conversion.
// No-op when telemetry is disabled.
func (cs *ConversionService) recordConversion(from, to unit.Unit) {
	if cs.server.LoggerService != nil && cs.server.LoggerService.GetApplication() != nil {
		cs.server.LoggerService.GetApplication().RecordCustomEvent("ConversionComputed", map[string]interface{}{
			"from": from.String(),
			"to":   to.String(),
		})
	}
}
