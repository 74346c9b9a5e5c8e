package handler

import (
	"github.com/oknozor/conversion-api/internal/server"
	"github.com/oknozor/conversion-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one object.
type Handlers struct {
	Conversion *ConversionHandler
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Conversion: NewConversionHandler(s, services),
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
	}
}
