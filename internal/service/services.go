package service

import (
	"github.com/oknozor/conversion-api/internal/server"
)

// Services is the container that groups the business-logic layer, passed as
// one object into handler construction.
type Services struct {
	Conversion *ConversionService
}

// NewServices constructs the service container from the application
// container.
func NewServices(s *server.Server) *Services {
	return &Services{
		Conversion: NewConversionService(s),
	}
}
