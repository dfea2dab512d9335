package handler

import (
	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/handler/grpc"
	"github.com/MKhiriev/go-feature-serving/internal/handler/http"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has an address
// configured.
func NewHandlers(services *service.Services, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, collector, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
