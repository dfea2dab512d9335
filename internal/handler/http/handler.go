package http

import (
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/service"
	"github.com/MKhiriev/go-feature-serving/internal/utils"
)

type Handler struct {
	services  *service.Services
	collector *metrics.Collector
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. collector may be nil, in which case
// /metrics is not served.
func NewHandler(services *service.Services, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		collector: collector,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
