// Package grpc implements the gRPC transport of the feature serving API.
//
// The service is registered as "feast.serving.ServingService". Messages are
// the JSON encoding of the models package types, carried with the "json"
// content subtype (application/grpc+json), so no generated protobuf code is
// needed. Clients select the codec with grpc.CallContentSubtype(CodecName).
package grpc

import (
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/service"
	"github.com/MKhiriev/go-feature-serving/internal/utils"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Register attaches the serving service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ServingServiceDesc, h)
}

// ServerOptions returns the options the gRPC server needs for this handler.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceAndLogging),
	}
}
