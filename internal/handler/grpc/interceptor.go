package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TraceIDMetadataKey is the metadata key carrying the trace ID both ways.
const TraceIDMetadataKey = "x-trace-id"

// withTraceAndLogging takes the trace ID from the incoming metadata or
// generates one, returns it in the response header, attaches a logger
// carrying it to the context and logs every call.
func (h *Handler) withTraceAndLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := traceIDFromMetadata(ctx)
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	ctx, log := h.logger.WithTraceID(utils.WithTraceID(ctx, traceID), traceID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func traceIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(TraceIDMetadataKey); len(values) > 0 {
		return values[0]
	}
	return ""
}
