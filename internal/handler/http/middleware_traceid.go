package http

import (
	"net/http"

	"github.com/MKhiriev/go-feature-serving/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID takes the trace ID from the X-Trace-ID header or generates one,
// echoes it in the response and attaches a logger carrying it to the request
// context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		ctx, _ := h.logger.WithTraceID(utils.WithTraceID(r.Context(), traceID), traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
