package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feature-serving/internal/app"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/service"
	"github.com/MKhiriev/go-feature-serving/internal/store"
	"github.com/MKhiriev/go-feature-serving/internal/utils"
	"github.com/MKhiriev/go-feature-serving/internal/validators"
	"github.com/MKhiriev/go-feature-serving/models"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyJobID:             http.StatusBadRequest,
	service.ErrJobNotFound:            http.StatusNotFound,
	service.ErrUnqualifiedFeatureName: http.StatusBadRequest,

	utils.ErrEmptyBody:   http.StatusBadRequest,
	utils.ErrInvalidJSON: http.StatusBadRequest,

	store.ErrTransient: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	if validators.IsValidationError(err) {
		return http.StatusBadRequest
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorBody builds the client-facing description of err. Validation errors
// keep their exact message; internal failures are not described.
func errorBody(err error, status int) models.ErrorBody {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return models.ErrorBody{
			Code:    models.ErrorCodeInvalidArgument,
			Kind:    vErr.Kind.String(),
			Message: vErr.Message,
		}
	}

	switch status {
	case http.StatusBadRequest:
		return models.ErrorBody{Code: models.ErrorCodeInvalidArgument, Message: err.Error()}
	case http.StatusNotFound:
		return models.ErrorBody{Code: models.ErrorCodeNotFound, Message: err.Error()}
	case http.StatusServiceUnavailable:
		return models.ErrorBody{Code: models.ErrorCodeUnavailable, Message: app.MsgStorageUnavailable}
	default:
		return models.ErrorBody{Code: models.ErrorCodeInternal, Message: app.MsgInternalServerError}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromContextOr(r.Context(), h.logger)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.writeJSON(w, r, models.ErrorResponse{Error: errorBody(err, status)}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromContextOr(r.Context(), h.logger).Err(err).Msg("error writing response")
	}
}
