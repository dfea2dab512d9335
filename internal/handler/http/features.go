package http

import (
	"net/http"

	"github.com/MKhiriev/go-feature-serving/internal/utils"
	"github.com/MKhiriev/go-feature-serving/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getOnlineFeatures(w http.ResponseWriter, r *http.Request) {
	var request models.OnlineRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	response, err := h.services.ServingService.GetOnlineFeatures(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, response, http.StatusOK)
}

func (h *Handler) getOnlineFeaturesV2(w http.ResponseWriter, r *http.Request) {
	var request models.OnlineRequestV2
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	response, err := h.services.ServingService.GetOnlineFeaturesV2(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, response, http.StatusOK)
}

// getBatchFeatures registers a batch job and answers 202 with the pending job.
func (h *Handler) getBatchFeatures(w http.ResponseWriter, r *http.Request) {
	var request models.BatchRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	job, err := h.services.ServingService.GetBatchFeatures(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/jobs/"+job.ID)
	h.writeJSON(w, r, job, http.StatusAccepted)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.services.ServingService.GetJob(r.Context(), chi.URLParam(r, "jobID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, job, http.StatusOK)
}
