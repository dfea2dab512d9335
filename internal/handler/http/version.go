package http

import (
	"net/http"

	"github.com/MKhiriev/go-feature-serving/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	h.writeJSON(w, r, models.AppVersionResponse{Version: serverVersion}, http.StatusOK)
}
