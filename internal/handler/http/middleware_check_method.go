// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-feature-serving/internal/utils"
	"github.com/MKhiriev/go-feature-serving/models"
	"github.com/go-chi/chi/v5"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with an "Allow" header listing the methods registered for
// the requested path and a JSON error body, so clients of the serving API
// get the same error envelope for every failure. Routes of mounted
// sub-routers are matched too.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			routeNotFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: models.ErrorBody{
			Code:    models.ErrorCodeMethodNotAllowed,
			Message: "method " + r.Method + " is not allowed for " + r.URL.Path,
		}}, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range knownMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: models.ErrorBody{
		Code:    models.ErrorCodeNotFound,
		Message: "route " + r.URL.Path + " not found",
	}}, http.StatusNotFound)
}
