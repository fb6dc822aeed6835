// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/market-proxy/internal/utils"
	"github.com/MKhiriev/market-proxy/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405, a request whose method is not registered for the
// matched path gets 404 with an {"detail": "Not Found"} body, so unsupported
// methods look exactly like unknown routes. A request whose method is
// registered is handed back to the router.
//
// Routes are matched by exact pattern against [http.Request.URL.Path];
// parameterised or wildcard segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// notFound answers unknown routes the same way as unsupported methods.
func notFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
