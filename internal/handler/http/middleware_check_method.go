// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/starwars-api/internal/utils"
)

// routedMethods are the methods probed when building the Allow header.
var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the handler registered via
// [chi.Mux.MethodNotAllowed].
//
// It probes router for every method the requested path is routed for. When
// at least one exists the response is 405 with an Allow header and
// {"error": "Method not allowed"}; otherwise the path is unknown and the
// response is the JSON 404 of [notFound].
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, requestPath(r))
		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// notFound is the router's NotFound handler.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgNotFound, http.StatusNotFound)
}

func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, method := range routedMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// requestPath mirrors middleware.StripSlashes.
func requestPath(r *http.Request) string {
	path := r.URL.Path
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
