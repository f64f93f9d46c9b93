// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-column-client/internal/app"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. The status
// API is read-only, so every route answers other methods with 405 and an
// Allow header listing the methods the matched route does register.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		allowed := make([]string, 0, 2)
		for _, method := range []string{http.MethodGet, http.MethodHead} {
			if router.Match(rctx, method, r.URL.Path) {
				allowed = append(allowed, method)
			}
			rctx.Reset()
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		http.Error(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
