// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers for the vitrine JSON API:
// the public storefront surface, the authenticated back-office surface,
// and the auth endpoints.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vitrine/internal/middleware"
)

// maxBodySize caps JSON request bodies (1 MB). Media uploads have their
// own, larger limit.
const maxBodySize = 1 << 20

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response", "error", err)
	}
}

// apiError writes a JSON error body. Messages are user-facing; internal
// detail belongs in logs.
func apiError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a size-limited JSON body into v, rejecting unknown
// garbage with a 400-worthy error.
func decodeJSON(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}

// urlID parses the {id} route parameter as a UUID.
func urlID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// sessionID returns the current session's ID, or "" when the request has
// no session. Draft and cart lookups treat "" as "nothing stored".
func sessionID(r *http.Request) string {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return ""
	}
	return sess.ID
}
