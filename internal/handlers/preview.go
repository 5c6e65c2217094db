// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vitrine/internal/models"
	"vitrine/internal/preview"
	"vitrine/internal/theme"
)

// Preview serves the draft/preview endpoints for the admin session.
type Preview struct {
	manager *preview.Manager
}

// NewPreview creates the preview handler group.
func NewPreview(manager *preview.Manager) *Preview {
	return &Preview{manager: manager}
}

// previewKind resolves the {kind} route parameter.
func previewKind(r *http.Request) (preview.Kind, bool) {
	switch chi.URLParam(r, "kind") {
	case "content":
		return preview.KindContent, true
	case "theme":
		return preview.KindTheme, true
	}
	return "", false
}

// Start stages a draft for this session and flips its effective value
// immediately. A prior unpublished draft of the same kind is replaced.
func (p *Preview) Start(w http.ResponseWriter, r *http.Request) {
	kind, ok := previewKind(r)
	if !ok {
		apiError(w, http.StatusNotFound, "Unknown preview kind.")
		return
	}

	var req struct {
		Content   json.RawMessage `json:"content"`
		Theme     *models.Theme   `json:"theme"`
		ReturnURL string          `json:"return_url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	switch kind {
	case preview.KindContent:
		if len(req.Content) == 0 {
			apiError(w, http.StatusBadRequest, "A content document is required.")
			return
		}
		doc := models.MergeSiteContent(req.Content)
		p.manager.StartContentPreview(r.Context(), sessionID(r), doc, req.ReturnURL)

	case preview.KindTheme:
		if req.Theme == nil {
			apiError(w, http.StatusBadRequest, "A theme is required.")
			return
		}
		if msg := theme.ValidateTheme(req.Theme); msg != "" {
			apiError(w, http.StatusBadRequest, msg)
			return
		}
		p.manager.StartThemePreview(r.Context(), sessionID(r), *req.Theme, req.ReturnURL)
	}

	writeJSON(w, http.StatusOK, map[string]any{"previewing": true})
}

// Cancel discards the session's draft. The persisted value governs again
// on the very next read.
func (p *Preview) Cancel(w http.ResponseWriter, r *http.Request) {
	kind, ok := previewKind(r)
	if !ok {
		apiError(w, http.StatusNotFound, "Unknown preview kind.")
		return
	}

	var returnURL string
	switch kind {
	case preview.KindContent:
		returnURL = p.manager.CancelContent(r.Context(), sessionID(r))
	case preview.KindTheme:
		returnURL = p.manager.CancelTheme(r.Context(), sessionID(r))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"previewing": false,
		"return_url": returnURL,
	})
}

// Publish commits the session's draft. On success the draft is cleared
// and every visitor sees the new value; on failure the draft stays put so
// the admin can retry or cancel.
func (p *Preview) Publish(w http.ResponseWriter, r *http.Request) {
	kind, ok := previewKind(r)
	if !ok {
		apiError(w, http.StatusNotFound, "Unknown preview kind.")
		return
	}

	var (
		returnURL string
		err       error
	)
	switch kind {
	case preview.KindContent:
		returnURL, err = p.manager.PublishContent(r.Context(), sessionID(r))
	case preview.KindTheme:
		returnURL, err = p.manager.PublishTheme(r.Context(), sessionID(r))
	}

	if errors.Is(err, preview.ErrNoDraft) {
		apiError(w, http.StatusConflict, "Nothing to publish: no preview is active.")
		return
	}
	if err != nil {
		slog.Error("publish draft", "kind", kind, "error", err)
		apiError(w, http.StatusInternalServerError, "Publishing failed. Your preview is still active; try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"published":  true,
		"return_url": returnURL,
	})
}

// State reports the session's pending drafts, so the admin UI can show
// its preview banner after a reload.
func (p *Preview) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.manager.State(r.Context(), sessionID(r)))
}
