// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview implements the content/theme staging mechanism: an admin
// composes a draft of the site content document or a theme, previews it on
// the live storefront through their own session without affecting other
// visitors, and then either publishes or cancels it.
package preview

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"vitrine/internal/models"
)

// Kind distinguishes the two draft buffers a session can hold.
type Kind string

const (
	KindContent Kind = "site_content"
	KindTheme   Kind = "theme"
)

// ContentDraft is the session-scoped staging state for the site content
// document. Inactive drafts carry no payload.
type ContentDraft struct {
	IsActive  bool                        `json:"is_active"`
	Content   *models.SiteContentDocument `json:"content,omitempty"`
	ReturnURL string                      `json:"return_url,omitempty"`
}

// ThemeDraft is the session-scoped staging state for a theme.
type ThemeDraft struct {
	IsActive  bool          `json:"is_active"`
	Theme     *models.Theme `json:"theme,omitempty"`
	ReturnURL string        `json:"return_url,omitempty"`
}

// DraftStore keeps at most one pending draft per kind per session in
// Valkey. Keys are derived from the session ID, so drafts are invisible to
// other visitors, survive reloads, and expire with the session.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a draft store. ttl should match the session TTL so
// an orphaned draft never outlives its session.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(kind Kind, sessionID string) string {
	return "draft:" + string(kind) + ":" + sessionID
}

// GetContent returns the session's content draft. A missing or corrupt
// buffer is treated as "no draft", silently — a broken draft must never
// break rendering.
func (d *DraftStore) GetContent(ctx context.Context, sessionID string) ContentDraft {
	var draft ContentDraft
	d.get(ctx, KindContent, sessionID, &draft)
	if draft.Content == nil {
		return ContentDraft{}
	}
	return draft
}

// GetTheme returns the session's theme draft, with the same corrupt-buffer
// semantics as GetContent.
func (d *DraftStore) GetTheme(ctx context.Context, sessionID string) ThemeDraft {
	var draft ThemeDraft
	d.get(ctx, KindTheme, sessionID, &draft)
	if draft.Theme == nil {
		return ThemeDraft{}
	}
	return draft
}

// SetContent stores a content draft. Best-effort: a failed write is logged
// and swallowed, the in-memory copy the caller holds still serves the
// current request.
func (d *DraftStore) SetContent(ctx context.Context, sessionID string, draft ContentDraft) {
	d.set(ctx, KindContent, sessionID, draft)
}

// SetTheme stores a theme draft, best-effort.
func (d *DraftStore) SetTheme(ctx context.Context, sessionID string, draft ThemeDraft) {
	d.set(ctx, KindTheme, sessionID, draft)
}

// Clear removes the session's draft of the given kind.
func (d *DraftStore) Clear(ctx context.Context, kind Kind, sessionID string) {
	if err := d.client.Del(ctx, draftKey(kind, sessionID)).Err(); err != nil {
		slog.Warn("draft clear failed", "kind", kind, "error", err)
	}
}

func (d *DraftStore) get(ctx context.Context, kind Kind, sessionID string, out any) {
	if sessionID == "" {
		return
	}
	payload, err := d.client.Get(ctx, draftKey(kind, sessionID)).Bytes()
	if err == redis.Nil {
		return
	}
	if err != nil {
		slog.Warn("draft read failed", "kind", kind, "error", err)
		return
	}
	if err := json.Unmarshal(payload, out); err != nil {
		// Corrupt buffer: treated as no draft.
		slog.Warn("draft payload corrupt, ignoring", "kind", kind, "error", err)
	}
}

func (d *DraftStore) set(ctx context.Context, kind Kind, sessionID string, draft any) {
	if sessionID == "" {
		return
	}
	payload, err := json.Marshal(draft)
	if err != nil {
		slog.Warn("draft marshal failed", "kind", kind, "error", err)
		return
	}
	if err := d.client.Set(ctx, draftKey(kind, sessionID), payload, d.ttl).Err(); err != nil {
		slog.Warn("draft write failed", "kind", kind, "error", err)
	}
}
