// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package preview

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vitrine/internal/models"
)

// ErrNoDraft is returned by publish operations when the session has no
// pending draft of the requested kind.
var ErrNoDraft = errors.New("no pending draft")

// ContentPersister is the slice of the settings store the manager needs.
type ContentPersister interface {
	LoadContent() (models.SiteContentDocument, error)
	SaveContent(models.SiteContentDocument) error
}

// ThemePersister is the slice of the theme store the manager needs.
type ThemePersister interface {
	FindActive() (*models.Theme, error)
	Create(*models.Theme) (*models.Theme, error)
	Update(uuid.UUID, models.ThemeUpdate) (*models.Theme, error)
	Activate(uuid.UUID) error
}

// Manager is the preview state machine. Per session and kind it is in one
// of three states: Published (no draft, persisted value governs),
// Previewing (draft governs what this session renders), or the transient
// Publishing (during the commit write). A publish failure leaves the draft
// intact so the admin can retry; a cancel restores the persisted value.
type Manager struct {
	drafts   *DraftStore
	contents ContentPersister
	themes   ThemePersister
}

// NewManager wires the draft buffer to the persistent stores.
func NewManager(drafts *DraftStore, contents ContentPersister, themes ThemePersister) *Manager {
	return &Manager{drafts: drafts, contents: contents, themes: themes}
}

// EffectiveContent resolves what the given session should render: the
// draft if one is active, otherwise the persisted document. The persisted
// document is always loaded (merged over defaults) so a later cancel has a
// correct value to fall back to; a load error degrades to defaults rather
// than failing the storefront.
func (m *Manager) EffectiveContent(ctx context.Context, sessionID string) (models.SiteContentDocument, bool) {
	draft := m.drafts.GetContent(ctx, sessionID)
	if draft.IsActive && draft.Content != nil {
		return *draft.Content, true
	}
	doc, err := m.contents.LoadContent()
	if err != nil {
		// LoadContent already returned defaults; nothing else to do.
		return doc, false
	}
	return doc, false
}

// EffectiveTheme resolves the theme the given session should render.
// Returns nil when no theme is active and no draft exists.
func (m *Manager) EffectiveTheme(ctx context.Context, sessionID string) (*models.Theme, bool) {
	draft := m.drafts.GetTheme(ctx, sessionID)
	if draft.IsActive && draft.Theme != nil {
		return draft.Theme, true
	}
	active, err := m.themes.FindActive()
	if err != nil {
		return nil, false
	}
	return active, false
}

// StartContentPreview stages a content draft for the session, replacing
// any prior unpublished draft. Published → Previewing.
func (m *Manager) StartContentPreview(ctx context.Context, sessionID string, doc models.SiteContentDocument, returnURL string) {
	m.drafts.SetContent(ctx, sessionID, ContentDraft{
		IsActive:  true,
		Content:   &doc,
		ReturnURL: returnURL,
	})
}

// StartThemePreview stages a theme draft for the session.
func (m *Manager) StartThemePreview(ctx context.Context, sessionID string, theme models.Theme, returnURL string) {
	m.drafts.SetTheme(ctx, sessionID, ThemeDraft{
		IsActive:  true,
		Theme:     &theme,
		ReturnURL: returnURL,
	})
}

// CancelContent discards the session's content draft and returns the
// navigation target recorded when the preview started. Previewing →
// Published; the persisted value governs again immediately.
func (m *Manager) CancelContent(ctx context.Context, sessionID string) string {
	draft := m.drafts.GetContent(ctx, sessionID)
	m.drafts.Clear(ctx, KindContent, sessionID)
	return draft.ReturnURL
}

// CancelTheme discards the session's theme draft.
func (m *Manager) CancelTheme(ctx context.Context, sessionID string) string {
	draft := m.drafts.GetTheme(ctx, sessionID)
	m.drafts.Clear(ctx, KindTheme, sessionID)
	return draft.ReturnURL
}

// PublishContent commits the session's content draft to the settings
// store. On success the draft is cleared and the published value is what
// every visitor sees; on failure the draft is left untouched.
func (m *Manager) PublishContent(ctx context.Context, sessionID string) (string, error) {
	draft := m.drafts.GetContent(ctx, sessionID)
	if !draft.IsActive || draft.Content == nil {
		return "", ErrNoDraft
	}

	if err := m.contents.SaveContent(*draft.Content); err != nil {
		return "", fmt.Errorf("publish content: %w", err)
	}

	m.drafts.Clear(ctx, KindContent, sessionID)
	return draft.ReturnURL, nil
}

// PublishTheme commits the session's theme draft: field edits are saved
// (or the theme is created if it has no ID yet) and the theme is made
// active. The draft survives any failure.
func (m *Manager) PublishTheme(ctx context.Context, sessionID string) (string, error) {
	draft := m.drafts.GetTheme(ctx, sessionID)
	if !draft.IsActive || draft.Theme == nil {
		return "", ErrNoDraft
	}

	t := draft.Theme
	if t.ID == uuid.Nil {
		created, err := m.themes.Create(t)
		if err != nil {
			return "", fmt.Errorf("publish theme: %w", err)
		}
		t = created
	} else {
		if _, err := m.themes.Update(t.ID, models.ThemeUpdate{
			Name:           &t.Name,
			Slug:           &t.Slug,
			PrimaryColor:   &t.PrimaryColor,
			SecondaryColor: &t.SecondaryColor,
			AccentColor:    &t.AccentColor,
			BannerImage:    t.BannerImage,
		}); err != nil {
			return "", fmt.Errorf("publish theme: %w", err)
		}
	}

	if err := m.themes.Activate(t.ID); err != nil {
		return "", fmt.Errorf("publish theme activate: %w", err)
	}

	m.drafts.Clear(ctx, KindTheme, sessionID)
	return draft.ReturnURL, nil
}

// State summarises the session's pending drafts for the admin UI.
type State struct {
	Content ContentDraft `json:"content"`
	Theme   ThemeDraft   `json:"theme"`
}

// State returns both draft buffers for the session.
func (m *Manager) State(ctx context.Context, sessionID string) State {
	return State{
		Content: m.drafts.GetContent(ctx, sessionID),
		Theme:   m.drafts.GetTheme(ctx, sessionID),
	}
}
