// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Preview state machine tests. The draft buffer needs a real Valkey, so
// these skip when it is unreachable; the persistent stores are faked.
package preview

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vitrine/internal/models"
)

func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "draft:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// fakeContentStore is an in-memory ContentPersister.
type fakeContentStore struct {
	doc     models.SiteContentDocument
	saveErr error
	saves   int
}

func (f *fakeContentStore) LoadContent() (models.SiteContentDocument, error) {
	return f.doc, nil
}

func (f *fakeContentStore) SaveContent(doc models.SiteContentDocument) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.doc = doc
	f.saves++
	return nil
}

// fakeThemeStore is an in-memory ThemePersister.
type fakeThemeStore struct {
	themes   map[uuid.UUID]*models.Theme
	activeID uuid.UUID
	saveErr  error
}

func newFakeThemeStore() *fakeThemeStore {
	return &fakeThemeStore{themes: make(map[uuid.UUID]*models.Theme)}
}

func (f *fakeThemeStore) FindActive() (*models.Theme, error) {
	if t, ok := f.themes[f.activeID]; ok {
		return t, nil
	}
	return nil, nil
}

func (f *fakeThemeStore) Create(t *models.Theme) (*models.Theme, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	created := *t
	created.ID = uuid.New()
	f.themes[created.ID] = &created
	return &created, nil
}

func (f *fakeThemeStore) Update(id uuid.UUID, upd models.ThemeUpdate) (*models.Theme, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	t, ok := f.themes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.PrimaryColor != nil {
		t.PrimaryColor = *upd.PrimaryColor
	}
	return t, nil
}

func (f *fakeThemeStore) Activate(id uuid.UUID) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.themes[id]; !ok {
		return errors.New("not found")
	}
	for tid, t := range f.themes {
		t.IsActive = tid == id
	}
	f.activeID = id
	return nil
}

func testManager(t *testing.T) (*Manager, *fakeContentStore, *fakeThemeStore) {
	t.Helper()
	client := testValkeyClient(t)
	drafts := NewDraftStore(client, time.Minute)
	contents := &fakeContentStore{doc: models.DefaultSiteContent()}
	themes := newFakeThemeStore()
	return NewManager(drafts, contents, themes), contents, themes
}

func TestContentPreviewLifecycle(t *testing.T) {
	m, contents, _ := testManager(t)
	ctx := context.Background()
	sid := uuid.NewString()

	// Published state: effective value is the persisted document.
	doc, previewing := m.EffectiveContent(ctx, sid)
	if previewing {
		t.Fatal("previewing before any draft")
	}
	if doc.Hero.Title != contents.doc.Hero.Title {
		t.Fatalf("effective != persisted: %q", doc.Hero.Title)
	}

	// Start a preview: the draft governs immediately for this session.
	draft := models.DefaultSiteContent()
	draft.Hero.Title = "Draft headline"
	m.StartContentPreview(ctx, sid, draft, "/admin/content")

	doc, previewing = m.EffectiveContent(ctx, sid)
	if !previewing || doc.Hero.Title != "Draft headline" {
		t.Fatalf("draft not effective: previewing=%v title=%q", previewing, doc.Hero.Title)
	}

	// Another session still sees the persisted value.
	otherDoc, otherPreviewing := m.EffectiveContent(ctx, uuid.NewString())
	if otherPreviewing || otherDoc.Hero.Title == "Draft headline" {
		t.Fatal("draft leaked to another session")
	}

	// Publish: persisted value updates, draft is gone.
	returnURL, err := m.PublishContent(ctx, sid)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if returnURL != "/admin/content" {
		t.Errorf("return url = %q", returnURL)
	}
	if contents.doc.Hero.Title != "Draft headline" {
		t.Errorf("persisted title = %q", contents.doc.Hero.Title)
	}
	if _, previewing = m.EffectiveContent(ctx, sid); previewing {
		t.Error("still previewing after publish")
	}
}

func TestContentPreviewCancel(t *testing.T) {
	m, contents, _ := testManager(t)
	ctx := context.Background()
	sid := uuid.NewString()

	draft := models.DefaultSiteContent()
	draft.Hero.Title = "Never published"
	m.StartContentPreview(ctx, sid, draft, "/admin/content")

	returnURL := m.CancelContent(ctx, sid)
	if returnURL != "/admin/content" {
		t.Errorf("return url = %q", returnURL)
	}

	doc, previewing := m.EffectiveContent(ctx, sid)
	if previewing {
		t.Error("still previewing after cancel")
	}
	if doc.Hero.Title == "Never published" {
		t.Error("cancelled draft still effective")
	}
	if contents.saves != 0 {
		t.Errorf("cancel should not persist, saves = %d", contents.saves)
	}
}

func TestPublishWithoutDraft(t *testing.T) {
	m, _, _ := testManager(t)

	_, err := m.PublishContent(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNoDraft) {
		t.Errorf("err = %v, want ErrNoDraft", err)
	}
}

// TestPublishFailureKeepsDraft verifies the retry contract: a failed
// publish leaves the draft active.
func TestPublishFailureKeepsDraft(t *testing.T) {
	m, contents, _ := testManager(t)
	ctx := context.Background()
	sid := uuid.NewString()

	draft := models.DefaultSiteContent()
	draft.Hero.Title = "Fragile"
	m.StartContentPreview(ctx, sid, draft, "/admin")

	contents.saveErr = errors.New("disk full")
	if _, err := m.PublishContent(ctx, sid); err == nil {
		t.Fatal("publish should fail")
	}

	doc, previewing := m.EffectiveContent(ctx, sid)
	if !previewing || doc.Hero.Title != "Fragile" {
		t.Fatal("draft lost after failed publish")
	}

	// Retry after the failure clears up.
	contents.saveErr = nil
	if _, err := m.PublishContent(ctx, sid); err != nil {
		t.Fatalf("retry publish: %v", err)
	}
	if contents.doc.Hero.Title != "Fragile" {
		t.Errorf("persisted title = %q", contents.doc.Hero.Title)
	}
}

// TestCorruptDraftIsNoDraft verifies that unparseable draft payloads are
// treated as "no draft" instead of failing reads.
func TestCorruptDraftIsNoDraft(t *testing.T) {
	client := testValkeyClient(t)
	drafts := NewDraftStore(client, time.Minute)
	contents := &fakeContentStore{doc: models.DefaultSiteContent()}
	m := NewManager(drafts, contents, newFakeThemeStore())

	ctx := context.Background()
	sid := uuid.NewString()
	if err := client.Set(ctx, "draft:"+string(KindContent)+":"+sid, "}}garbage{{", time.Minute).Err(); err != nil {
		t.Fatalf("seed corrupt draft: %v", err)
	}

	doc, previewing := m.EffectiveContent(ctx, sid)
	if previewing {
		t.Error("corrupt draft reported as active")
	}
	if doc.Hero.Title != contents.doc.Hero.Title {
		t.Error("corrupt draft changed effective content")
	}

	if _, err := m.PublishContent(ctx, sid); !errors.Is(err, ErrNoDraft) {
		t.Errorf("publish with corrupt draft: err = %v, want ErrNoDraft", err)
	}
}

func TestThemePreviewLifecycle(t *testing.T) {
	m, _, themes := testManager(t)
	ctx := context.Background()
	sid := uuid.NewString()

	// Seed a published active theme.
	active, err := themes.Create(&models.Theme{Name: "Base", Slug: "base", PrimaryColor: "0 0% 0%"})
	if err != nil {
		t.Fatalf("seed theme: %v", err)
	}
	if err := themes.Activate(active.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}

	// Preview a brand-new theme (no ID yet).
	draft := models.Theme{Name: "Neon", Slug: "neon", PrimaryColor: "300 100% 50%"}
	m.StartThemePreview(ctx, sid, draft, "/admin/themes")

	effective, previewing := m.EffectiveTheme(ctx, sid)
	if !previewing || effective.Name != "Neon" {
		t.Fatalf("draft theme not effective: previewing=%v name=%q", previewing, effective.Name)
	}

	// Other sessions keep the published theme.
	otherTheme, otherPreviewing := m.EffectiveTheme(ctx, uuid.NewString())
	if otherPreviewing || otherTheme == nil || otherTheme.Name != "Base" {
		t.Fatal("draft theme leaked to another session")
	}

	// Publish: the new theme is created and becomes the single active one.
	if _, err := m.PublishTheme(ctx, sid); err != nil {
		t.Fatalf("publish theme: %v", err)
	}

	published, previewing := m.EffectiveTheme(ctx, sid)
	if previewing {
		t.Error("still previewing after publish")
	}
	if published == nil || published.Name != "Neon" || !published.IsActive {
		t.Fatalf("published theme wrong: %+v", published)
	}
	if base := themes.themes[active.ID]; base.IsActive {
		t.Error("previous active theme still active")
	}
}

func TestThemePublishFailureKeepsDraft(t *testing.T) {
	m, _, themes := testManager(t)
	ctx := context.Background()
	sid := uuid.NewString()

	m.StartThemePreview(ctx, sid, models.Theme{Name: "Doomed", Slug: "doomed"}, "")

	themes.saveErr = errors.New("constraint violation")
	if _, err := m.PublishTheme(ctx, sid); err == nil {
		t.Fatal("publish should fail")
	}

	if _, previewing := m.EffectiveTheme(ctx, sid); !previewing {
		t.Error("draft lost after failed publish")
	}
}
