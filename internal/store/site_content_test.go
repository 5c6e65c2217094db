// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"vitrine/internal/models"
)

func TestSiteContentLoadDefaultsWhenAbsent(t *testing.T) {
	db := testDB(t)
	store := NewSiteContentStore(db)

	// Make sure no row exists.
	if _, err := db.Exec(`DELETE FROM site_settings WHERE key = $1`, models.SiteContentKey); err != nil {
		t.Fatalf("clear row: %v", err)
	}

	doc, err := store.LoadContent()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	defaults := models.DefaultSiteContent()
	if doc.Hero.Title != defaults.Hero.Title {
		t.Errorf("hero title = %q, want default %q", doc.Hero.Title, defaults.Hero.Title)
	}
	if len(doc.Sections) != len(defaults.Sections) {
		t.Errorf("sections = %d entries, want %d", len(doc.Sections), len(defaults.Sections))
	}
}

func TestSiteContentSaveLoadRoundTrip(t *testing.T) {
	db := testDB(t)
	store := NewSiteContentStore(db)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM site_settings WHERE key = $1`, models.SiteContentKey)
	})

	doc := models.DefaultSiteContent()
	doc.Hero.Title = "Round trip"
	doc.Announcement.Enabled = true
	doc.Announcement.Text = "Grand opening"
	doc.Sections[models.SectionReviews] = false

	if err := store.SaveContent(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.LoadContent()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Hero.Title != "Round trip" {
		t.Errorf("hero title = %q", loaded.Hero.Title)
	}
	if !loaded.Announcement.Enabled || loaded.Announcement.Text != "Grand opening" {
		t.Errorf("announcement = %+v", loaded.Announcement)
	}
	if loaded.Sections[models.SectionReviews] {
		t.Error("reviews toggle lost")
	}

	// A second save overwrites wholesale (last writer wins).
	doc.Hero.Title = "Second write"
	if err := store.SaveContent(doc); err != nil {
		t.Fatalf("save again: %v", err)
	}
	loaded, err = store.LoadContent()
	if err != nil {
		t.Fatalf("load again: %v", err)
	}
	if loaded.Hero.Title != "Second write" {
		t.Errorf("hero title after overwrite = %q", loaded.Hero.Title)
	}
}

// TestSiteContentCorruptRow verifies a bad stored value degrades to
// defaults rather than erroring out the storefront.
func TestSiteContentCorruptRow(t *testing.T) {
	db := testDB(t)
	store := NewSiteContentStore(db)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM site_settings WHERE key = $1`, models.SiteContentKey)
	})

	// JSONB rejects invalid JSON, so corrupt here means valid JSON of the
	// wrong shape.
	if _, err := db.Exec(`
		INSERT INTO site_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		models.SiteContentKey, `"just a string"`,
	); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	doc, err := store.LoadContent()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defaults := models.DefaultSiteContent()
	if doc.Hero.Title != defaults.Hero.Title {
		t.Errorf("hero title = %q, want default", doc.Hero.Title)
	}
}
