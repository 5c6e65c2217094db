// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"

	"vitrine/internal/models"
	"vitrine/internal/store"
)

func themeAdmin(db *sql.DB) (*Admin, *store.ThemeStore) {
	themes := store.NewThemeStore(db)
	admin := NewAdmin(nil, themes, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	return admin, themes
}

func createTestTheme(t *testing.T, db *sql.DB, themes *store.ThemeStore, name, slug string) *models.Theme {
	t.Helper()
	created, err := themes.Create(&models.Theme{
		Name:           name,
		Slug:           slug,
		PrimaryColor:   "222 47% 31%",
		SecondaryColor: "210 40% 96%",
		AccentColor:    "32 95% 52%",
	})
	if err != nil {
		t.Fatalf("create theme: %v", err)
	}
	t.Cleanup(func() {
		// Raw delete so cleanup works even if the test left it active.
		db.Exec("DELETE FROM themes WHERE id = $1", created.ID)
	})
	return created
}

func TestUpdateThemeDeactivates(t *testing.T) {
	db := testDB(t)
	admin, themes := themeAdmin(db)

	created := createTestTheme(t, db, themes, "Update Off", "update-off")
	if err := themes.Activate(created.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}

	req := httptest.NewRequest("PUT", "/api/themes/"+created.ID.String(),
		strings.NewReader(`{"is_active":false}`))
	req = withChiURLParam(req, "id", created.ID.String())
	rr := httptest.NewRecorder()

	admin.UpdateTheme(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status: got %d, want 200, body %s", rr.Code, rr.Body.String())
	}

	got, err := themes.FindByID(created.ID)
	if err != nil || got == nil {
		t.Fatalf("reload theme: %v", err)
	}
	if got.IsActive {
		t.Error("theme still active after is_active:false update")
	}
	if !strings.Contains(rr.Body.String(), `"is_active":false`) {
		t.Errorf("response should reflect deactivation: %s", rr.Body.String())
	}
}

func TestUpdateThemeActivates(t *testing.T) {
	db := testDB(t)
	admin, themes := themeAdmin(db)

	first := createTestTheme(t, db, themes, "Update On A", "update-on-a")
	second := createTestTheme(t, db, themes, "Update On B", "update-on-b")
	if err := themes.Activate(first.ID); err != nil {
		t.Fatalf("activate first: %v", err)
	}

	req := httptest.NewRequest("PUT", "/api/themes/"+second.ID.String(),
		strings.NewReader(`{"is_active":true}`))
	req = withChiURLParam(req, "id", second.ID.String())
	rr := httptest.NewRecorder()

	admin.UpdateTheme(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status: got %d, want 200, body %s", rr.Code, rr.Body.String())
	}

	got, err := themes.FindByID(second.ID)
	if err != nil || got == nil {
		t.Fatalf("reload theme: %v", err)
	}
	if !got.IsActive {
		t.Error("theme not active after is_active:true update")
	}

	// The single-active invariant must survive the switch.
	var active int
	if err := db.QueryRow("SELECT COUNT(*) FROM themes WHERE is_active = TRUE").Scan(&active); err != nil {
		t.Fatalf("count active: %v", err)
	}
	if active != 1 {
		t.Errorf("active themes: got %d, want 1", active)
	}
}

func TestUpdateThemeColorsOnly(t *testing.T) {
	db := testDB(t)
	admin, themes := themeAdmin(db)

	created := createTestTheme(t, db, themes, "Update Colors", "update-colors")

	req := httptest.NewRequest("PUT", "/api/themes/"+created.ID.String(),
		strings.NewReader(`{"primary_color":"10 50% 50%"}`))
	req = withChiURLParam(req, "id", created.ID.String())
	rr := httptest.NewRecorder()

	admin.UpdateTheme(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status: got %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	got, _ := themes.FindByID(created.ID)
	if got.PrimaryColor != "10 50% 50%" {
		t.Errorf("primary color: got %q", got.PrimaryColor)
	}
	if got.IsActive {
		t.Error("color-only update should not touch is_active")
	}
}
