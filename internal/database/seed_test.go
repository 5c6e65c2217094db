// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed only creates data when no users exist, so calling it twice must
	// be safe. We don't clear the database first because other test packages
	// may be running concurrently against the same database.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	// Verify admin user exists.
	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = 'admin@vitrine.local'").Scan(&userCount); err != nil {
		t.Fatalf("count admin users: %v", err)
	}
	if userCount < 1 {
		t.Errorf("expected at least 1 admin user, got %d", userCount)
	}

	// Verify the starter theme exists. Other test packages may toggle which
	// theme is active, so we only check for its presence here.
	var themeCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM themes WHERE slug = 'default'").Scan(&themeCount); err != nil {
		t.Fatalf("count starter themes: %v", err)
	}
	if themeCount < 1 {
		t.Error("expected starter theme after seed")
	}
}
