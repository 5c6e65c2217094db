// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"vitrine/internal/models"
)

// ThemeStore handles all theme database operations.
type ThemeStore struct {
	db *sql.DB
}

// NewThemeStore creates a new ThemeStore.
func NewThemeStore(db *sql.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// themeColumns lists the columns selected in theme queries.
const themeColumns = `id, name, slug, primary_color, secondary_color, accent_color, banner_image, is_active, created_at, updated_at`

// scanTheme scans a theme row from the result set.
func scanTheme(scanner interface{ Scan(...any) error }) (*models.Theme, error) {
	var t models.Theme
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Slug, &t.PrimaryColor, &t.SecondaryColor,
		&t.AccentColor, &t.BannerImage, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all themes ordered by creation date descending.
func (s *ThemeStore) List() ([]models.Theme, error) {
	rows, err := s.db.Query(`
		SELECT ` + themeColumns + `
		FROM themes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var items []models.Theme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a theme by its UUID. Returns nil if not found.
func (s *ThemeStore) FindByID(id uuid.UUID) (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT `+themeColumns+` FROM themes WHERE id = $1`, id)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme by id: %w", err)
	}
	return t, nil
}

// FindBySlug retrieves a theme by its unique slug. Returns nil if not found.
func (s *ThemeStore) FindBySlug(slug string) (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT `+themeColumns+` FROM themes WHERE slug = $1`, slug)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme by slug: %w", err)
	}
	return t, nil
}

// FindActive returns the currently active theme, or nil if none is active.
func (s *ThemeStore) FindActive() (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT ` + themeColumns + ` FROM themes WHERE is_active = TRUE LIMIT 1`)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active theme: %w", err)
	}
	return t, nil
}

// Create inserts a new theme and returns it with the generated ID.
// A slug collision returns ErrSlugTaken.
func (s *ThemeStore) Create(t *models.Theme) (*models.Theme, error) {
	row := s.db.QueryRow(`
		INSERT INTO themes (name, slug, primary_color, secondary_color, accent_color, banner_image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+themeColumns,
		t.Name, t.Slug, t.PrimaryColor, t.SecondaryColor, t.AccentColor, t.BannerImage,
	)
	created, err := scanTheme(row)
	if err != nil {
		if uniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create theme: %w", err)
	}
	return created, nil
}

// Update applies a partial edit to a theme. Only non-nil fields change,
// and is_active never changes here: callers route flips through Activate
// and Deactivate so the single-active invariant holds.
func (s *ThemeStore) Update(id uuid.UUID, upd models.ThemeUpdate) (*models.Theme, error) {
	row := s.db.QueryRow(`
		UPDATE themes SET
			name = COALESCE($1, name),
			slug = COALESCE($2, slug),
			primary_color = COALESCE($3, primary_color),
			secondary_color = COALESCE($4, secondary_color),
			accent_color = COALESCE($5, accent_color),
			banner_image = COALESCE($6, banner_image),
			updated_at = NOW()
		WHERE id = $7
		RETURNING `+themeColumns,
		upd.Name, upd.Slug, upd.PrimaryColor, upd.SecondaryColor,
		upd.AccentColor, upd.BannerImage, id,
	)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		if uniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update theme: %w", err)
	}
	return t, nil
}

// Activate sets a theme as active and deactivates all others in a single
// transaction, so no observer can see zero or two active themes. The
// partial unique index on (is_active) WHERE is_active backs this up.
func (s *ThemeStore) Activate(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE themes SET is_active = FALSE WHERE is_active = TRUE AND id <> $1`, id); err != nil {
		return fmt.Errorf("deactivate themes: %w", err)
	}

	result, err := tx.Exec(`UPDATE themes SET is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("activate theme: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// Deactivate sets a specific theme as inactive, leaving the storefront on
// built-in colors.
func (s *ThemeStore) Deactivate(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE themes SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate theme: %w", err)
	}
	return nil
}

// Delete removes a theme. The active theme cannot be deleted.
func (s *ThemeStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM themes WHERE id = $1 AND is_active = FALSE`, id)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("theme not found or is currently active")
	}
	return nil
}
