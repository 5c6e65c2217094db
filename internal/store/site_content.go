// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"vitrine/internal/models"
)

// SiteContentStore manages the single site content document, stored as one
// JSON value in the site_settings key/value table.
type SiteContentStore struct {
	db *sql.DB
}

// NewSiteContentStore returns a new SiteContentStore backed by the given database.
func NewSiteContentStore(db *sql.DB) *SiteContentStore {
	return &SiteContentStore{db: db}
}

// LoadContent fetches the stored document and merges it over the built-in
// defaults, so callers always receive a fully populated document. An absent
// row yields pure defaults. Read errors are returned alongside defaults so
// the storefront can keep rendering.
func (s *SiteContentStore) LoadContent() (models.SiteContentDocument, error) {
	var raw []byte
	err := s.db.QueryRow(
		`SELECT value FROM site_settings WHERE key = $1`,
		models.SiteContentKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.DefaultSiteContent(), nil
	}
	if err != nil {
		return models.DefaultSiteContent(), fmt.Errorf("load site content: %w", err)
	}
	return models.MergeSiteContent(raw), nil
}

// SaveContent upserts the entire document under the fixed key. There is no
// partial-field update and no optimistic concurrency check; the last writer
// wins.
func (s *SiteContentStore) SaveContent(doc models.SiteContentDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal site content: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO site_settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		models.SiteContentKey, raw, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("save site content: %w", err)
	}
	return nil
}
