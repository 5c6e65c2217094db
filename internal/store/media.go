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

// MediaStore tracks uploaded files in the database.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore returns a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, filename, content_type, size_bytes, bucket, storage_key, thumb_key, uploaded_by, created_at`

// List returns media items, newest first, with limit/offset paging.
func (s *MediaStore) List(limit, offset int) ([]models.Media, error) {
	rows, err := s.db.Query(`
		SELECT `+mediaColumns+`
		FROM media ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(
			&m.ID, &m.Filename, &m.ContentType, &m.SizeBytes,
			&m.Bucket, &m.StorageKey, &m.ThumbKey, &m.UploadedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// FindByID retrieves a media item by ID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	var m models.Media
	err := s.db.QueryRow(`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id).Scan(
		&m.ID, &m.Filename, &m.ContentType, &m.SizeBytes,
		&m.Bucket, &m.StorageKey, &m.ThumbKey, &m.UploadedBy, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return &m, nil
}

// Create records an uploaded file and returns it with the generated ID.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	err := s.db.QueryRow(`
		INSERT INTO media (filename, content_type, size_bytes, bucket, storage_key, thumb_key, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, m.Filename, m.ContentType, m.SizeBytes, m.Bucket, m.StorageKey, m.ThumbKey, m.UploadedBy).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return m, nil
}

// Delete removes a media record by ID.
func (s *MediaStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
