// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"vitrine/internal/models"
)

// CatalogStore manages downloadable PDF catalogs in the database.
type CatalogStore struct {
	db *sql.DB
}

// NewCatalogStore returns a new CatalogStore.
func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

const catalogColumns = `id, title, description, file_key, cover_image, category_id, featured, created_at, updated_at`

// scanCatalog scans a row into a Catalog struct.
func scanCatalog(scanner interface{ Scan(...any) error }) (*models.Catalog, error) {
	var c models.Catalog
	err := scanner.Scan(
		&c.ID, &c.Title, &c.Description, &c.FileKey, &c.CoverImage,
		&c.CategoryID, &c.Featured, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns catalogs matching the filter, newest first.
func (s *CatalogStore) List(f models.CatalogFilter) ([]models.Catalog, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalogs WHERE TRUE`
	var args []any

	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += ` AND featured = $` + strconv.Itoa(len(args))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		query += ` AND category_id = $` + strconv.Itoa(len(args))
	}

	limit := f.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	args = append(args, limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, f.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	defer rows.Close()

	var items []models.Catalog
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catalog: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a catalog by ID. Returns nil if not found.
func (s *CatalogStore) FindByID(id uuid.UUID) (*models.Catalog, error) {
	row := s.db.QueryRow(`SELECT `+catalogColumns+` FROM catalogs WHERE id = $1`, id)
	c, err := scanCatalog(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find catalog by id: %w", err)
	}
	return c, nil
}

// Create inserts a new catalog and returns it.
func (s *CatalogStore) Create(c *models.Catalog) (*models.Catalog, error) {
	row := s.db.QueryRow(`
		INSERT INTO catalogs (title, description, file_key, cover_image, category_id, featured)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+catalogColumns,
		c.Title, c.Description, c.FileKey, c.CoverImage, c.CategoryID, c.Featured,
	)
	created, err := scanCatalog(row)
	if err != nil {
		return nil, fmt.Errorf("create catalog: %w", err)
	}
	return created, nil
}

// Update modifies an existing catalog.
func (s *CatalogStore) Update(c *models.Catalog) error {
	result, err := s.db.Exec(`
		UPDATE catalogs SET
			title = $1, description = $2, file_key = $3, cover_image = $4,
			category_id = $5, featured = $6, updated_at = NOW()
		WHERE id = $7
	`, c.Title, c.Description, c.FileKey, c.CoverImage, c.CategoryID, c.Featured, c.ID)
	if err != nil {
		return fmt.Errorf("update catalog: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a catalog by ID.
func (s *CatalogStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM catalogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	return nil
}
