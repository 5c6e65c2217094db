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

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description, image_url, sort_order, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.ImageURL, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered by sort_order, with product counts.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.slug, c.description, c.image_url, c.sort_order,
		       c.created_at, c.updated_at,
		       COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.active = TRUE
		GROUP BY c.id
		ORDER BY c.sort_order, c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description,
			&c.ImageURL, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
			&c.ProductCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it. A slug collision returns
// ErrSlugTaken.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO categories (name, slug, description, image_url, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description, c.ImageURL, c.SortOrder,
	)
	created, err := scanCategory(row)
	if err != nil {
		if uniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// Update modifies an existing category.
func (s *CategoryStore) Update(c *models.Category) error {
	result, err := s.db.Exec(`
		UPDATE categories SET
			name = $1, slug = $2, description = $3, image_url = $4,
			sort_order = $5, updated_at = NOW()
		WHERE id = $6
	`, c.Name, c.Slug, c.Description, c.ImageURL, c.SortOrder, c.ID)
	if err != nil {
		if uniqueViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("update category: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category by ID. Products keep existing with their
// category cleared (ON DELETE SET NULL).
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
