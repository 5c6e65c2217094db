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

// defaultListLimit caps unfiltered listings so a large catalog cannot be
// pulled in one request.
const defaultListLimit = 50

// ProductStore manages products in the database.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, slug, description, price_cents, image_url, category_id, featured, active, sort_order, created_at, updated_at`

// scanProduct scans a row into a Product struct.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &p.ImageURL,
		&p.CategoryID, &p.Featured, &p.Active, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns active products matching the filter, ordered by sort_order.
func (s *ProductStore) List(f models.ProductFilter) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active = TRUE`
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
	query += ` ORDER BY sort_order, name LIMIT $` + strconv.Itoa(len(args))
	args = append(args, f.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListAll returns every product regardless of active flag, for the admin screen.
func (s *ProductStore) ListAll() ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product by ID. Returns nil if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Create inserts a new product and returns it. A slug collision returns
// ErrSlugTaken.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	row := s.db.QueryRow(`
		INSERT INTO products (name, slug, description, price_cents, image_url, category_id, featured, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+productColumns,
		p.Name, p.Slug, p.Description, p.PriceCents, p.ImageURL,
		p.CategoryID, p.Featured, p.Active, p.SortOrder,
	)
	created, err := scanProduct(row)
	if err != nil {
		if uniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// Update modifies an existing product.
func (s *ProductStore) Update(p *models.Product) error {
	result, err := s.db.Exec(`
		UPDATE products SET
			name = $1, slug = $2, description = $3, price_cents = $4,
			image_url = $5, category_id = $6, featured = $7, active = $8,
			sort_order = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Name, p.Slug, p.Description, p.PriceCents, p.ImageURL,
		p.CategoryID, p.Featured, p.Active, p.SortOrder, p.ID)
	if err != nil {
		if uniqueViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("update product: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product by ID.
func (s *ProductStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
