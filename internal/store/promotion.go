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

// PromotionStore manages promotions in the database.
type PromotionStore struct {
	db *sql.DB
}

// NewPromotionStore returns a new PromotionStore.
func NewPromotionStore(db *sql.DB) *PromotionStore {
	return &PromotionStore{db: db}
}

const promotionColumns = `id, title, description, image_url, discount_text, starts_at, ends_at, active, created_at, updated_at`

// scanPromotion scans a row into a Promotion struct.
func scanPromotion(scanner interface{ Scan(...any) error }) (*models.Promotion, error) {
	var p models.Promotion
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.DiscountText,
		&p.StartsAt, &p.EndsAt, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all promotions, newest first.
func (s *PromotionStore) List() ([]models.Promotion, error) {
	rows, err := s.db.Query(`SELECT ` + promotionColumns + ` FROM promotions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()

	var items []models.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListCurrent returns promotions that are active and within their date
// window, for the storefront.
func (s *PromotionStore) ListCurrent() ([]models.Promotion, error) {
	rows, err := s.db.Query(`
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE active = TRUE
		  AND (starts_at IS NULL OR starts_at <= NOW())
		  AND (ends_at IS NULL OR ends_at >= NOW())
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list current promotions: %w", err)
	}
	defer rows.Close()

	var items []models.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a promotion by ID. Returns nil if not found.
func (s *PromotionStore) FindByID(id uuid.UUID) (*models.Promotion, error) {
	row := s.db.QueryRow(`SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id)
	p, err := scanPromotion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find promotion by id: %w", err)
	}
	return p, nil
}

// Create inserts a new promotion and returns it.
func (s *PromotionStore) Create(p *models.Promotion) (*models.Promotion, error) {
	row := s.db.QueryRow(`
		INSERT INTO promotions (title, description, image_url, discount_text, starts_at, ends_at, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+promotionColumns,
		p.Title, p.Description, p.ImageURL, p.DiscountText, p.StartsAt, p.EndsAt, p.Active,
	)
	created, err := scanPromotion(row)
	if err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}
	return created, nil
}

// Update modifies an existing promotion.
func (s *PromotionStore) Update(p *models.Promotion) error {
	result, err := s.db.Exec(`
		UPDATE promotions SET
			title = $1, description = $2, image_url = $3, discount_text = $4,
			starts_at = $5, ends_at = $6, active = $7, updated_at = NOW()
		WHERE id = $8
	`, p.Title, p.Description, p.ImageURL, p.DiscountText, p.StartsAt, p.EndsAt, p.Active, p.ID)
	if err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a promotion by ID.
func (s *PromotionStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}
