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

// ServiceStore manages service offerings in the database.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore returns a new ServiceStore.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceColumns = `id, name, slug, description, price_text, icon, active, sort_order, created_at, updated_at`

// scanService scans a row into a Service struct.
func scanService(scanner interface{ Scan(...any) error }) (*models.Service, error) {
	var sv models.Service
	err := scanner.Scan(
		&sv.ID, &sv.Name, &sv.Slug, &sv.Description, &sv.PriceText,
		&sv.Icon, &sv.Active, &sv.SortOrder, &sv.CreatedAt, &sv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

// List returns services ordered by sort_order. When activeOnly is true,
// inactive services are excluded (the storefront view).
func (s *ServiceStore) List(activeOnly bool) ([]models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY sort_order, name`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var items []models.Service
	for rows.Next() {
		sv, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, *sv)
	}
	return items, rows.Err()
}

// FindByID retrieves a service by ID. Returns nil if not found.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	sv, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return sv, nil
}

// Create inserts a new service and returns it. A slug collision returns
// ErrSlugTaken.
func (s *ServiceStore) Create(sv *models.Service) (*models.Service, error) {
	row := s.db.QueryRow(`
		INSERT INTO services (name, slug, description, price_text, icon, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+serviceColumns,
		sv.Name, sv.Slug, sv.Description, sv.PriceText, sv.Icon, sv.Active, sv.SortOrder,
	)
	created, err := scanService(row)
	if err != nil {
		if uniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create service: %w", err)
	}
	return created, nil
}

// Update modifies an existing service.
func (s *ServiceStore) Update(sv *models.Service) error {
	result, err := s.db.Exec(`
		UPDATE services SET
			name = $1, slug = $2, description = $3, price_text = $4,
			icon = $5, active = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
	`, sv.Name, sv.Slug, sv.Description, sv.PriceText, sv.Icon, sv.Active, sv.SortOrder, sv.ID)
	if err != nil {
		if uniqueViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("update service: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a service by ID.
func (s *ServiceStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
