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

// ReviewStore manages customer reviews in the database.
type ReviewStore struct {
	db *sql.DB
}

// NewReviewStore returns a new ReviewStore.
func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

const reviewColumns = `id, author_name, rating, body, approved, created_at, updated_at`

// scanReview scans a row into a Review struct.
func scanReview(scanner interface{ Scan(...any) error }) (*models.Review, error) {
	var r models.Review
	err := scanner.Scan(
		&r.ID, &r.AuthorName, &r.Rating, &r.Body,
		&r.Approved, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns reviews, newest first. When approvedOnly is true, pending
// reviews are excluded (the storefront view).
func (s *ReviewStore) List(approvedOnly bool) ([]models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if approvedOnly {
		query += ` WHERE approved = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var items []models.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

// FindByID retrieves a review by ID. Returns nil if not found.
func (s *ReviewStore) FindByID(id uuid.UUID) (*models.Review, error) {
	row := s.db.QueryRow(`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
	r, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find review by id: %w", err)
	}
	return r, nil
}

// Create inserts a new review and returns it. Reviews start unapproved
// unless the caller says otherwise (admin-entered testimonials).
func (s *ReviewStore) Create(r *models.Review) (*models.Review, error) {
	row := s.db.QueryRow(`
		INSERT INTO reviews (author_name, rating, body, approved)
		VALUES ($1, $2, $3, $4)
		RETURNING `+reviewColumns,
		r.AuthorName, r.Rating, r.Body, r.Approved,
	)
	created, err := scanReview(row)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return created, nil
}

// Update modifies an existing review.
func (s *ReviewStore) Update(r *models.Review) error {
	result, err := s.db.Exec(`
		UPDATE reviews SET
			author_name = $1, rating = $2, body = $3, approved = $4, updated_at = NOW()
		WHERE id = $5
	`, r.AuthorName, r.Rating, r.Body, r.Approved, r.ID)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// SetApproved flips a review's approval flag.
func (s *ReviewStore) SetApproved(id uuid.UUID, approved bool) error {
	result, err := s.db.Exec(`
		UPDATE reviews SET approved = $1, updated_at = NOW() WHERE id = $2
	`, approved, id)
	if err != nil {
		return fmt.Errorf("approve review: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a review by ID.
func (s *ReviewStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
