// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer testimonial. Only approved reviews are shown on the
// storefront; submissions start unapproved.
type Review struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Body       string    `json:"body"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
