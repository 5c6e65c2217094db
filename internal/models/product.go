// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a storefront catalog item. Price is stored in cents to avoid
// floating-point drift in cart totals.
type Product struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents"`
	ImageURL    string     `json:"image_url"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Featured    bool       `json:"featured"`
	Active      bool       `json:"active"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProductFilter narrows product listings. Zero values mean "no constraint";
// Limit 0 falls back to the store default.
type ProductFilter struct {
	Featured   *bool
	CategoryID *uuid.UUID
	Limit      int
	Offset     int
}
