// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme is a named color scheme applied globally to the storefront.
// Colors are hue/saturation/lightness triples in the form "210 80% 40%",
// matching the CSS custom-property convention the storefront consumes.
// At most one theme is active at a time.
type Theme struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	AccentColor    string    `json:"accent_color"`
	BannerImage    *string   `json:"banner_image"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ThemeUpdate carries a partial theme edit. Nil fields are left untouched,
// which lets PUT /api/themes/:id accept any subset of columns.
type ThemeUpdate struct {
	Name           *string `json:"name"`
	Slug           *string `json:"slug"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	AccentColor    *string `json:"accent_color"`
	BannerImage    *string `json:"banner_image"`
	IsActive       *bool   `json:"is_active"`
}
