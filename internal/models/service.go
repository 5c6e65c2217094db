// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering presented alongside products (repairs,
// installation, consulting and similar). PriceText is free-form because
// services are usually quoted ("from $50", "on request").
type Service struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PriceText   string    `json:"price_text"`
	Icon        string    `json:"icon"`
	Active      bool      `json:"active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// serviceIcons is the closed set of icon keys the storefront knows how to
// render. Values are the identifiers shipped with the frontend icon set.
var serviceIcons = map[string]string{
	"wrench":   "wrench",
	"truck":    "truck",
	"sparkles": "sparkles",
	"shield":   "shield-check",
	"tag":      "tag",
	"gift":     "gift",
	"star":     "star",
	"heart":    "heart",
	"clock":    "clock",
	"phone":    "phone",
}

// defaultServiceIcon is returned for unknown or empty icon keys so the
// storefront never renders a broken icon.
const defaultServiceIcon = "sparkles"

// ResolveIcon maps a stored icon key to a renderable icon identifier,
// falling back to a default for unknown keys.
func ResolveIcon(key string) string {
	if id, ok := serviceIcons[key]; ok {
		return id
	}
	return defaultServiceIcon
}

// IconKeys returns the accepted icon keys, for admin form validation.
func IconKeys() []string {
	keys := make([]string, 0, len(serviceIcons))
	for k := range serviceIcons {
		keys = append(keys, k)
	}
	return keys
}
