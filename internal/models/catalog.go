// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Catalog is a downloadable PDF price list or product brochure. The PDF
// lives in the private bucket and is served through presigned URLs; the
// cover image lives in the public bucket.
type Catalog struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	FileKey     string     `json:"file_key"`
	CoverImage  string     `json:"cover_image"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Featured    bool       `json:"featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CatalogFilter narrows catalog listings.
type CatalogFilter struct {
	Featured   *bool
	CategoryID *uuid.UUID
	Limit      int
	Offset     int
}
