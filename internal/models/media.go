// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Media is an uploaded file tracked in the database. Images live in the
// public bucket and are referenced by URL; PDFs live in the private bucket
// and are referenced by key.
type Media struct {
	ID          uuid.UUID  `json:"id"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	Bucket      string     `json:"bucket"`
	StorageKey  string     `json:"storage_key"`
	ThumbKey    *string    `json:"thumb_key"`
	UploadedBy  *uuid.UUID `json:"uploaded_by"`
	CreatedAt   time.Time  `json:"created_at"`
}
