// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"vitrine/internal/middleware"
	"vitrine/internal/models"
)

const (
	// maxUploadSize caps a single media upload (20 MB).
	maxUploadSize = 20 << 20

	// thumbWidth is the width of generated image thumbnails.
	thumbWidth = 400

	thumbQuality = 80
)

// allowedUploads maps accepted content types to the file extension used
// for the storage key.
var allowedUploads = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// Upload accepts a multipart file. Images land in the public bucket with a
// JPEG thumbnail alongside; PDFs land in the private bucket and are served
// through presigned URLs.
func (a *Admin) Upload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		apiError(w, http.StatusServiceUnavailable, "File storage is not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		apiError(w, http.StatusBadRequest, "Upload too large or malformed.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiError(w, http.StatusBadRequest, "A \"file\" field is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	// Trust the bytes, not the declared content type.
	contentType := http.DetectContentType(data)
	ext, ok := allowedUploads[contentType]
	if !ok {
		apiError(w, http.StatusUnsupportedMediaType, "Only JPEG, PNG, WebP images and PDF files are accepted.")
		return
	}

	key := "uploads/" + uuid.NewString() + ext
	bucket := a.storage.PublicBucket()
	if contentType == "application/pdf" {
		bucket = a.storage.PrivateBucket()
	}

	if err := a.storage.Upload(r.Context(), bucket, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("upload media", "error", err)
		apiError(w, http.StatusInternalServerError, "Upload failed. Try again.")
		return
	}

	var thumbKey *string
	if strings.HasPrefix(contentType, "image/") {
		if tk, err := a.uploadThumbnail(r, data, key); err != nil {
			// A missing thumbnail is not worth failing the upload over.
			slog.Warn("thumbnail generation failed", "key", key, "error", err)
		} else {
			thumbKey = &tk
		}
	}

	m := &models.Media{
		Filename:    filepath.Base(header.Filename),
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		Bucket:      bucket,
		StorageKey:  key,
		ThumbKey:    thumbKey,
	}
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		m.UploadedBy = &sess.UserID
	}

	created, err := a.media.Create(m)
	if err != nil {
		slog.Error("record media", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	resp := map[string]any{
		"media": created,
		"key":   created.StorageKey,
	}
	if bucket == a.storage.PublicBucket() {
		resp["url"] = a.storage.FileURL(created.StorageKey)
		if thumbKey != nil {
			resp["thumb_url"] = a.storage.FileURL(*thumbKey)
		}
	}
	writeJSON(w, http.StatusCreated, resp)
}

// uploadThumbnail decodes the image, scales it to thumbWidth, and stores
// the JPEG next to the original. Returns the thumbnail's storage key.
func (a *Admin) uploadThumbnail(r *http.Request, data []byte, originalKey string) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= thumbWidth {
		// Already small; reuse the original as its own thumbnail.
		return originalKey, nil
	}

	thumbHeight := height * thumbWidth / width
	dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return "", err
	}

	key := "thumbs/" + strings.TrimSuffix(filepath.Base(originalKey), filepath.Ext(originalKey)) + ".jpg"
	if err := a.storage.Upload(r.Context(), a.storage.PublicBucket(), key, "image/jpeg", &buf, int64(buf.Len())); err != nil {
		return "", err
	}
	return key, nil
}
