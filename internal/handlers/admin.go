// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vitrine/internal/cache"
	"vitrine/internal/models"
	"vitrine/internal/slug"
	"vitrine/internal/storage"
	"vitrine/internal/store"
	"vitrine/internal/theme"
)

// Admin serves the authenticated back-office API. Every route in this
// group sits behind session auth, completed 2FA, and CSRF checks.
type Admin struct {
	content    *store.SiteContentStore
	themes     *store.ThemeStore
	products   *store.ProductStore
	categories *store.CategoryStore
	services   *store.ServiceStore
	promotions *store.PromotionStore
	catalogs   *store.CatalogStore
	reviews    *store.ReviewStore
	media      *store.MediaStore
	respCache  *cache.ResponseCache
	storage    *storage.Client
}

// NewAdmin creates the admin handler group.
func NewAdmin(
	content *store.SiteContentStore,
	themes *store.ThemeStore,
	products *store.ProductStore,
	categories *store.CategoryStore,
	services *store.ServiceStore,
	promotions *store.PromotionStore,
	catalogs *store.CatalogStore,
	reviews *store.ReviewStore,
	media *store.MediaStore,
	respCache *cache.ResponseCache,
	storageClient *storage.Client,
) *Admin {
	return &Admin{
		content:    content,
		themes:     themes,
		products:   products,
		categories: categories,
		services:   services,
		promotions: promotions,
		catalogs:   catalogs,
		reviews:    reviews,
		media:      media,
		respCache:  respCache,
		storage:    storageClient,
	}
}

// storeError maps store sentinel errors to API responses. Returns true if
// it wrote a response.
func storeError(w http.ResponseWriter, err error, what string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, store.ErrSlugTaken):
		apiError(w, http.StatusConflict, "That slug is already in use. Pick another.")
	case errors.Is(err, store.ErrNotFound):
		apiError(w, http.StatusNotFound, what+" not found.")
	default:
		slog.Error("store write failed", "what", what, "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
	return true
}

// --- Settings ---

// SaveSettings overwrites the site content document. The stored value is
// normalised through the same merge used on reads, so partial payloads
// still produce a complete document.
func (a *Admin) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Key != models.SiteContentKey {
		apiError(w, http.StatusBadRequest, "Unknown settings key.")
		return
	}

	doc := models.MergeSiteContent(req.Value)
	if err := a.content.SaveContent(doc); err != nil {
		slog.Error("save site content", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"settings": map[string]any{models.SiteContentKey: doc},
	})
}

// --- Themes ---

// CreateTheme adds a theme. Colors must be HSL triples; the slug is
// derived from the name when omitted. New themes start inactive.
func (a *Admin) CreateTheme(w http.ResponseWriter, r *http.Request) {
	var t models.Theme
	if err := decodeJSON(r, &t); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if t.Slug == "" {
		t.Slug = slug.Generate(t.Name)
	}
	if msg := validateNamed(t.Name, t.Slug); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := theme.ValidateTheme(&t); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.themes.Create(&t)
	if storeError(w, err, "Theme") {
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"theme": created})
}

// UpdateTheme applies a partial edit. Changes to is_active route through
// Activate and Deactivate so at most one theme stays active.
func (a *Admin) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid theme id.")
		return
	}

	var upd models.ThemeUpdate
	if err := decodeJSON(r, &upd); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	for _, c := range []*string{upd.PrimaryColor, upd.SecondaryColor, upd.AccentColor} {
		if c != nil && !theme.ValidColor(*c) {
			apiError(w, http.StatusBadRequest, "Colors must be HSL triples like \"210 80% 40%\".")
			return
		}
	}

	t, err := a.themes.Update(id, upd)
	if storeError(w, err, "Theme") {
		return
	}

	if upd.IsActive != nil && *upd.IsActive != t.IsActive {
		if *upd.IsActive {
			err = a.themes.Activate(id)
		} else {
			err = a.themes.Deactivate(id)
		}
		if storeError(w, err, "Theme") {
			return
		}
		t, err = a.themes.FindByID(id)
		if storeError(w, err, "Theme") {
			return
		}
		if t == nil {
			apiError(w, http.StatusInternalServerError, "Theme could not be reloaded.")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"theme": t})
}

// ActivateTheme makes the theme the single active one.
func (a *Admin) ActivateTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid theme id.")
		return
	}
	if err := a.themes.Activate(id); storeError(w, err, "Theme") {
		return
	}
	t, err := a.themes.FindByID(id)
	if storeError(w, err, "Theme") {
		return
	}
	if t == nil {
		apiError(w, http.StatusInternalServerError, "Theme could not be reloaded.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"theme": t})
}

// DeleteTheme removes an inactive theme.
func (a *Admin) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid theme id.")
		return
	}
	if err := a.themes.Delete(id); err != nil {
		apiError(w, http.StatusConflict, "Theme not found or currently active.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// --- Products ---

// CreateProduct adds a product.
func (a *Admin) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Name)
	}
	if msg := validateProduct(&p); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.products.Create(&p)
	if storeError(w, err, "Product") {
		return
	}
	a.respCache.Invalidate(r.Context(), "products")
	writeJSON(w, http.StatusCreated, map[string]any{"product": created})
}

// UpdateProduct replaces a product's fields.
func (a *Admin) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid product id.")
		return
	}

	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	p.ID = id
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Name)
	}
	if msg := validateProduct(&p); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.products.Update(&p); storeError(w, err, "Product") {
		return
	}
	a.respCache.Invalidate(r.Context(), "products")
	writeJSON(w, http.StatusOK, map[string]any{"product": p})
}

// DeleteProduct removes a product.
func (a *Admin) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid product id.")
		return
	}
	if err := a.products.Delete(id); storeError(w, err, "Product") {
		return
	}
	a.respCache.Invalidate(r.Context(), "products")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// --- Categories ---

// CreateCategory adds a category.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeJSON(r, &c); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if msg := validateNamed(c.Name, c.Slug); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.categories.Create(&c)
	if storeError(w, err, "Category") {
		return
	}
	a.respCache.Invalidate(r.Context(), "categories")
	writeJSON(w, http.StatusCreated, map[string]any{"category": created})
}

// UpdateCategory replaces a category's fields.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid category id.")
		return
	}

	var c models.Category
	if err := decodeJSON(r, &c); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	c.ID = id
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if msg := validateNamed(c.Name, c.Slug); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.categories.Update(&c); storeError(w, err, "Category") {
		return
	}
	a.respCache.Invalidate(r.Context(), "categories")
	a.respCache.Invalidate(r.Context(), "products")
	writeJSON(w, http.StatusOK, map[string]any{"category": c})
}

// DeleteCategory removes a category. Products referencing it keep working;
// their category_id is nulled by the FK.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid category id.")
		return
	}
	if err := a.categories.Delete(id); storeError(w, err, "Category") {
		return
	}
	a.respCache.Invalidate(r.Context(), "categories")
	a.respCache.Invalidate(r.Context(), "products")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// --- Services ---

// CreateService adds a service. Icon keys outside the closed set are kept
// as-is and resolve to the fallback icon on the storefront.
func (a *Admin) CreateService(w http.ResponseWriter, r *http.Request) {
	var sv models.Service
	if err := decodeJSON(r, &sv); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if sv.Slug == "" {
		sv.Slug = slug.Generate(sv.Name)
	}
	if msg := validateNamed(sv.Name, sv.Slug); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.services.Create(&sv)
	if storeError(w, err, "Service") {
		return
	}
	a.respCache.Invalidate(r.Context(), "services")
	writeJSON(w, http.StatusCreated, map[string]any{"service": created})
}

// UpdateService replaces a service's fields.
func (a *Admin) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid service id.")
		return
	}

	var sv models.Service
	if err := decodeJSON(r, &sv); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	sv.ID = id
	if sv.Slug == "" {
		sv.Slug = slug.Generate(sv.Name)
	}
	if msg := validateNamed(sv.Name, sv.Slug); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.services.Update(&sv); storeError(w, err, "Service") {
		return
	}
	a.respCache.Invalidate(r.Context(), "services")
	writeJSON(w, http.StatusOK, map[string]any{"service": sv})
}

// DeleteService removes a service.
func (a *Admin) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid service id.")
		return
	}
	if err := a.services.Delete(id); storeError(w, err, "Service") {
		return
	}
	a.respCache.Invalidate(r.Context(), "services")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// --- Promotions ---

// CreatePromotion adds a promotion.
func (a *Admin) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var p models.Promotion
	if err := decodeJSON(r, &p); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if msg := validatePromotion(&p); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.promotions.Create(&p)
	if storeError(w, err, "Promotion") {
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"promotion": created})
}

// UpdatePromotion replaces a promotion's fields.
func (a *Admin) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid promotion id.")
		return
	}

	var p models.Promotion
	if err := decodeJSON(r, &p); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	p.ID = id
	if msg := validatePromotion(&p); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.promotions.Update(&p); storeError(w, err, "Promotion") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"promotion": p})
}

// DeletePromotion removes a promotion.
func (a *Admin) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid promotion id.")
		return
	}
	if err := a.promotions.Delete(id); storeError(w, err, "Promotion") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// --- Catalogs ---

// CreateCatalog adds a catalog entry. The PDF itself is uploaded through
// the media endpoint first; the returned storage key goes in file_key.
func (a *Admin) CreateCatalog(w http.ResponseWriter, r *http.Request) {
	var c models.Catalog
	if err := decodeJSON(r, &c); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if c.Title == "" {
		apiError(w, http.StatusBadRequest, "Title is required.")
		return
	}

	created, err := a.catalogs.Create(&c)
	if storeError(w, err, "Catalog") {
		return
	}
	a.respCache.Invalidate(r.Context(), "catalogs")
	writeJSON(w, http.StatusCreated, map[string]any{"catalog": created})
}

// UpdateCatalog replaces a catalog's fields.
func (a *Admin) UpdateCatalog(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid catalog id.")
		return
	}

	var c models.Catalog
	if err := decodeJSON(r, &c); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	c.ID = id
	if c.Title == "" {
		apiError(w, http.StatusBadRequest, "Title is required.")
		return
	}

	if err := a.catalogs.Update(&c); storeError(w, err, "Catalog") {
		return
	}
	a.respCache.Invalidate(r.Context(), "catalogs")
	writeJSON(w, http.StatusOK, map[string]any{"catalog": c})
}

// DeleteCatalog removes a catalog entry and its stored PDF.
func (a *Admin) DeleteCatalog(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid catalog id.")
		return
	}

	c, err := a.catalogs.FindByID(id)
	if err != nil {
		storeError(w, err, "Catalog")
		return
	}
	if err := a.catalogs.Delete(id); storeError(w, err, "Catalog") {
		return
	}
	if c != nil && c.FileKey != "" && a.storage != nil {
		if err := a.storage.Delete(r.Context(), a.storage.PrivateBucket(), c.FileKey); err != nil {
			slog.Warn("delete catalog pdf", "error", err)
		}
	}
	a.respCache.Invalidate(r.Context(), "catalogs")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// --- Reviews ---

// ApproveReview marks a review as approved so it shows on the storefront.
func (a *Admin) ApproveReview(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid review id.")
		return
	}
	if err := a.reviews.SetApproved(id, true); storeError(w, err, "Review") {
		return
	}
	a.respCache.Invalidate(r.Context(), "reviews")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// UpdateReview edits a review's text or rating.
func (a *Admin) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid review id.")
		return
	}

	var rev models.Review
	if err := decodeJSON(r, &rev); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	rev.ID = id
	if msg := validateReview(&rev); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.reviews.Update(&rev); storeError(w, err, "Review") {
		return
	}
	a.respCache.Invalidate(r.Context(), "reviews")
	writeJSON(w, http.StatusOK, map[string]any{"review": rev})
}

// DeleteReview removes a review.
func (a *Admin) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid review id.")
		return
	}
	if err := a.reviews.Delete(id); storeError(w, err, "Review") {
		return
	}
	a.respCache.Invalidate(r.Context(), "reviews")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
