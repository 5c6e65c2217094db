// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"vitrine/internal/cache"
	"vitrine/internal/markdown"
	"vitrine/internal/middleware"
	"vitrine/internal/models"
	"vitrine/internal/preview"
	"vitrine/internal/storage"
	"vitrine/internal/store"
	"vitrine/internal/theme"
)

// catalogDownloadExpiry is how long a presigned catalog PDF link stays valid.
const catalogDownloadExpiry = 15 * time.Minute

// Public serves the unauthenticated storefront API.
type Public struct {
	content    *store.SiteContentStore
	themes     *store.ThemeStore
	products   *store.ProductStore
	categories *store.CategoryStore
	services   *store.ServiceStore
	promotions *store.PromotionStore
	catalogs   *store.CatalogStore
	reviews    *store.ReviewStore
	previews   *preview.Manager
	respCache  *cache.ResponseCache
	storage    *storage.Client
}

// NewPublic creates the public handler group.
func NewPublic(
	content *store.SiteContentStore,
	themes *store.ThemeStore,
	products *store.ProductStore,
	categories *store.CategoryStore,
	services *store.ServiceStore,
	promotions *store.PromotionStore,
	catalogs *store.CatalogStore,
	reviews *store.ReviewStore,
	previews *preview.Manager,
	respCache *cache.ResponseCache,
	storageClient *storage.Client,
) *Public {
	return &Public{
		content:    content,
		themes:     themes,
		products:   products,
		categories: categories,
		services:   services,
		promotions: promotions,
		catalogs:   catalogs,
		reviews:    reviews,
		previews:   previews,
		respCache:  respCache,
		storage:    storageClient,
	}
}

// Health is a liveness endpoint for the load balancer.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetSettings returns the persisted site content, always merged over the
// built-in defaults. Drafts are never visible here; use the effective
// endpoint for that.
func (p *Public) GetSettings(w http.ResponseWriter, r *http.Request) {
	doc, err := p.content.LoadContent()
	if err != nil {
		// LoadContent already fell back to defaults; serve them.
		slog.Error("load site content", "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"settings": map[string]any{
			models.SiteContentKey: doc,
		},
	})
}

// EffectiveContent returns the content document this session should render:
// the session's draft when a preview is active, the persisted document
// otherwise. The about body is also returned pre-rendered as HTML.
func (p *Public) EffectiveContent(w http.ResponseWriter, r *http.Request) {
	doc, previewing := p.previews.EffectiveContent(r.Context(), sessionID(r))

	aboutHTML, err := markdown.ToHTML(doc.About.Body)
	if err != nil {
		slog.Error("render about markdown", "error", err)
		aboutHTML = ""
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"content":    doc,
		"about_html": aboutHTML,
		"previewing": previewing,
	})
}

// ListThemes returns all themes, or a single theme when ?slug= is given.
func (p *Public) ListThemes(w http.ResponseWriter, r *http.Request) {
	if slug := r.URL.Query().Get("slug"); slug != "" {
		t, err := p.themes.FindBySlug(slug)
		if err != nil {
			slog.Error("find theme by slug", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		if t == nil {
			apiError(w, http.StatusNotFound, "Theme not found.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"themes": []models.Theme{*t}})
		return
	}

	themes, err := p.themes.List()
	if err != nil {
		slog.Error("list themes", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"themes": themes})
}

// ActiveTheme returns the theme this session should render: the session's
// draft when a theme preview is active, the persisted active theme
// otherwise. "theme" is null when nothing is active.
func (p *Public) ActiveTheme(w http.ResponseWriter, r *http.Request) {
	t, previewing := p.previews.EffectiveTheme(r.Context(), sessionID(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"theme":      t,
		"previewing": previewing,
	})
}

// ThemeCSS serves the effective theme's colors as CSS custom properties.
// This is the stylesheet the storefront links; a session previewing a theme
// gets the draft values immediately.
func (p *Public) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	t, previewing := p.previews.EffectiveTheme(r.Context(), sessionID(r))

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if previewing {
		// Draft styles must not stick in any cache.
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=60")
	}
	w.Write([]byte(theme.Stylesheet(t)))
}

// parseListQuery reads the shared listing filters from the query string.
func parseListQuery(r *http.Request) (featured *bool, categoryID *uuid.UUID, limit, offset int) {
	q := r.URL.Query()

	if v := q.Get("featured"); v != "" {
		b := v == "true" || v == "1"
		featured = &b
	}
	catParam := q.Get("category_id")
	if catParam == "" {
		catParam = q.Get("categoryId")
	}
	if catParam != "" {
		if id, err := uuid.Parse(catParam); err == nil {
			categoryID = &id
		}
	}
	limit, _ = strconv.Atoi(q.Get("limit"))
	offset, _ = strconv.Atoi(q.Get("offset"))
	return
}

// cached serves the response from the listing cache when possible, else
// computes the payload, stores it, and serves it. The cache key includes
// the raw query so filter variants don't collide.
func (p *Public) cached(w http.ResponseWriter, r *http.Request, prefix string, compute func() (any, error)) {
	key := prefix + "?" + r.URL.RawQuery

	if payload, ok := p.respCache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
		return
	}

	v, err := compute()
	if err != nil {
		slog.Error("list "+prefix, "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	payload, err := json.Marshal(v)
	if err != nil {
		slog.Error("marshal "+prefix, "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	p.respCache.Set(r.Context(), key, payload)
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// ListProducts returns active products, optionally filtered by featured,
// category, or a single id.
func (p *Public) ListProducts(w http.ResponseWriter, r *http.Request) {
	if idParam := r.URL.Query().Get("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			apiError(w, http.StatusBadRequest, "Invalid product id.")
			return
		}
		product, err := p.products.FindByID(id)
		if err != nil {
			slog.Error("find product", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		items := []models.Product{}
		if product != nil && product.Active {
			items = append(items, *product)
		}
		writeJSON(w, http.StatusOK, map[string]any{"products": items})
		return
	}

	if sess := middleware.SessionFromCtx(r.Context()); r.URL.Query().Get("all") == "true" && sess.Authenticated() && sess.TwoFADone {
		items, err := p.products.ListAll()
		if err != nil {
			slog.Error("list all products", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		if items == nil {
			items = []models.Product{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"products": items})
		return
	}

	p.cached(w, r, "products", func() (any, error) {
		featured, categoryID, limit, offset := parseListQuery(r)
		items, err := p.products.List(models.ProductFilter{
			Featured:   featured,
			CategoryID: categoryID,
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Product{}
		}
		return map[string]any{"products": items}, nil
	})
}

// ListCategories returns all categories with product counts.
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, "categories", func() (any, error) {
		items, err := p.categories.List()
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Category{}
		}
		return map[string]any{"categories": items}, nil
	})
}

// serviceView is a service plus its resolved icon identifier.
type serviceView struct {
	models.Service
	IconID string `json:"icon_id"`
}

// ListServices returns active services with resolved icons. Admin sessions
// may pass ?all=true to include inactive services.
func (p *Public) ListServices(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromCtx(r.Context()); r.URL.Query().Get("all") == "true" && sess.Authenticated() && sess.TwoFADone {
		items, err := p.services.List(false)
		if err != nil {
			slog.Error("list all services", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		views := make([]serviceView, 0, len(items))
		for _, sv := range items {
			views = append(views, serviceView{Service: sv, IconID: models.ResolveIcon(sv.Icon)})
		}
		writeJSON(w, http.StatusOK, map[string]any{"services": views})
		return
	}

	p.cached(w, r, "services", func() (any, error) {
		items, err := p.services.List(true)
		if err != nil {
			return nil, err
		}
		views := make([]serviceView, 0, len(items))
		for _, sv := range items {
			views = append(views, serviceView{Service: sv, IconID: models.ResolveIcon(sv.Icon)})
		}
		return map[string]any{"services": views}, nil
	})
}

// ListPromotions returns promotions that are currently running. Not cached:
// the date-window check must be evaluated fresh. Admin sessions may pass
// ?all=true to also see inactive and scheduled campaigns.
func (p *Public) ListPromotions(w http.ResponseWriter, r *http.Request) {
	var items []models.Promotion
	var err error
	if sess := middleware.SessionFromCtx(r.Context()); r.URL.Query().Get("all") == "true" && sess.Authenticated() && sess.TwoFADone {
		items, err = p.promotions.List()
	} else {
		items, err = p.promotions.ListCurrent()
	}
	if err != nil {
		slog.Error("list promotions", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if items == nil {
		items = []models.Promotion{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"promotions": items})
}

// ListCatalogs returns downloadable catalogs, with the same filters as
// products.
func (p *Public) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	if idParam := r.URL.Query().Get("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			apiError(w, http.StatusBadRequest, "Invalid catalog id.")
			return
		}
		c, err := p.catalogs.FindByID(id)
		if err != nil {
			slog.Error("find catalog", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		items := []models.Catalog{}
		if c != nil {
			items = append(items, *c)
		}
		writeJSON(w, http.StatusOK, map[string]any{"catalogs": items})
		return
	}

	p.cached(w, r, "catalogs", func() (any, error) {
		featured, categoryID, limit, offset := parseListQuery(r)
		items, err := p.catalogs.List(models.CatalogFilter{
			Featured:   featured,
			CategoryID: categoryID,
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Catalog{}
		}
		return map[string]any{"catalogs": items}, nil
	})
}

// DownloadCatalog returns a presigned URL for the catalog's PDF in the
// private bucket.
func (p *Public) DownloadCatalog(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		apiError(w, http.StatusBadRequest, "Invalid catalog id.")
		return
	}

	c, err := p.catalogs.FindByID(id)
	if err != nil {
		slog.Error("find catalog", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if c == nil || c.FileKey == "" {
		apiError(w, http.StatusNotFound, "Catalog not found.")
		return
	}
	if p.storage == nil {
		apiError(w, http.StatusServiceUnavailable, "Downloads are not available right now.")
		return
	}

	url, err := p.storage.PresignedURL(r.Context(), p.storage.PrivateBucket(), c.FileKey, catalogDownloadExpiry)
	if err != nil {
		slog.Error("presign catalog", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"url":        url,
		"expires_in": int(catalogDownloadExpiry.Seconds()),
	})
}

// ListReviews returns approved reviews. An authenticated admin session may
// pass ?approved=false to see the moderation queue; everyone else gets the
// approved set regardless of the parameter.
func (p *Public) ListReviews(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if r.URL.Query().Get("approved") == "false" && sess.Authenticated() && sess.TwoFADone {
		items, err := p.reviews.List(false)
		if err != nil {
			slog.Error("list reviews", "error", err)
			apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		if items == nil {
			items = []models.Review{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"reviews": items})
		return
	}

	p.cached(w, r, "reviews", func() (any, error) {
		items, err := p.reviews.List(true)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Review{}
		}
		return map[string]any{"reviews": items}, nil
	})
}

// SubmitReview accepts a visitor review. Submissions start unapproved and
// only appear on the storefront after moderation.
func (p *Public) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := decodeJSON(r, &review); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if msg := validateReview(&review); msg != "" {
		apiError(w, http.StatusBadRequest, msg)
		return
	}

	review.Approved = false
	created, err := p.reviews.Create(&review)
	if err != nil {
		slog.Error("create review", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"review": created})
}
