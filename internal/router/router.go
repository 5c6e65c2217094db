// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router assembles the HTTP route tree and middleware chains for
// the storefront API and the admin back-office.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vitrine/internal/handlers"
	"vitrine/internal/middleware"
	"vitrine/internal/session"
)

// loginRateLimit bounds login attempts per client IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Handlers bundles the handler groups the router mounts.
type Handlers struct {
	Public  *handlers.Public
	Cart    *handlers.Cart
	Auth    *handlers.Auth
	Admin   *handlers.Admin
	Preview *handlers.Preview
}

// New builds the route tree. The public storefront routes only load the
// session when one exists; cart routes create one; back-office routes
// require an admin-role, 2FA-complete session and a CSRF token.
func New(sessions *session.Store, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessions))

	r.Get("/health", h.Public.Health)
	r.Get("/theme.css", h.Public.ThemeCSS)

	// Public storefront reads.
	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", h.Public.GetSettings)
		r.Get("/content/effective", h.Public.EffectiveContent)

		r.Get("/themes", h.Public.ListThemes)
		r.Get("/themes/active", h.Public.ActiveTheme)

		r.Get("/products", h.Public.ListProducts)
		r.Get("/categories", h.Public.ListCategories)
		r.Get("/services", h.Public.ListServices)
		r.Get("/promotions", h.Public.ListPromotions)
		r.Get("/catalogs", h.Public.ListCatalogs)
		r.Get("/catalogs/{id}/download", h.Public.DownloadCatalog)
		r.Get("/reviews", h.Public.ListReviews)
		r.Post("/reviews", h.Public.SubmitReview)

		// Cart routes need a session to hang the cart on.
		r.Group(func(r chi.Router) {
			r.Use(middleware.EnsureSession(sessions))

			r.Get("/cart", h.Cart.Get)
			r.Delete("/cart", h.Cart.Clear)
			r.Post("/cart/items", h.Cart.AddItem)
			r.Put("/cart/items/{productID}", h.Cart.UpdateItem)
			r.Delete("/cart/items/{productID}", h.Cart.RemoveItem)
			r.Post("/cart/checkout", h.Cart.Checkout)
		})

		// Auth endpoints. Login is rate limited; the 2FA verify and logout
		// need an existing session.
		r.Route("/auth", func(r chi.Router) {
			limiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)
			r.With(limiter.Middleware).Post("/login", h.Auth.Login)
			r.Post("/2fa/verify", h.Auth.VerifyTwoFA)
			r.Post("/logout", h.Auth.Logout)
		})

		// Back-office writes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CSRF)
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)
			r.Use(middleware.RequireAdmin)

			r.Post("/settings", h.Admin.SaveSettings)

			r.Post("/themes", h.Admin.CreateTheme)
			r.Put("/themes/{id}", h.Admin.UpdateTheme)
			r.Delete("/themes/{id}", h.Admin.DeleteTheme)
			r.Post("/themes/{id}/activate", h.Admin.ActivateTheme)

			r.Post("/products", h.Admin.CreateProduct)
			r.Put("/products/{id}", h.Admin.UpdateProduct)
			r.Delete("/products/{id}", h.Admin.DeleteProduct)

			r.Post("/categories", h.Admin.CreateCategory)
			r.Put("/categories/{id}", h.Admin.UpdateCategory)
			r.Delete("/categories/{id}", h.Admin.DeleteCategory)

			r.Post("/services", h.Admin.CreateService)
			r.Put("/services/{id}", h.Admin.UpdateService)
			r.Delete("/services/{id}", h.Admin.DeleteService)

			r.Post("/promotions", h.Admin.CreatePromotion)
			r.Put("/promotions/{id}", h.Admin.UpdatePromotion)
			r.Delete("/promotions/{id}", h.Admin.DeletePromotion)

			r.Post("/catalogs", h.Admin.CreateCatalog)
			r.Put("/catalogs/{id}", h.Admin.UpdateCatalog)
			r.Delete("/catalogs/{id}", h.Admin.DeleteCatalog)

			r.Put("/reviews/{id}", h.Admin.UpdateReview)
			r.Delete("/reviews/{id}", h.Admin.DeleteReview)
			r.Post("/reviews/{id}/approve", h.Admin.ApproveReview)

			r.Get("/preview", h.Preview.State)
			r.Post("/preview/{kind}", h.Preview.Start)
			r.Delete("/preview/{kind}", h.Preview.Cancel)
			r.Post("/preview/{kind}/publish", h.Preview.Publish)

			r.Post("/media", h.Admin.Upload)
		})
	})

	return r
}
