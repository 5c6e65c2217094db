// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vitrine/internal/cart"
	"vitrine/internal/models"
	"vitrine/internal/store"
)

// Cart serves the visitor cart endpoints. All of them run behind
// EnsureSession, so sessionID(r) is never empty here.
type Cart struct {
	carts          *cart.Store
	products       *store.ProductStore
	whatsappNumber string
}

// NewCart creates the cart handler group.
func NewCart(carts *cart.Store, products *store.ProductStore, whatsappNumber string) *Cart {
	return &Cart{
		carts:          carts,
		products:       products,
		whatsappNumber: whatsappNumber,
	}
}

// cartResponse is the shared shape of every cart endpoint response.
func cartResponse(c models.Cart) map[string]any {
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return map[string]any{
		"cart":        c,
		"total_cents": c.TotalCents(),
		"count":       c.Count(),
	}
}

// Get returns the session's cart.
func (h *Cart) Get(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Get(r.Context(), sessionID(r))
	writeJSON(w, http.StatusOK, cartResponse(c))
}

// AddItem adds a product to the cart, snapshotting its name and price.
func (h *Cart) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uuid.UUID `json:"product_id"`
		Quantity  int       `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	product, err := h.products.FindByID(req.ProductID)
	if err != nil {
		slog.Error("find product for cart", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if product == nil || !product.Active {
		apiError(w, http.StatusNotFound, "Product not found.")
		return
	}

	c, err := h.carts.AddItem(r.Context(), sessionID(r), product, req.Quantity)
	if err != nil {
		slog.Error("cart add", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(c))
}

// UpdateItem sets a line's quantity. Zero removes the line.
func (h *Cart) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		apiError(w, http.StatusBadRequest, "Invalid product id.")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	c, err := h.carts.SetQuantity(r.Context(), sessionID(r), productID, req.Quantity)
	if err != nil {
		slog.Error("cart update", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(c))
}

// RemoveItem deletes a line from the cart.
func (h *Cart) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		apiError(w, http.StatusBadRequest, "Invalid product id.")
		return
	}

	c, err := h.carts.RemoveItem(r.Context(), sessionID(r), productID)
	if err != nil {
		slog.Error("cart remove", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(c))
}

// Clear empties the cart.
func (h *Cart) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), sessionID(r)); err != nil {
		slog.Error("cart clear", "error", err)
		apiError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(models.Cart{}))
}

// Checkout builds the WhatsApp order link from the current cart. The cart
// is left intact; it is cleared once the visitor confirms on WhatsApp,
// which is out of our hands, so the storefront clears it client-side.
func (h *Cart) Checkout(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Get(r.Context(), sessionID(r))
	if len(c.Items) == 0 {
		apiError(w, http.StatusBadRequest, "Your cart is empty.")
		return
	}
	if h.whatsappNumber == "" {
		apiError(w, http.StatusServiceUnavailable, "Checkout is not available right now.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"url":         cart.CheckoutURL(h.whatsappNumber, c),
		"message":     cart.CheckoutMessage(c),
		"total_cents": c.TotalCents(),
	})
}
