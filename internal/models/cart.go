// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// CartItem is one product line in a visitor's cart. Name and price are
// snapshotted at add time so the cart stays renderable even if the product
// is edited or removed afterwards.
type CartItem struct {
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int       `json:"quantity"`
	ImageURL   string    `json:"image_url"`
}

// Cart is a visitor's session-scoped shopping cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// TotalCents returns the cart total in cents.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
