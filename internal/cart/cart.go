// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cart implements the visitor shopping cart: a per-session Valkey
// record that survives reloads and expires with the session, plus the
// WhatsApp checkout link builder.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vitrine/internal/models"
)

// maxQuantity bounds a single cart line.
const maxQuantity = 99

// Store manages carts in Valkey, keyed by session ID.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a cart store. ttl should match the session TTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get returns the session's cart. Missing or corrupt data yields an empty
// cart, never an error the storefront has to handle.
func (s *Store) Get(ctx context.Context, sessionID string) models.Cart {
	var cart models.Cart
	if sessionID == "" {
		return cart
	}
	payload, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		return cart
	}
	if err := json.Unmarshal(payload, &cart); err != nil {
		return models.Cart{}
	}
	return cart
}

// save persists the cart, resetting its TTL.
func (s *Store) save(ctx context.Context, sessionID string, cart models.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart marshal: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

// AddItem adds a product line to the cart, merging quantities when the
// product is already present. Name and price are snapshotted from the
// product at add time.
func (s *Store) AddItem(ctx context.Context, sessionID string, p *models.Product, quantity int) (models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	cart := s.Get(ctx, sessionID)

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == p.ID {
			cart.Items[i].Quantity = clampQuantity(cart.Items[i].Quantity + quantity)
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:  p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Quantity:   clampQuantity(quantity),
			ImageURL:   p.ImageURL,
		})
	}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return cart, err
	}
	return cart, nil
}

// SetQuantity updates a line's quantity. Zero or negative removes the line.
func (s *Store) SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (models.Cart, error) {
	cart := s.Get(ctx, sessionID)

	items := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID == productID {
			if quantity <= 0 {
				continue
			}
			it.Quantity = clampQuantity(quantity)
		}
		items = append(items, it)
	}
	cart.Items = items

	if err := s.save(ctx, sessionID, cart); err != nil {
		return cart, err
	}
	return cart, nil
}

// RemoveItem deletes a product line from the cart.
func (s *Store) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (models.Cart, error) {
	return s.SetQuantity(ctx, sessionID, productID, 0)
}

// Clear empties the session's cart.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}

func clampQuantity(q int) int {
	if q > maxQuantity {
		return maxQuantity
	}
	return q
}
