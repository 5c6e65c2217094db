// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestCartTotals(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Name: "Mug", PriceCents: 1250, Quantity: 2},
		{Name: "Shirt", PriceCents: 4999, Quantity: 1},
	}}

	if got, want := cart.TotalCents(), int64(2*1250+4999); got != want {
		t.Errorf("TotalCents() = %d, want %d", got, want)
	}
	if got := cart.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestEmptyCartTotals(t *testing.T) {
	var cart Cart
	if cart.TotalCents() != 0 {
		t.Errorf("empty cart total = %d", cart.TotalCents())
	}
	if cart.Count() != 0 {
		t.Errorf("empty cart count = %d", cart.Count())
	}
}
