// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"testing"
	"time"
)

func TestPromotionCurrent(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name  string
		promo Promotion
		want  bool
	}{
		{name: "active no dates", promo: Promotion{Active: true}, want: true},
		{name: "inactive", promo: Promotion{Active: false}, want: false},
		{name: "within window", promo: Promotion{Active: true, StartsAt: &past, EndsAt: &future}, want: true},
		{name: "not started", promo: Promotion{Active: true, StartsAt: &future}, want: false},
		{name: "already ended", promo: Promotion{Active: true, EndsAt: &past}, want: false},
		{name: "inactive within window", promo: Promotion{Active: false, StartsAt: &past, EndsAt: &future}, want: false},
		{name: "open ended after start", promo: Promotion{Active: true, StartsAt: &past}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.promo.Current(now); got != tt.want {
				t.Errorf("Current() = %v, want %v", got, tt.want)
			}
		})
	}
}
