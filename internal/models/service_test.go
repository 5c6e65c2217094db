// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "wrench", want: "wrench"},
		{key: "shield", want: "shield-check"},
		{key: "", want: "sparkles"},
		{key: "unicorn", want: "sparkles"},
		{key: "WRENCH", want: "sparkles"},
	}

	for _, tt := range tests {
		if got := ResolveIcon(tt.key); got != tt.want {
			t.Errorf("ResolveIcon(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestIconKeysCoverResolvable(t *testing.T) {
	keys := IconKeys()
	if len(keys) == 0 {
		t.Fatal("no icon keys")
	}
	for _, k := range keys {
		if ResolveIcon(k) == defaultServiceIcon && k != "sparkles" {
			t.Errorf("key %q resolves to the fallback icon", k)
		}
	}
}
