// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Hello World", want: "hello-world"},
		{name: "punctuation", input: "Winter Collection 2026!", want: "winter-collection-2026"},
		{name: "extra spaces", input: "  lots   of   spaces  ", want: "lots-of-spaces"},
		{name: "special chars", input: "50% Off: Mugs & Plates", want: "50-off-mugs-plates"},
		{name: "already slug", input: "already-a-slug", want: "already-a-slug"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "!!!", want: ""},
		{name: "consecutive hyphens", input: "a -- b", want: "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
