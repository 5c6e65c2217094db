// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns product, category, and theme names into URL-safe
// identifiers.
package slug

import (
	"regexp"
	"strings"
)

var (
	// stripChars matches anything that isn't a lowercase letter, digit,
	// space, or hyphen.
	stripChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	// repeatHyphens collapses runs of hyphens left by stripping.
	repeatHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate derives a slug from a display name.
// "Garden Tools & Supplies" becomes "garden-tools-supplies".
func Generate(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = stripChars.ReplaceAllString(out, "")
	out = strings.ReplaceAll(out, " ", "-")
	out = repeatHyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
