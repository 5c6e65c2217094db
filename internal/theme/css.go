// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme turns a theme record into the stylesheet the storefront
// links as /theme.css. Serving the colors as CSS custom properties is what
// applies a draft or published theme to the presentation layer.
package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vitrine/internal/models"
)

// hslTriple matches the stored color form "210 80% 40%".
var hslTriple = regexp.MustCompile(`^(\d{1,3}) (\d{1,3})% (\d{1,3})%$`)

// ValidColor reports whether s is a well-formed hue/saturation/lightness
// triple: hue 0-360, saturation and lightness 0-100%.
func ValidColor(s string) bool {
	m := hslTriple.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return false
	}
	hue, _ := strconv.Atoi(m[1])
	sat, _ := strconv.Atoi(m[2])
	light, _ := strconv.Atoi(m[3])
	return hue <= 360 && sat <= 100 && light <= 100
}

// ValidateTheme checks all three colors of a theme, returning a message
// naming the first bad field, or "".
func ValidateTheme(t *models.Theme) string {
	if !ValidColor(t.PrimaryColor) {
		return "primary_color must be an HSL triple like \"210 80% 40%\""
	}
	if !ValidColor(t.SecondaryColor) {
		return "secondary_color must be an HSL triple like \"210 80% 40%\""
	}
	if !ValidColor(t.AccentColor) {
		return "accent_color must be an HSL triple like \"210 80% 40%\""
	}
	return ""
}

// Stylesheet renders the CSS custom-property block for a theme. A nil
// theme yields an empty :root block so the storefront falls back to its
// built-in colors.
func Stylesheet(t *models.Theme) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	if t != nil {
		fmt.Fprintf(&b, "  --primary: %s;\n", t.PrimaryColor)
		fmt.Fprintf(&b, "  --secondary: %s;\n", t.SecondaryColor)
		fmt.Fprintf(&b, "  --accent: %s;\n", t.AccentColor)
		if t.BannerImage != nil && *t.BannerImage != "" {
			fmt.Fprintf(&b, "  --theme-banner: url(%q);\n", *t.BannerImage)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
