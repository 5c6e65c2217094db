// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"strings"
	"testing"

	"vitrine/internal/models"
)

func TestValidColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"210 80% 40%", true},
		{"0 0% 0%", true},
		{"360 100% 100%", true},
		{"  222 47% 31%  ", true},
		{"", false},
		{"361 80% 40%", false},
		{"999 999% 999%", false},
		{"210 101% 40%", false},
		{"210 80% 101%", false},
		{"210, 80%, 40%", false},
		{"#ff0000", false},
		{"210 80 40", false},
		{"hsl(210 80% 40%)", false},
	}

	for _, tt := range tests {
		if got := ValidColor(tt.color); got != tt.want {
			t.Errorf("ValidColor(%q) = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestValidateTheme(t *testing.T) {
	good := models.Theme{PrimaryColor: "210 80% 40%", SecondaryColor: "0 0% 96%", AccentColor: "32 95% 52%"}
	if msg := ValidateTheme(&good); msg != "" {
		t.Errorf("valid theme rejected: %s", msg)
	}

	bad := good
	bad.SecondaryColor = "blue"
	msg := ValidateTheme(&bad)
	if msg == "" {
		t.Fatal("invalid theme accepted")
	}
	if !strings.Contains(msg, "secondary_color") {
		t.Errorf("message should name the bad field, got %q", msg)
	}
}

func TestStylesheet(t *testing.T) {
	banner := "https://cdn.example.com/banner.jpg"
	theme := &models.Theme{
		PrimaryColor:   "222 47% 31%",
		SecondaryColor: "210 40% 96%",
		AccentColor:    "32 95% 52%",
		BannerImage:    &banner,
	}

	css := Stylesheet(theme)

	for _, want := range []string{
		"--primary: 222 47% 31%;",
		"--secondary: 210 40% 96%;",
		"--accent: 32 95% 52%;",
		`--theme-banner: url("https://cdn.example.com/banner.jpg");`,
	} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q:\n%s", want, css)
		}
	}
}

func TestStylesheetNoBanner(t *testing.T) {
	theme := &models.Theme{PrimaryColor: "0 0% 0%", SecondaryColor: "0 0% 100%", AccentColor: "0 0% 50%"}
	if css := Stylesheet(theme); strings.Contains(css, "--theme-banner") {
		t.Errorf("unexpected banner property:\n%s", css)
	}
}

func TestStylesheetNilTheme(t *testing.T) {
	css := Stylesheet(nil)
	if css != ":root {\n}\n" {
		t.Errorf("nil theme stylesheet = %q", css)
	}
}
