// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// SiteContentKey is the fixed site_settings key under which the single
// SiteContentDocument is stored.
const SiteContentKey = "site_content"

// ButtonRadius controls the corner rounding of storefront buttons.
type ButtonRadius string

const (
	RadiusNone   ButtonRadius = "none"
	RadiusSmall  ButtonRadius = "small"
	RadiusMedium ButtonRadius = "medium"
	RadiusFull   ButtonRadius = "full"
)

// Valid reports whether the radius is one of the known values.
func (r ButtonRadius) Valid() bool {
	switch r {
	case RadiusNone, RadiusSmall, RadiusMedium, RadiusFull:
		return true
	}
	return false
}

// HeroSection is the storefront's main banner.
type HeroSection struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	PrimaryLink     string `json:"primary_link"`
	PrimaryLabel    string `json:"primary_label"`
	SecondaryLink   string `json:"secondary_link"`
	SecondaryLabel  string `json:"secondary_label"`
	BackgroundImage string `json:"background_image"`
}

// AnnouncementBar is the dismissible strip above the header.
type AnnouncementBar struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
	Link    string `json:"link"`
}

// AboutSection holds the "about us" block. Body is Markdown source.
type AboutSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

// ContactInfo groups the storefront's contact details.
type ContactInfo struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	BusinessHours string `json:"business_hours"`
}

// SocialLinks holds the profile URLs shown in the footer and contact page.
// An empty value hides the corresponding icon.
type SocialLinks struct {
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
	YouTube   string `json:"youtube"`
}

// ButtonStyle holds storefront-wide button preferences.
type ButtonStyle struct {
	Radius ButtonRadius `json:"radius"`
}

// SiteContentDocument is the single structured record holding all editable
// storefront text and configuration. Exactly one logical document exists per
// deployment; it is saved wholesale and merged over defaults at load time so
// consumers never see a missing field.
type SiteContentDocument struct {
	Hero         HeroSection     `json:"hero"`
	Announcement AnnouncementBar `json:"announcement"`
	About        AboutSection    `json:"about"`
	Contact      ContactInfo     `json:"contact"`
	Social       SocialLinks     `json:"social"`
	FooterText   string          `json:"footer_text"`
	Sections     map[string]bool `json:"sections"`
	Buttons      ButtonStyle     `json:"buttons"`
}

// Section names used in the visibility map.
const (
	SectionHero       = "hero"
	SectionFeatured   = "featured"
	SectionCategories = "categories"
	SectionServices   = "services"
	SectionPromotions = "promotions"
	SectionCatalogs   = "catalogs"
	SectionReviews    = "reviews"
	SectionAbout      = "about"
	SectionContact    = "contact"
)

// DefaultSiteContent returns the built-in document used when nothing has
// been saved yet, and as the base layer for merging stored documents.
func DefaultSiteContent() SiteContentDocument {
	return SiteContentDocument{
		Hero: HeroSection{
			Title:        "Welcome to our store",
			Subtitle:     "Quality products, delivered with care.",
			PrimaryLink:  "/products",
			PrimaryLabel: "Browse products",
		},
		Announcement: AnnouncementBar{
			Enabled: false,
		},
		About: AboutSection{
			Title: "About us",
			Body:  "Tell your customers who you are.",
		},
		Contact: ContactInfo{
			BusinessHours: "Mon-Fri 9:00-18:00",
		},
		FooterText: "© Vitrine. All rights reserved.",
		Sections: map[string]bool{
			SectionHero:       true,
			SectionFeatured:   true,
			SectionCategories: true,
			SectionServices:   true,
			SectionPromotions: true,
			SectionCatalogs:   true,
			SectionReviews:    true,
			SectionAbout:      true,
			SectionContact:    true,
		},
		Buttons: ButtonStyle{Radius: RadiusMedium},
	}
}

// MergeSiteContent layers a stored JSON document over the built-in defaults.
// Fields present in the stored document win; fields it lacks (for example,
// ones introduced after it was saved) keep their default value. The section
// visibility map is merged key by key so new default sections stay visible
// for old documents. A nil or unparseable payload yields pure defaults.
func MergeSiteContent(stored []byte) SiteContentDocument {
	doc := DefaultSiteContent()
	if len(stored) == 0 {
		return doc
	}

	// Unmarshalling into a prefilled struct only overwrites keys present in
	// the JSON, which gives field-level merge for the nested sections. The
	// map needs separate handling: json.Unmarshal merges into a non-nil map,
	// but a default must not resurrect a section the admin explicitly hid,
	// so the prefilled map already does the right thing.
	defaults := DefaultSiteContent()
	if err := json.Unmarshal(stored, &doc); err != nil {
		return defaults
	}
	if !doc.Buttons.Radius.Valid() {
		doc.Buttons.Radius = defaults.Buttons.Radius
	}
	if doc.Sections == nil {
		doc.Sections = defaults.Sections
	}
	return doc
}
