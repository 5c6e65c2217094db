package handlers

import (
	"strings"
	"unicode/utf8"

	"vitrine/internal/models"
)

// Validation limits for storefront entity fields.
const (
	maxNameLen        = 200
	maxSlugLen        = 200
	maxDescriptionLen = 20_000
	maxTitleLen       = 300
	maxBodyLen        = 10_000
	maxURLLen         = 2_000
)

// validateNamed checks the name/slug pair shared by products, categories,
// services, and themes. Returns the first error found, or "".
func validateNamed(name, slug string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 200 characters)."
	}
	return ""
}

// validateProduct checks product-specific fields.
func validateProduct(p *models.Product) string {
	if msg := validateNamed(p.Name, p.Slug); msg != "" {
		return msg
	}
	if p.PriceCents < 0 {
		return "Price cannot be negative."
	}
	if utf8.RuneCountInString(p.Description) > maxDescriptionLen {
		return "Description is too long (max 20,000 characters)."
	}
	if utf8.RuneCountInString(p.ImageURL) > maxURLLen {
		return "Image URL is too long."
	}
	return ""
}

// validateReview checks a review submission.
func validateReview(r *models.Review) string {
	if strings.TrimSpace(r.AuthorName) == "" {
		return "Author name is required."
	}
	if r.Rating < 1 || r.Rating > 5 {
		return "Rating must be between 1 and 5."
	}
	if utf8.RuneCountInString(r.Body) > maxBodyLen {
		return "Review is too long (max 10,000 characters)."
	}
	return ""
}

// validatePromotion checks a promotion's fields.
func validatePromotion(p *models.Promotion) string {
	if strings.TrimSpace(p.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(p.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if p.StartsAt != nil && p.EndsAt != nil && p.EndsAt.Before(*p.StartsAt) {
		return "End date must be after the start date."
	}
	return ""
}
