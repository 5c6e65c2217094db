package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user and a starter theme. It is a no-op when users already exist.
// The admin will be prompted to set up 2FA on first login.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@vitrine.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Starter theme so the storefront has colors out of the box.
	_, err = db.Exec(`
		INSERT INTO themes (name, slug, primary_color, secondary_color, accent_color, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
	`, "Default", "default", "222 47% 31%", "210 40% 96%", "32 95% 52%")
	if err != nil {
		return fmt.Errorf("seed insert theme: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@vitrine.local",
		"password", "admin",
	)

	return nil
}
