// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so tests see pure defaults.
// envOrDefault treats "" the same as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
		"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY",
		"S3_BUCKET_PUBLIC", "S3_BUCKET_PRIVATE", "S3_PUBLIC_URL",
		"WHATSAPP_NUMBER",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("DBHost", cfg.DBHost, "localhost")
	check("DBUser", cfg.DBUser, "vitrine")
	check("DBPassword", cfg.DBPassword, "changeme")
	check("DBName", cfg.DBName, "vitrine")
	check("ValkeyHost", cfg.ValkeyHost, "localhost")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("S3Region", cfg.S3Region, "us-east-1")
	check("S3BucketPublic", cfg.S3BucketPublic, "vitrine-public")
	check("S3BucketPrivate", cfg.S3BucketPrivate, "vitrine-private")

	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
}

func TestLoadDSNAndAddr(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_DB", "storefront")
	t.Setenv("APP_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	dsn := cfg.DSN()
	if !strings.Contains(dsn, "shop:secret@db.internal:5432/storefront") {
		t.Errorf("DSN = %q", dsn)
	}
	if cfg.Addr() != "0.0.0.0:9000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadProductionRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("WHATSAPP_NUMBER", "5511999990000")

	if _, err := Load(); err == nil {
		t.Error("production with default DB password should fail")
	}

	t.Setenv("POSTGRES_PASSWORD", "real-secret")
	if _, err := Load(); err != nil {
		t.Errorf("production with real password failed: %v", err)
	}
}

func TestLoadProductionRequiresWhatsApp(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "real-secret")

	if _, err := Load(); err == nil {
		t.Error("production without WhatsApp number should fail")
	}
}
