// Package main is the entry point for the vitrine storefront server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitrine/internal/cache"
	"vitrine/internal/cart"
	"vitrine/internal/config"
	"vitrine/internal/database"
	"vitrine/internal/handlers"
	"vitrine/internal/preview"
	"vitrine/internal/router"
	"vitrine/internal/session"
	"vitrine/internal/storage"
	"vitrine/internal/store"
)

func main() {
	// Structured logger; text output reads fine in both dev and container logs.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (sessions, drafts, carts, response cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	contentStore := store.NewSiteContentStore(db)
	themeStore := store.NewThemeStore(db)
	productStore := store.NewProductStore(db)
	categoryStore := store.NewCategoryStore(db)
	serviceStore := store.NewServiceStore(db)
	promotionStore := store.NewPromotionStore(db)
	catalogStore := store.NewCatalogStore(db)
	reviewStore := store.NewReviewStore(db)
	mediaStore := store.NewMediaStore(db)

	// Connect to S3-compatible object storage (optional — app works without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3BucketPublic, cfg.S3BucketPrivate, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected",
				"endpoint", cfg.S3Endpoint,
				"public_bucket", cfg.S3BucketPublic,
				"private_bucket", cfg.S3BucketPrivate,
			)
		}
	} else {
		slog.Warn("s3 storage not configured — media uploads and catalog downloads disabled")
	}

	// Draft buffer and preview state machine. Drafts expire with the session.
	draftStore := preview.NewDraftStore(valkeyClient, sessionStore.TTL())
	previewManager := preview.NewManager(draftStore, contentStore, themeStore)

	// Visitor carts share the session lifetime too.
	cartStore := cart.NewStore(valkeyClient, sessionStore.TTL())

	// Listing response cache (products, categories and friends).
	respCache := cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(
		contentStore, themeStore, productStore, categoryStore, serviceStore,
		promotionStore, catalogStore, reviewStore, previewManager, respCache,
		storageClient,
	)
	cartHandlers := handlers.NewCart(cartStore, productStore, cfg.WhatsAppNumber)
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	adminHandlers := handlers.NewAdmin(
		contentStore, themeStore, productStore, categoryStore, serviceStore,
		promotionStore, catalogStore, reviewStore, mediaStore, respCache,
		storageClient,
	)
	previewHandlers := handlers.NewPreview(previewManager)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, router.Handlers{
		Public:  publicHandlers,
		Cart:    cartHandlers,
		Auth:    authHandlers,
		Admin:   adminHandlers,
		Preview: previewHandlers,
	})

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// media uploads to S3, which can take a while on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
