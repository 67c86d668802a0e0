// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/nsodat/vitrina/internal/content"
	"github.com/nsodat/vitrina/internal/mcpserver"
	"github.com/nsodat/vitrina/internal/publish"
	"github.com/nsodat/vitrina/internal/render"
	"github.com/nsodat/vitrina/internal/sse"
	"github.com/nsodat/vitrina/internal/web"
)

// Run starts the HTTP application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("content_dir", cfg.Content.Dir),
		slog.Bool("publish_enabled", cfg.Publish.Enabled()),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, holder, err := openContent(ctx, cfg, logger)
	if err != nil {
		return err
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	var publisher web.Publisher
	if cfg.Publish.Enabled() {
		publisher = publish.New(cfg.Publish.Dir, cfg.Publish.Remote, cfg.Publish.Branch, logger)
	}

	// Build web service and router.
	site := render.Site{Title: cfg.Site.Title, Owner: cfg.Site.Owner, Description: cfg.Site.Description}
	svc := web.NewService(store, holder, renderer, broker, publisher, site)
	imagesDir := filepath.Join(filepath.Dir(cfg.Content.Dir), "images")
	appRouter := web.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker, imagesDir)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*", "https://nsodat.github.io"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "If-Match", "If-None-Match"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount the page, data, fragment and API routes.
	r.Mount("/", appRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the content dir and forward reloads to SSE clients.
	g.Go(func() error {
		return content.Watch(gCtx, holder, store, logger, func(kind string, sec content.Section) {
			broker.PublishSectionEvent(kind, string(sec))
		})
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP serves the portfolio over MCP stdio. Logs go to stderr since
// stdout carries the protocol.
func RunMCP(_ context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	store, holder, err := openContent(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	imagesDir := filepath.Join(filepath.Dir(cfg.Content.Dir), "images")
	srv := mcpserver.New(store, holder, imagesDir)

	logger.Info("MCP server starting on stdio", slog.String("content_dir", cfg.Content.Dir))
	return srv.ServeStdio()
}

// openContent prepares the document directory, seeds missing documents
// and loads the first snapshot.
func openContent(ctx context.Context, cfg *Config, logger *slog.Logger) (*content.Store, *content.Holder, error) {
	if err := os.MkdirAll(cfg.Content.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create content dir: %w", err)
	}

	store, err := content.NewStore(cfg.Content.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("init content store: %w", err)
	}

	seeded, err := content.EnsureDefaults(store)
	if err != nil {
		return nil, nil, fmt.Errorf("seed defaults: %w", err)
	}
	for _, sec := range seeded {
		logger.Info("Seeded default document", slog.String("section", string(sec)))
	}

	holder := content.NewHolder(store, logger)
	holder.Refresh(ctx)
	return store, holder, nil
}
