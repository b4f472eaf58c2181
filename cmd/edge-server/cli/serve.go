package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/schalder/ecombuildr-edge/internal/db"
	"github.com/schalder/ecombuildr-edge/internal/edge/classifier"
	"github.com/schalder/ecombuildr-edge/internal/edge/config"
	"github.com/schalder/ecombuildr-edge/internal/edge/handler"
	"github.com/schalder/ecombuildr-edge/internal/edge/middleware"
	"github.com/schalder/ecombuildr-edge/internal/edge/renderer"
	"github.com/schalder/ecombuildr-edge/internal/edge/resolver"
	"github.com/schalder/ecombuildr-edge/internal/edge/store"
	tlsmanager "github.com/schalder/ecombuildr-edge/internal/edge/tls"
	"github.com/schalder/ecombuildr-edge/pkg/logger"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the edge server",
	Long:  `Start the SEO edge server: classifies inbound requests, resolves content metadata and serves crawler HTML or the SPA shell.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runServer()
	},
}

func runServer() error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	if err := logger.Setup(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
		File:   cfg.Logging.File,
	}); err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	logger.InfoEvent().
		Str("version", version).
		Str("build_time", buildTime).
		Str("git_commit", gitCommit).
		Msg("Starting edge server")

	// Connect to the content store
	logger.InfoEvent().
		Str("driver", cfg.Database.Driver).
		Str("database", cfg.Database.Database).
		Msg("Connecting to content store")

	database, err := db.Connect(db.Config{
		Driver:      cfg.Database.Driver,
		Host:        cfg.Database.Host,
		Port:        cfg.Database.Port,
		Database:    cfg.Database.Database,
		Username:    cfg.Database.Username,
		Password:    cfg.Database.Password,
		SSLMode:     cfg.Database.SSLMode,
		SQLLogLevel: cfg.Database.SQLLogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to content store: %w", err)
	}

	logger.InfoEvent().Msg("Connected to content store")

	// Migrations only matter for sqlite-backed local runs; the hosted
	// Postgres schema is owned by the dashboard application.
	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Build the resolution pipeline
	contentStore := store.NewGormStore(database)
	pathClassifier := classifier.New(cfg.Server.SystemDomains)
	contentResolver := resolver.New(contentStore, pathClassifier)

	htmlRenderer, err := renderer.New(renderer.Options{
		Locale:              cfg.SEO.Locale,
		FallbackTitle:       cfg.SEO.FallbackTitle,
		FallbackDescription: cfg.SEO.FallbackDescription,
		AssetBase:           cfg.SEO.AssetBase,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	edgeHandler := handler.New(pathClassifier, contentResolver, htmlRenderer, handler.Options{
		CacheMaxAge:  cfg.SEO.CacheMaxAge,
		DebugHeaders: cfg.SEO.DebugHeaders,
	})

	// Middleware chain
	var edge http.Handler = edgeHandler
	edge = middleware.SecurityHeaders(edge)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		edge = limiter.Limit(edge)
	}

	// Setup TLS if enabled
	var tlsMgr *tlsmanager.Manager
	if cfg.TLS.AutoCert || (cfg.TLS.CertFile != "" && cfg.TLS.KeyFile != "") {
		tlsMgr, err = tlsmanager.NewManager(tlsmanager.Config{
			AutoCert:      cfg.TLS.AutoCert,
			CertDir:       cfg.TLS.CertDir,
			SystemDomains: cfg.Server.SystemDomains,
			CertFile:      cfg.TLS.CertFile,
			KeyFile:       cfg.TLS.KeyFile,
			Email:         cfg.TLS.Email,
		}, contentStore)
		if err != nil {
			return fmt.Errorf("failed to setup TLS: %w", err)
		}

		if tlsMgr.IsEnabled() {
			logger.InfoEvent().
				Bool("auto_cert", cfg.TLS.AutoCert).
				Msg("TLS enabled")
		}
	}

	// Create HTTP handler (with autocert support if enabled)
	httpHandler := edge
	if tlsMgr != nil && tlsMgr.GetHTTPHandler() != nil {
		// Wrap with autocert HTTP-01 challenge handler
		httpHandler = tlsMgr.GetHTTPHandler().HTTPHandler(edge)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	var httpsServer *http.Server
	if tlsMgr != nil && tlsMgr.IsEnabled() {
		httpsServer = &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPSPort),
			Handler:      edge,
			TLSConfig:    tlsMgr.GetTLSConfig(),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		}
	}

	// Diagnostics server: health + metrics, internal port only
	diagMux := http.NewServeMux()
	diagMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	diagMux.Handle("/metrics", promhttp.Handler())

	diagServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.DiagnosticsPort),
		Handler:      diagMux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.InfoEvent().
			Str("addr", httpServer.Addr).
			Msg("HTTP edge server listening")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	// Start HTTPS server if TLS is enabled
	if httpsServer != nil {
		go func() {
			logger.InfoEvent().
				Str("addr", httpsServer.Addr).
				Msg("HTTPS edge server listening")

			if err := httpsServer.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
				logger.Fatal(fmt.Sprintf("HTTPS server error: %v", err))
			}
		}()
	}

	// Start diagnostics server
	go func() {
		logger.InfoEvent().
			Str("addr", diagServer.Addr).
			Msg("Diagnostics server listening")

		if err := diagServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(fmt.Sprintf("Diagnostics server error: %v", err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.InfoEvent().Msg("Shutting down servers...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.ErrorEvent().Err(err).Msg("HTTP server shutdown error")
	}
	if httpsServer != nil {
		if err := httpsServer.Shutdown(ctx); err != nil {
			logger.ErrorEvent().Err(err).Msg("HTTPS server shutdown error")
		}
	}
	if err := diagServer.Shutdown(ctx); err != nil {
		logger.ErrorEvent().Err(err).Msg("Diagnostics server shutdown error")
	}

	return nil
}
