package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"safha/internal/auth"
	"safha/internal/config"
	"safha/internal/handler"
	serviceDocsys "safha/internal/service/docsystem"
	"safha/internal/service/docsystem/converter"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, logCloser, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer logCloser.Close()

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"page_size", cfg.Pagination.PageSize,
		"auth_enabled", cfg.AuthJWKSURL != "",
	)

	// Authentication is optional; without a JWKS URL the API is open
	var verifier auth.JWTVerifier
	if cfg.AuthJWKSURL != "" {
		verifier, err = auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer verifier.Close()
	} else {
		logger.Warn("authentication disabled: AUTH_JWKS_URL is not set")
	}

	paginator, err := serviceDocsys.NewPaginator(cfg.Pagination.PageSize)
	if err != nil {
		log.Fatalf("Failed to create paginator: %v", err)
	}
	contentAnalyzer := serviceDocsys.NewContentAnalyzer()
	docService := serviceDocsys.NewDocumentService(paginator, contentAnalyzer, converter.NewRegistry(), cfg.Pagination.MaxPageSize, logger)
	searchService := serviceDocsys.NewSearchService(paginator, cfg.Search, cfg.Pagination.MaxPageSize, logger)

	router := newRouter(routes{
		docHandler:    handler.NewDocumentHandler(docService, logger),
		searchHandler: handler.NewSearchHandler(searchService, logger),
		verifier:      verifier,
		corsOrigins:   cfg.CORSOrigins,
		logger:        logger,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}()

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("server stopped")
}
