package main

import (
	"log/slog"
	"net/http"
	"strings"

	"safha/internal/auth"
	"safha/internal/handler"
	"safha/internal/middleware"

	"github.com/rs/cors"
)

// routes bundles what newRouter needs; verifier is nil when auth is disabled
type routes struct {
	docHandler    *handler.DocumentHandler
	searchHandler *handler.SearchHandler
	verifier      auth.JWTVerifier
	corsOrigins   string
	logger        *slog.Logger
}

// newRouter builds the mux and wraps it in middleware.
// Order: CORS → Recovery → (Auth on /api/) → Routes
func newRouter(rt routes) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/documents/paginate", rt.docHandler.PaginateDocument)
	api.HandleFunc("POST /api/search", rt.searchHandler.Search)

	var apiHandler http.Handler = api
	if rt.verifier != nil {
		apiHandler = middleware.AuthMiddleware(rt.verifier, rt.logger)(apiHandler)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", rt.docHandler.HealthCheck)
	mux.Handle("/api/", apiHandler)

	var h http.Handler = mux
	h = middleware.Recovery(rt.logger)(h)

	// CORS must run before auth so OPTIONS pre-flight requests succeed
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(rt.corsOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	return corsHandler.Handler(h)
}
