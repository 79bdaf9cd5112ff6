package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/service"
)

// Options wires the router's collaborators.
type Options struct {
	// Analyzer may be nil, in which case /api/v1/analyze answers 503.
	Analyzer service.StrengthAnalyzer

	// AnalyzeLimiter overrides the in-memory per-IP limiter on /api/v1/analyze.
	AnalyzeLimiter func(http.Handler) http.Handler

	AnalyzeRatePerSec float64
	AnalyzeBurst      int

	// TrustProxyHeaders keys the limiters on forwarding headers instead of the peer address.
	TrustProxyHeaders bool
}

// NewRouter builds the HTTP API.
func NewRouter(opts Options) http.Handler {
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService())
	analyzeHandler := handler.NewAnalyzerHandler(service.NewAnalyzerService(opts.Analyzer))

	clientKey := middleware.ClientKey(opts.TrustProxyHeaders)

	analyzeLimiter := opts.AnalyzeLimiter
	if analyzeLimiter == nil {
		analyzeLimiter = middleware.RateLimit(opts.AnalyzeRatePerSec, opts.AnalyzeBurst, clientKey)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.RateLimit(20, 40, clientKey)).Post("/generate", genHandler.HandleGenerate)
		r.With(analyzeLimiter).Post("/analyze", analyzeHandler.HandleAnalyze)
	})

	return r
}
