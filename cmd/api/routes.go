package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	httphandlers "vigil/internal/interfaces/http"
	"vigil/internal/shared/config"
	"vigil/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and wraps them in the middleware
// pipeline. Order is the contract: tracing sees every request (even rejected
// ones), admission control runs before routing, and per-route metrics only
// observe admitted requests. Unmatched paths 404 out of the mux and still
// pass back through metrics and tracing.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", httphandlers.HandleHealth)

	// Items
	mux.HandleFunc("GET /v1/items", deps.ItemHandler.HandleListItems)
	mux.HandleFunc("POST /v1/items", deps.ItemHandler.HandleCreateItem)

	// Observability and docs
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /docs", httphandlers.HandleDocs)
	mux.HandleFunc("GET /api-docs/openapi.json", httphandlers.HandleOpenAPI)

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.Logging,
		middleware.Tracing,
		middleware.RateLimit(cfg.RateLimit.PerSecond),
		middleware.Metrics,
	)
}
