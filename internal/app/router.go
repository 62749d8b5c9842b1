package app

import (
	"log/slog"
	"net/http"

	"gemgate/internal/transport/http/handler"
	"gemgate/internal/transport/http/middleware"
)

// RouterOptions configures the HTTP router behavior.
type RouterOptions struct {
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router with all application routes.
// Returns an http.Handler with middleware applied.
func NewRouter(repo *handler.Repo, opts *RouterOptions) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", repo.Infra.HealthCheck)

	// Exact-path match only: a bare "GET /" pattern conflicts with the
	// methodless proxy pattern below and panics at registration.
	mux.HandleFunc("GET /{$}", repo.Infra.RootStatus)

	// No method in the pattern: the handler answers non-POST methods itself
	// with the JSON Method Not Allowed body.
	mux.HandleFunc("/api/generate", repo.Proxy.Generate)

	// Apply middleware chain (order: outer to inner)
	var h http.Handler = mux

	// Request logging (if logger provided)
	if opts != nil && opts.Logger != nil {
		h = middleware.RequestLogger(opts.Logger)(h)
	}

	// Request ID (always applied)
	h = middleware.RequestID(h)

	// CORS (always applied)
	h = middleware.CORS(h)

	return h
}
