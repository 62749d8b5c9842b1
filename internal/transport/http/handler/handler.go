// Package handler wires the HTTP handlers to their dependencies.
package handler

import (
	"log/slog"
	"time"

	"gemgate/internal/config"
	"gemgate/internal/tokenizer"
	"gemgate/internal/transport/http/handler/infra"
	"gemgate/internal/transport/http/handler/proxy"
)

// Repo composes all domain-specific handlers.
type Repo struct {
	Proxy *proxy.Handlers
	Infra *infra.Handlers
}

// NewRepo creates a new instance of the composed handler repository.
func NewRepo(upstream proxy.Upstream, keys config.KeySource, tok tokenizer.Tokenizer, logger *slog.Logger) *Repo {
	return &Repo{
		Proxy: proxy.New(upstream, keys, tok, logger),
		Infra: infra.New(time.Now()),
	}
}
