// Package proxy implements the generateContent forwarding handler.
package proxy

import (
	"context"
	"log/slog"

	"gemgate/internal/config"
	"gemgate/internal/gemini"
	"gemgate/internal/tokenizer"
)

// Upstream issues a single generateContent call. Satisfied by *gemini.Client.
type Upstream interface {
	Generate(ctx context.Context, model, apiKey string, payload []byte) (*gemini.Outcome, error)
}

// Handlers holds the dependencies for the proxy HTTP handlers.
type Handlers struct {
	Upstream  Upstream
	Keys      config.KeySource
	Tokenizer tokenizer.Tokenizer
	Logger    *slog.Logger
}

// New creates a new instance of proxy handlers. Tokenizer may be nil to skip
// token estimates in log lines.
func New(upstream Upstream, keys config.KeySource, tok tokenizer.Tokenizer, logger *slog.Logger) *Handlers {
	return &Handlers{
		Upstream:  upstream,
		Keys:      keys,
		Tokenizer: tok,
		Logger:    logger,
	}
}

func (h *Handlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
