// Package handler exposes the serverless entry point for Vercel's Go runtime.
package handler

import (
	"log/slog"
	"net/http"
	"os"

	"gemgate/internal/app"
	"gemgate/internal/config"
	"gemgate/internal/gemini"
	"gemgate/internal/tokenizer"
	httphandler "gemgate/internal/transport/http/handler"
)

var router http.Handler

// init runs once per cold start. Environment variables are set in the
// hosting platform's dashboard, not a .env file.
func init() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	client := gemini.NewClient(cfg.BaseURL, cfg.RequestTimeout)
	keys := config.NewEnvKeySource(cfg.APIKeyVar)

	repo := httphandler.NewRepo(client, keys, tokenizer.New(), logger)
	router = app.NewRouter(repo, &app.RouterOptions{Logger: logger})
}

// Handler is the entry point for Vercel's Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	router.ServeHTTP(w, r)
}
