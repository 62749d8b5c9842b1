package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"gemgate/internal/app"
	"gemgate/internal/config"
	"gemgate/internal/gemini"
	"gemgate/internal/tokenizer"
	"gemgate/internal/transport/http/handler"
)

func main() {
	// Best-effort: a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	if err := config.EnsureConfigFile(); err != nil {
		logger.Warn("could not write default config file", "error", err)
	}
	cfg := config.Load()

	client := gemini.NewClient(cfg.BaseURL, cfg.RequestTimeout)
	keys := config.NewEnvKeySource(cfg.APIKeyVar)
	tok := tokenizer.New()

	repo := handler.NewRepo(client, keys, tok, logger)
	router := app.NewRouter(repo, &app.RouterOptions{Logger: logger})
	srv := app.NewServer(cfg, router)

	printStartupBanner(cfg)

	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}
