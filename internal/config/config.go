package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from environment and file.
// Priority: Env vars → config.toml → defaults
type Config struct {
	// ServerPort is the address to bind the server to (e.g., ":8080")
	ServerPort string

	// BaseURL overrides the upstream Generative Language API base URL.
	// Empty means the client's built-in default.
	BaseURL string

	// RequestTimeout bounds a single upstream call. Zero disables the
	// timeout for deployments that rely on the platform's execution limit.
	RequestTimeout time.Duration

	// APIKeyVar is the name of the environment variable holding the
	// upstream API key.
	APIKeyVar string
}

// DefaultAPIKeyVar is the environment variable consulted for the upstream key
// unless configured otherwise.
const DefaultAPIKeyVar = "GEMINI_API_KEY"

// defaultRequestTimeoutSeconds matches the server read/write timeouts.
const defaultRequestTimeoutSeconds = 300

// Load reads configuration from file and environment variables.
// Environment variables override file config values.
func Load() *Config {
	fileConfig, _ := LoadFile() // Ignore error, use defaults

	timeoutSeconds := getEnvIntOrFile("REQUEST_TIMEOUT_SECONDS", fileConfig.RequestTimeoutSeconds, defaultRequestTimeoutSeconds)

	return &Config{
		ServerPort:     getEnvOrFile("SERVER_PORT", fileConfig.ServerPort, ":8080"),
		BaseURL:        getEnvOrFile("GEMINI_BASE_URL", fileConfig.BaseURL, ""),
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
		APIKeyVar:      getEnvOrFile("GEMINI_API_KEY_VAR", fileConfig.APIKeyVar, DefaultAPIKeyVar),
	}
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvIntOrFile returns env int, file int, or default (in priority order)
func getEnvIntOrFile(key string, fileValue *int, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}
