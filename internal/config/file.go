package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
type FileConfig struct {
	ServerPort            string `toml:"server_port"`
	BaseURL               string `toml:"base_url"`
	RequestTimeoutSeconds *int   `toml:"request_timeout_seconds"`
	APIKeyVar             string `toml:"api_key_var"`
}

// LoadFile loads configuration from the TOML file.
// Returns an empty FileConfig if the file doesn't exist. On a decode error
// the returned FileConfig is still usable (empty), so callers that ignore
// the error fall back to env values and defaults.
func LoadFile() (*FileConfig, error) {
	cfg := &FileConfig{}

	path := ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return &FileConfig{}, err
	}

	return cfg, nil
}

// EnsureConfigFile creates a default config file with commented examples if none exists.
func EnsureConfigFile() error {
	path := ConfigPath()

	// If config already exists, do nothing
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	// Ensure directory exists
	if err := EnsureDataDir(); err != nil {
		return err
	}

	defaultConfig := `# Gemgate Configuration
# server_port = ":8080"

# Upstream Generative Language API base URL
# base_url = "https://generativelanguage.googleapis.com/v1beta"

# Upstream call timeout in seconds (0 disables the timeout)
# request_timeout_seconds = 300

# Name of the environment variable holding the upstream API key
# api_key_var = "GEMINI_API_KEY"
`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
