package config

import "os"

// KeySource resolves the upstream API key for a single invocation.
// Implementations must not cache: the key is re-read on every call so that a
// rotated or removed key takes effect without a restart.
type KeySource interface {
	// APIKey returns the upstream API key, or "" when none is configured.
	APIKey() string
}

// EnvKeySource resolves the key from a process environment variable.
type EnvKeySource struct {
	Var string
}

// NewEnvKeySource creates a key source for the given environment variable.
// An empty name falls back to DefaultAPIKeyVar.
func NewEnvKeySource(varName string) *EnvKeySource {
	if varName == "" {
		varName = DefaultAPIKeyVar
	}
	return &EnvKeySource{Var: varName}
}

// APIKey reads the environment variable on every call.
func (s *EnvKeySource) APIKey() string {
	return os.Getenv(s.Var)
}
