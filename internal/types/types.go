// Package types defines the request envelope and response shapes for the proxy.
package types

import "encoding/json"

// GenerateRequest is the inbound envelope: the upstream model identifier plus
// the generateContent body to forward. Payload stays raw so it reaches the
// upstream byte-for-byte.
type GenerateRequest struct {
	Model   string          `json:"model"`
	Payload json.RawMessage `json:"payload"`
}

// MessageResponse is the single-field JSON body used for every failure class
// except internal errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// InternalErrorResponse reports an unexpected failure with its cause.
type InternalErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Response message constants. The upstream error prefix is part of the public
// contract; existing callers match on it, including its language.
const (
	msgMethodNotAllowed = "Method Not Allowed"
	msgMissingAPIKey    = "Server configuration error: API key not set."
	msgInternalError    = "Internal Server Error"
	upstreamErrorPrefix = "Error de la API de Gemini: "
)

// MethodNotAllowed is the body for rejected non-POST requests.
func MethodNotAllowed() *MessageResponse {
	return &MessageResponse{Message: msgMethodNotAllowed}
}

// MissingAPIKey is the body returned when no upstream key is configured.
func MissingAPIKey() *MessageResponse {
	return &MessageResponse{Message: msgMissingAPIKey}
}

// NewUpstreamError wraps a non-2xx upstream body into the message field.
func NewUpstreamError(upstreamBody string) *MessageResponse {
	return &MessageResponse{Message: upstreamErrorPrefix + upstreamBody}
}

// NewInternalError reports an unexpected failure to the caller.
func NewInternalError(err error) *InternalErrorResponse {
	return &InternalErrorResponse{Message: msgInternalError, Error: err.Error()}
}
