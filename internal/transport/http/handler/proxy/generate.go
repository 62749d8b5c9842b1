package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"gemgate/internal/transport/http/handler/shared"
	"gemgate/internal/transport/http/middleware"
	"gemgate/internal/types"
)

// Generate forwards a generateContent request to the upstream API with the
// server-held key injected. Method and key are checked before anything else;
// every other failure funnels through a single error boundary and is answered
// as an internal error.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		shared.WriteJSON(w, types.MethodNotAllowed(), http.StatusMethodNotAllowed)
		return
	}

	requestID := middleware.GetRequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	// The key is resolved per invocation, never cached.
	apiKey := h.Keys.APIKey()
	if apiKey == "" {
		h.logger().Error("upstream API key not configured", "request_id", requestID)
		shared.WriteJSON(w, types.MissingAPIKey(), http.StatusInternalServerError)
		return
	}

	if err := h.forward(w, r, requestID, apiKey); err != nil {
		h.logger().Error("proxy failed", "request_id", requestID, "error", err)
		shared.WriteJSON(w, types.NewInternalError(err), http.StatusInternalServerError)
	}
}

// forward runs the fallible part of a proxy invocation. Any returned error is
// translated into the internal-error response by Generate, so nothing may be
// written to w until the upstream outcome is fully in hand.
func (h *Handlers) forward(w http.ResponseWriter, r *http.Request, requestID, apiKey string) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	r.Body.Close()

	var req types.GenerateRequest
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	payload := []byte(req.Payload)

	promptTokens := 0
	if h.Tokenizer != nil {
		if n, err := h.Tokenizer.CountPayload(payload); err == nil {
			promptTokens = n
		}
	}

	h.logger().Info("forwarding request",
		"request_id", requestID,
		"model", req.Model,
		"payload_bytes", len(payload),
		"prompt_tokens_estimate", promptTokens,
	)

	outcome, err := h.Upstream.Generate(r.Context(), req.Model, apiKey, payload)
	if err != nil {
		return err
	}

	if !outcome.Success() {
		h.logger().Warn("upstream error",
			"request_id", requestID,
			"status", outcome.StatusCode,
		)
		shared.WriteJSON(w, types.NewUpstreamError(string(outcome.Body)), outcome.StatusCode)
		return nil
	}

	// Confirm the upstream body is JSON, then relay the raw bytes so the
	// response stays byte-identical. Any 2xx status maps to 200.
	var parsed json.RawMessage
	if err := json.Unmarshal(outcome.Body, &parsed); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}

	h.logger().Info("upstream success",
		"request_id", requestID,
		"status", outcome.StatusCode,
		"response_bytes", len(outcome.Body),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(outcome.Body)
	return nil
}
