package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBuildGenerateURL(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		model  string
		apiKey string
		want   string
	}{
		{
			name:   "plain model",
			base:   "https://generativelanguage.googleapis.com/v1beta",
			model:  "gemini-pro",
			apiKey: "abc123",
			want:   "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent?key=abc123",
		},
		{
			name:   "trailing slash on base",
			base:   "https://example.test/v1beta/",
			model:  "gemini-pro",
			apiKey: "abc",
			want:   "https://example.test/v1beta/models/gemini-pro:generateContent?key=abc",
		},
		{
			name:   "model with path separator is escaped",
			base:   "https://example.test",
			model:  "weird/model",
			apiKey: "abc",
			want:   "https://example.test/models/weird%2Fmodel:generateContent?key=abc",
		},
		{
			name:   "key with reserved characters is escaped",
			base:   "https://example.test",
			model:  "gemini-pro",
			apiKey: "a&b=c",
			want:   "https://example.test/models/gemini-pro:generateContent?key=a%26b%3Dc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildGenerateURL(tt.base, tt.model, tt.apiKey)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_Generate(t *testing.T) {
	var gotMethod, gotPath, gotKey, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	outcome, err := client.Generate(context.Background(), "gemini-pro", "sekret", []byte(`{"contents":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/models/gemini-pro:generateContent" {
		t.Errorf("unexpected path: %q", gotPath)
	}
	if gotKey != "sekret" {
		t.Errorf("unexpected key: %q", gotKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("unexpected content type: %q", gotContentType)
	}
	if string(gotBody) != `{"contents":[]}` {
		t.Errorf("payload not sent verbatim: %q", gotBody)
	}

	if !outcome.Success() {
		t.Errorf("expected success for status %d", outcome.StatusCode)
	}
	if string(outcome.Body) != `{"candidates":[]}` {
		t.Errorf("unexpected body: %q", outcome.Body)
	}
}

func TestClient_GenerateNon2xxIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("invalid api key"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	outcome, err := client.Generate(context.Background(), "gemini-pro", "bad", []byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Success() {
		t.Error("expected Success() to be false for 403")
	}
	if outcome.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", outcome.StatusCode)
	}
	if string(outcome.Body) != "invalid api key" {
		t.Errorf("unexpected body: %q", outcome.Body)
	}
}

func TestClient_GenerateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, 0)
	if _, err := client.Generate(context.Background(), "gemini-pro", "k", []byte(`{}`)); err == nil {
		t.Error("expected transport error")
	}
}

func TestClient_GenerateHonorsContext(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	client := NewClient(srv.URL, 0)
	go func() {
		_, err := client.Generate(ctx, "gemini-pro", "k", []byte(`{}`))
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected error after cancellation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Generate did not return after context cancellation")
	}
}
