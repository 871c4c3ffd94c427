package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hirescreen/internal/config"
	"hirescreen/internal/errors"
	"hirescreen/internal/taxonomy"
)

func newTestServer() *Server {
	return &Server{
		Version:   "test",
		AppConfig: &config.Config{},
		APIKeys:   map[string]bool{},
		Store:     taxonomy.NewStore(nil),
		Logger:    errors.NewLogger(slog.LevelError),
	}
}

func TestHealthHandlerAIDisabled(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.healthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if body["status"] != "healthy" {
		t.Errorf("expected status healthy, got %v", body["status"])
	}
	if body["service"] != "hirescreen" {
		t.Errorf("expected service hirescreen, got %v", body["service"])
	}

	aiModels, ok := body["ai_models"].(map[string]any)
	if !ok {
		t.Fatalf("expected ai_models object, got %T", body["ai_models"])
	}
	if enabled, _ := aiModels["enabled"].(bool); enabled {
		t.Error("expected AI to be reported disabled")
	}

	tax, ok := body["taxonomy"].(map[string]any)
	if !ok {
		t.Fatalf("expected taxonomy object, got %T", body["taxonomy"])
	}
	if tax["source"] != "builtin" {
		t.Errorf("expected builtin taxonomy source, got %v", tax["source"])
	}
}

func TestHealthHandlerRejectsPost(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	s.healthHandler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer()
	s.APIKeys = map[string]bool{"valid-key-12345": true}

	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	handler := s.authMiddleware(next)

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
	}{
		{"MissingKey", "", "", http.StatusUnauthorized},
		{"InvalidKey", "X-API-Key", "wrong-key", http.StatusUnauthorized},
		{"ValidKey", "X-API-Key", "valid-key-12345", http.StatusOK},
		{"ValidBearerToken", "Authorization", "Bearer valid-key-12345", http.StatusOK},
		{"InvalidBearerToken", "Authorization", "Bearer wrong-key", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/score", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestAuthMiddlewareSkippedWithoutKeys(t *testing.T) {
	s := newTestServer()

	called := false
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/extract", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !called {
		t.Error("expected handler to be called when no API keys are configured")
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"short", "****"},
		{"exactly8", "****"},
		{"valid-key-12345", "valid-ke****"},
	}

	for _, tt := range tests {
		if got := maskAPIKey(tt.key); got != tt.want {
			t.Errorf("maskAPIKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
