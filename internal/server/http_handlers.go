package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// healthHandler provides a comprehensive health check endpoint including AI collaborator status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "hirescreen",
		"version": s.Version,
	}

	// Taxonomy status
	response["taxonomy"] = s.checkTaxonomyHealth()

	overallHealthy := true

	// AI collaborator status (optional component: absence is healthy)
	if s.Semantic != nil && s.Semantic.IsAvailable() {
		timeout := s.getHealthCheckTimeout()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		response["ai_models"] = s.Semantic.GetModelInfo(ctx)

		breakerStats := s.Semantic.GetCircuitBreakerStats()
		response["circuit_breakers"] = breakerStats

		if healthy, ok := breakerStats["overall_healthy"].(bool); ok && !healthy {
			overallHealthy = false
		}
	} else {
		response["ai_models"] = map[string]any{
			"enabled": false,
			"message": "AI collaborator disabled, rule-based screening only",
		}
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkTaxonomyHealth reports the state of the taxonomy tables and watcher
func (s *Server) checkTaxonomyHealth() map[string]any {
	status := map[string]any{
		"source": "builtin",
	}

	if s.AppConfig.Engine.TaxonomyFile != "" {
		status["source"] = "file"
		status["file"] = s.AppConfig.Engine.TaxonomyFile
	}

	if table := s.Store.Current(); table != nil {
		status["domains"] = len(table.Domains)
	}

	if s.TaxonomyWatcher != nil {
		status["hot_reload"] = map[string]any{
			"enabled": true,
			"running": s.TaxonomyWatcher.IsRunning(),
		}
	} else {
		status["hot_reload"] = map[string]any{"enabled": false}
	}

	return status
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "hirescreen",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
		"screening": map[string]any{
			"workers":              s.AppConfig.Engine.Workers,
			"qualifying_threshold": s.AppConfig.Engine.QualifyingThreshold,
			"score_floor":          s.AppConfig.Engine.ScoreFloor,
			"ai_enabled":           s.Semantic != nil && s.Semantic.IsAvailable(),
		},
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
