package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hirescreen/internal/observability"
	"hirescreen/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createExtractHandler wraps the extract handler with observability
func (s *Server) createExtractHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("hirescreen.api")
		ctx, span := tracer.Start(ctx, "api.extract")
		defer span.End()

		var req ExtractRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}
		if len(req.ResumeText) > int(s.MaxRequestSize) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "extract"),
		)

		metrics := om.GetMetrics()
		profile, err := s.Extractor.Extract(req.ResumeText)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			metrics.RecordBusinessMetric(ctx, "resume_extracted", false, om)
			writeErrorResponse(w, "Failed to extract profile", err.Error(), http.StatusBadRequest)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_extracted", true, om,
			attribute.Int("skills_count", len(profile.Skills)))
		metrics.RecordExtractionConfidence(ctx, profile.Confidence, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("profile.skills_count", len(profile.Skills)),
			attribute.Int("profile.confidence", profile.Confidence),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profile); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("hirescreen.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}
		if err := req.Job.Validate(); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid job", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("request.job_title", req.Job.Title),
			attribute.String("operation", "score"),
		)

		metrics := om.GetMetrics()
		profile, err := s.Extractor.Extract(req.ResumeText)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			writeErrorResponse(w, "Failed to extract profile", err.Error(), http.StatusBadRequest)
			return
		}

		start := time.Now()
		result := s.Engine.ScoreOne(ctx, profile, &req.Job)
		metrics.RecordScoringDuration(ctx, time.Since(start), om,
			attribute.String("job_title", req.Job.Title))
		metrics.RecordBusinessMetric(ctx, "score_computed", result.Valid, om,
			attribute.String("domain_category", result.DomainCategory))
		metrics.RecordScore(ctx, result.Score, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("result.score", result.Score),
			attribute.Bool("result.valid", result.Valid),
			attribute.String("result.domain_category", result.DomainCategory),
		)

		response := ScoreResponse{Candidate: profile, Result: result}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createScreenHandler wraps the batch screening handler with observability
func (s *Server) createScreenHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("hirescreen.api")
		ctx, span := tracer.Start(ctx, "api.screen")
		defer span.End()

		var req ScreenRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.Resumes) == 0 {
			err := fmt.Errorf("missing resumes")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resumes", "resumes field must contain at least one resume", http.StatusBadRequest)
			return
		}
		if req.Job == nil && len(req.Jobs) == 0 {
			err := fmt.Errorf("missing job")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job", "either job or jobs field is required", http.StatusBadRequest)
			return
		}
		if req.Job != nil {
			if err := req.Job.Validate(); err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "validation"))
				writeErrorResponse(w, "Invalid job", err.Error(), http.StatusBadRequest)
				return
			}
		}
		for i := range req.Jobs {
			if err := req.Jobs[i].Validate(); err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "validation"))
				writeErrorResponse(w, "Invalid job", fmt.Sprintf("jobs[%d]: %v", i, err), http.StatusBadRequest)
				return
			}
		}

		span.SetAttributes(
			attribute.Int("request.resume_count", len(req.Resumes)),
			attribute.Int("request.job_count", max(len(req.Jobs), 1)),
			attribute.String("operation", "screen"),
		)

		metrics := om.GetMetrics()

		// Extraction is best-effort per resume; unparseable entries become
		// nil profiles and score as invalid-input sentinels.
		candidates := make([]*types.CandidateProfile, len(req.Resumes))
		for i, text := range req.Resumes {
			profile, err := s.Extractor.Extract(text)
			if err != nil {
				s.Logger.Warn("Skipping unparseable resume in batch", "index", i, "error", err)
				candidates[i] = &types.CandidateProfile{Name: types.UnknownCandidateName}
				continue
			}
			candidates[i] = profile
			metrics.RecordExtractionConfidence(ctx, profile.Confidence, om)
		}

		var report *types.ScreeningReport
		if len(req.Jobs) > 0 {
			report = s.Screener.ScreenMulti(ctx, candidates, req.Jobs)
		} else {
			report = s.Screener.ScreenOne(ctx, candidates, req.Job)
		}

		metrics.RecordBusinessMetric(ctx, "candidate_screened", true, om,
			attribute.Int("candidates", len(candidates)))
		if report.Statistics != nil {
			span.SetAttributes(
				attribute.Int("result.total_candidates", report.Statistics.TotalCandidates),
				attribute.Int("result.qualified_candidates", report.Statistics.QualifiedCandidates),
				attribute.Int("result.top_score", report.Statistics.TopScore),
			)
		}
		span.SetAttributes(attribute.Bool("success", true))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
