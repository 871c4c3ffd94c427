package ai

import (
	"context"
	"fmt"

	"hirescreen/internal/config"
	"hirescreen/internal/errors"
	"hirescreen/internal/types"
)

// Semantic bundles the per-operation AI services behind the collaborator
// surfaces the screening engine consumes. All methods tolerate a nil
// receiver so a disabled collaborator can be passed around directly.
type Semantic struct {
	classify *Service
	match    *Service
	augment  *Service

	classifyCfg config.OperationAIConfig
	matchCfg    config.OperationAIConfig
	augmentCfg  config.OperationAIConfig

	logger *errors.Logger
}

// NewSemantic builds the semantic collaborator from the application config.
// Returns nil when AI is disabled; callers treat nil as "not available".
func NewSemantic(cfg *config.Config, logger *errors.Logger) (*Semantic, error) {
	if !cfg.AI.Enabled {
		logger.Debug("AI collaborator disabled, screening runs rule-based only")
		return nil, nil
	}

	classifyCfg := cfg.GetClassifyConfig()
	matchCfg := cfg.GetMatchConfig()
	augmentCfg := cfg.GetAugmentConfig()

	classifySvc, err := NewService(&classifyCfg, "classify", logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create classify service: %w", err)
	}
	matchSvc, err := NewService(&matchCfg, "match", logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create match service: %w", err)
	}
	augmentSvc, err := NewService(&augmentCfg, "augment", logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create augment service: %w", err)
	}

	return &Semantic{
		classify:    classifySvc,
		match:       matchSvc,
		augment:     augmentSvc,
		classifyCfg: classifyCfg,
		matchCfg:    matchCfg,
		augmentCfg:  augmentCfg,
		logger:      logger,
	}, nil
}

// IsAvailable reports whether the collaborator can serve requests
func (s *Semantic) IsAvailable() bool {
	return s != nil && s.classify != nil && s.match != nil && s.augment != nil
}

// ClassifyDomain asks the AI collaborator to categorize a job posting
func (s *Semantic) ClassifyDomain(ctx context.Context, job *types.JobRequirement) (string, float64, error) {
	if !s.IsAvailable() {
		return "", 0, errors.NewAIError(errors.ErrCodeAIServiceFailed, "AI collaborator is not available", nil)
	}

	opCtx, cancel := context.WithTimeout(ctx, *s.classifyCfg.Timeout)
	defer cancel()

	result, usage, err := s.classify.Provider.ClassifyDomain(opCtx, job)
	if err != nil {
		return "", 0, err
	}
	s.logTokenUsage("classify_domain", usage)

	return result.Category, result.Confidence, nil
}

// EvaluateMatch asks the AI collaborator for a fit assessment
func (s *Semantic) EvaluateMatch(ctx context.Context, candidate *types.CandidateProfile, job *types.JobRequirement) (*types.SemanticMatch, error) {
	if !s.IsAvailable() {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed, "AI collaborator is not available", nil)
	}

	opCtx, cancel := context.WithTimeout(ctx, *s.matchCfg.Timeout)
	defer cancel()

	result, usage, err := s.match.Provider.EvaluateMatch(opCtx, candidate, job)
	if err != nil {
		return nil, err
	}
	s.logTokenUsage("evaluate_match", usage)

	return &result, nil
}

// AugmentSkills asks the AI collaborator for skills implied by the resume
func (s *Semantic) AugmentSkills(ctx context.Context, candidate *types.CandidateProfile) ([]string, error) {
	if !s.IsAvailable() {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed, "AI collaborator is not available", nil)
	}

	opCtx, cancel := context.WithTimeout(ctx, *s.augmentCfg.Timeout)
	defer cancel()

	skills, usage, err := s.augment.Provider.SuggestSkills(opCtx, candidate)
	if err != nil {
		return nil, err
	}
	s.logTokenUsage("suggest_skills", usage)

	return skills, nil
}

// GetModelInfo reports model readiness for health checks, keyed by operation
func (s *Semantic) GetModelInfo(ctx context.Context) map[string]any {
	if !s.IsAvailable() {
		return map[string]any{"available": false}
	}

	return map[string]any{
		"classify": s.classify.GetModelInfo(ctx),
		"match":    s.match.GetModelInfo(ctx),
		"augment":  s.augment.GetModelInfo(ctx),
	}
}

// GetCircuitBreakerStats aggregates breaker stats across operations
func (s *Semantic) GetCircuitBreakerStats() map[string]any {
	if !s.IsAvailable() {
		return map[string]any{"enabled": false}
	}

	stats := map[string]any{}
	healthy := true
	for name, svc := range map[string]*Service{
		"classify": s.classify,
		"match":    s.match,
		"augment":  s.augment,
	} {
		if gp, ok := svc.Provider.(*GeminiProvider); ok {
			opStats := gp.GetCircuitBreakerStats()
			stats[name] = opStats
			if h, ok := opStats["overall_healthy"].(bool); ok && !h {
				healthy = false
			}
		}
	}
	stats["overall_healthy"] = healthy

	return stats
}

// Close releases all provider resources
func (s *Semantic) Close() error {
	if !s.IsAvailable() {
		return nil
	}

	for _, svc := range []*Service{s.classify, s.match, s.augment} {
		if err := svc.Provider.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Semantic) logTokenUsage(operation string, usage *TokenUsage) {
	if usage == nil {
		return
	}
	s.logger.Debug("AI token usage",
		"operation", operation,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"total_tokens", usage.TotalTokens)
}
