package ai

import (
	"context"

	"hirescreen/internal/types"
)

// AIProvider interface for different AI implementations
// All methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	ClassifyDomain(ctx context.Context, job *types.JobRequirement) (types.DomainClassification, *TokenUsage, error)
	EvaluateMatch(ctx context.Context, candidate *types.CandidateProfile, job *types.JobRequirement) (types.SemanticMatch, *TokenUsage, error)
	SuggestSkills(ctx context.Context, candidate *types.CandidateProfile) ([]string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
