package scoring

import (
	"context"
	"fmt"

	"hirescreen/internal/errors"
	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

// defaultScoreFloor is the lowest score a validly scored candidate receives;
// 0 stays reserved for the invalid-input sentinel
const defaultScoreFloor = 5

// JobClassifier resolves a job posting to a domain category
type JobClassifier interface {
	Classify(ctx context.Context, job *types.JobRequirement) string
}

// MatchAugmenter is the optional semantic collaborator surface used during
// scoring. Its output only supplements reasons; rule-based results stand
// alone when it is absent or failing.
type MatchAugmenter interface {
	EvaluateMatch(ctx context.Context, candidate *types.CandidateProfile, job *types.JobRequirement) (*types.SemanticMatch, error)
	IsAvailable() bool
}

// Engine scores candidates against jobs. Safe for concurrent use; scoring
// reads only immutable taxonomy tables and its inputs.
type Engine struct {
	store      *taxonomy.Store
	classifier JobClassifier
	augmenter  MatchAugmenter
	floor      int
	logger     *errors.Logger
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithScoreFloor overrides the minimum score for validly scored candidates
func WithScoreFloor(floor int) EngineOption {
	return func(e *Engine) {
		if floor > 0 {
			e.floor = floor
		}
	}
}

// WithAugmenter attaches the optional semantic collaborator
func WithAugmenter(augmenter MatchAugmenter) EngineOption {
	return func(e *Engine) { e.augmenter = augmenter }
}

// WithLogger attaches a logger for recovered scoring failures
func WithLogger(logger *errors.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates a scoring engine. A nil store uses the builtin tables;
// a nil classifier sends every job to the default domain.
func NewEngine(store *taxonomy.Store, classifier JobClassifier, opts ...EngineOption) *Engine {
	if store == nil {
		store = taxonomy.NewStore(nil)
	}
	e := &Engine{
		store:      store,
		classifier: classifier,
		floor:      defaultScoreFloor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ScoreOne scores a candidate against one job. It never returns an error:
// invalid candidates produce the score-0 sentinel result and unexpected
// scorer failures are recovered into a floor-score fallback.
func (e *Engine) ScoreOne(ctx context.Context, candidate *types.CandidateProfile, job *types.JobRequirement) (result *types.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Warn("Recovered scoring failure, substituting fallback result",
					"panic", fmt.Sprint(r),
					"job", jobTitle(job))
			}
			result = e.fallbackResult(r)
		}
	}()

	if candidate == nil || candidate.Name == types.UnknownCandidateName {
		return invalidCandidateResult()
	}

	category := taxonomy.DefaultDomain
	if e.classifier != nil {
		category = e.classifier.Classify(ctx, job)
	}

	table := e.store.Current()
	domain, ok := table.Domains[category]
	if !ok {
		domain, ok = table.Domains[taxonomy.DefaultDomain]
		if !ok {
			return e.fallbackResult("no domain taxonomy configured")
		}
	}

	result = scoreDomain(candidate, job, domain, e.floor)
	e.augment(ctx, candidate, job, result)
	return result
}

// ScoreMany scores a candidate against every job independently; one job's
// failure never affects the others. BestJob is the maximum score, ties
// resolved to the first job in input order.
func (e *Engine) ScoreMany(ctx context.Context, candidate *types.CandidateProfile, jobs []types.JobRequirement) *types.MultiJobResult {
	multi := &types.MultiJobResult{
		Results: make(map[string]*types.ScoreResult, len(jobs)),
	}

	for i := range jobs {
		job := &jobs[i]
		result := e.ScoreOne(ctx, candidate, job)

		// Duplicate titles get a numeric suffix so every job keeps its
		// own entry in the result map.
		key := job.Title
		for n := 2; ; n++ {
			if _, taken := multi.Results[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s #%d", job.Title, n)
		}
		multi.Results[key] = result

		// Strict comparison keeps the first tied job as best.
		if i == 0 || result.Score > multi.BestJob.Score {
			multi.BestJob = types.BestJob{
				Title:    job.Title,
				Score:    result.Score,
				Category: result.DomainCategory,
			}
		}
	}

	return multi
}

// augment appends the semantic collaborator's strengths, gaps, and
// reasoning when it is present and succeeds; any failure is silent
// degradation to the rule-based result
func (e *Engine) augment(ctx context.Context, candidate *types.CandidateProfile, job *types.JobRequirement, result *types.ScoreResult) {
	if e.augmenter == nil || !e.augmenter.IsAvailable() {
		return
	}

	match, err := e.augmenter.EvaluateMatch(ctx, candidate, job)
	if err != nil || match == nil {
		if err != nil && e.logger != nil {
			e.logger.Debug("Semantic match unavailable, keeping rule-based result",
				"job", jobTitle(job), "error", err.Error())
		}
		return
	}

	for _, strength := range match.Strengths {
		result.Reasons = append(result.Reasons, "strength: "+strength)
	}
	for _, gap := range match.Gaps {
		result.Reasons = append(result.Reasons, "gap: "+gap)
	}
	if match.Reasoning != "" {
		result.Reasons = append(result.Reasons, "assessment: "+match.Reasoning)
	}
}

// invalidCandidateResult is the score-0 sentinel for missing or
// unidentified candidates
func invalidCandidateResult() *types.ScoreResult {
	return &types.ScoreResult{
		Score:       0,
		Valid:       false,
		SkillsMatch: types.SkillsMatch{Matched: []string{}, Missing: []string{}},
		Reasons:     []string{"invalid candidate: missing or unidentified profile"},
	}
}

// fallbackResult substitutes a floor score when a scorer fails unexpectedly
func (e *Engine) fallbackResult(cause any) *types.ScoreResult {
	return &types.ScoreResult{
		Score:       e.floor,
		Valid:       true,
		SkillsMatch: types.SkillsMatch{Matched: []string{}, Missing: []string{}},
		Reasons:     []string{fmt.Sprintf("scoring error: %v", cause)},
	}
}

func jobTitle(job *types.JobRequirement) string {
	if job == nil {
		return ""
	}
	return job.Title
}
