package screening

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"hirescreen/internal/errors"
	"hirescreen/internal/scoring"
	"hirescreen/internal/types"
)

// defaultWorkers bounds the scoring parallelism when none is configured
const defaultWorkers = 8

// SkillAugmenter is the optional semantic collaborator surface for merging
// additional skills into a profile before scoring
type SkillAugmenter interface {
	AugmentSkills(ctx context.Context, candidate *types.CandidateProfile) ([]string, error)
	IsAvailable() bool
}

// Screener scores candidate batches in parallel and aggregates statistics.
// Each (candidate, job) unit is independent; results are collected by
// original input position so ordering never depends on completion time.
type Screener struct {
	engine    *scoring.Engine
	augmenter SkillAugmenter
	workers   int
	threshold int
	logger    *errors.Logger
}

// ScreenerOption configures a Screener
type ScreenerOption func(*Screener)

// WithWorkers bounds the number of concurrent scoring units
func WithWorkers(n int) ScreenerOption {
	return func(s *Screener) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithQualifyingThreshold overrides the qualified-candidate cutoff
func WithQualifyingThreshold(threshold int) ScreenerOption {
	return func(s *Screener) {
		if threshold > 0 {
			s.threshold = threshold
		}
	}
}

// WithSkillAugmenter attaches the optional semantic skill augmenter
func WithSkillAugmenter(augmenter SkillAugmenter) ScreenerOption {
	return func(s *Screener) { s.augmenter = augmenter }
}

// WithScreenerLogger attaches a logger
func WithScreenerLogger(logger *errors.Logger) ScreenerOption {
	return func(s *Screener) { s.logger = logger }
}

// NewScreener creates a batch screener around a scoring engine
func NewScreener(engine *scoring.Engine, opts ...ScreenerOption) *Screener {
	s := &Screener{
		engine:    engine,
		workers:   defaultWorkers,
		threshold: DefaultQualifyingThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScreenOne scores every candidate against a single job and aggregates the
// batch. Cancellation stops submitting new units; results already scored
// are kept and reported.
func (s *Screener) ScreenOne(ctx context.Context, candidates []*types.CandidateProfile, job *types.JobRequirement) *types.ScreeningReport {
	prepared := s.prepare(ctx, candidates)

	results := make([]*types.ScoreResult, len(prepared))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, candidate := range prepared {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = s.engine.ScoreOne(gctx, candidate, job)
			return nil
		})
	}
	_ = g.Wait()

	report := &types.ScreeningReport{Job: job}
	var scored []*types.ScoreResult
	for i, result := range results {
		if result == nil {
			continue
		}
		report.Single = append(report.Single, types.CandidateScore{
			Candidate: prepared[i],
			Result:    result,
		})
		scored = append(scored, result)
	}
	report.Statistics = Aggregate(scored, s.threshold)
	return report
}

// ScreenMulti scores every candidate against every job, selecting a best
// job per candidate and adding the category breakdown to the statistics.
func (s *Screener) ScreenMulti(ctx context.Context, candidates []*types.CandidateProfile, jobs []types.JobRequirement) *types.ScreeningReport {
	prepared := s.prepare(ctx, candidates)

	results := make([]*types.MultiJobResult, len(prepared))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, candidate := range prepared {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = s.engine.ScoreMany(gctx, candidate, jobs)
			return nil
		})
	}
	_ = g.Wait()

	report := &types.ScreeningReport{Jobs: jobs}
	var scored []*types.MultiJobResult
	for i, result := range results {
		if result == nil {
			continue
		}
		report.Multi = append(report.Multi, types.CandidateMultiScore{
			Candidate: prepared[i],
			Result:    result,
		})
		scored = append(scored, result)
	}
	report.Statistics = AggregateMulti(scored, s.threshold)
	return report
}

// prepare applies optional semantic skill augmentation. Profiles are
// immutable once built, so augmentation produces replacement copies
// rather than patching in place.
func (s *Screener) prepare(ctx context.Context, candidates []*types.CandidateProfile) []*types.CandidateProfile {
	if s.augmenter == nil || !s.augmenter.IsAvailable() {
		return candidates
	}

	prepared := make([]*types.CandidateProfile, len(candidates))
	for i, candidate := range candidates {
		prepared[i] = s.augmentCandidate(ctx, candidate)
	}
	return prepared
}

func (s *Screener) augmentCandidate(ctx context.Context, candidate *types.CandidateProfile) *types.CandidateProfile {
	if candidate == nil {
		return nil
	}

	extra, err := s.augmenter.AugmentSkills(ctx, candidate)
	if err != nil || len(extra) == 0 {
		if err != nil && s.logger != nil {
			s.logger.Debug("Skill augmentation unavailable, using extracted skills",
				"candidate", candidate.Name, "error", err.Error())
		}
		return candidate
	}

	merged := *candidate
	merged.Skills = slices.Clone(candidate.Skills)
	for _, skill := range extra {
		if !slices.Contains(merged.Skills, skill) {
			merged.Skills = append(merged.Skills, skill)
		}
	}
	return &merged
}
