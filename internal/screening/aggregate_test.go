package screening

import (
	"testing"

	"hirescreen/internal/types"
)

func validResult(score int) *types.ScoreResult {
	return &types.ScoreResult{Score: score, Valid: true}
}

func TestAggregateEmptyBatch(t *testing.T) {
	stats := Aggregate(nil, 0)

	if stats.TotalCandidates != 0 || stats.QualifiedCandidates != 0 ||
		stats.AverageScore != 0 || stats.TopScore != 0 {
		t.Errorf("empty batch stats = %+v, want all zero", stats)
	}
}

func TestAggregate(t *testing.T) {
	results := []*types.ScoreResult{
		validResult(85),
		validResult(62),
		validResult(45),
		validResult(20),
		{Score: 0, Valid: false}, // invalid sentinel
	}

	stats := Aggregate(results, 0)

	if stats.TotalCandidates != 5 {
		t.Errorf("total = %d, want 5", stats.TotalCandidates)
	}
	// Mean of 85, 62, 45, 20 is 53; the sentinel is excluded.
	if stats.AverageScore != 53 {
		t.Errorf("average = %d, want 53", stats.AverageScore)
	}
	if stats.TopScore != 85 {
		t.Errorf("top = %d, want 85", stats.TopScore)
	}
	if stats.QualifiedCandidates != 2 {
		t.Errorf("qualified = %d, want 2 (>= 50)", stats.QualifiedCandidates)
	}
	if stats.QualifiedCandidates > stats.TotalCandidates {
		t.Error("qualified exceeds total")
	}

	dist := stats.ScoreDistribution
	if dist.Excellent != 1 || dist.Good != 1 || dist.Average != 1 || dist.Poor != 1 {
		t.Errorf("distribution = %+v, want one per band", dist)
	}
}

func TestAggregateCustomThreshold(t *testing.T) {
	results := []*types.ScoreResult{validResult(65), validResult(75), validResult(40)}

	stats := Aggregate(results, 70)
	if stats.QualifiedCandidates != 1 {
		t.Errorf("qualified = %d, want 1 with threshold 70", stats.QualifiedCandidates)
	}
}

func TestAggregateAllInvalid(t *testing.T) {
	results := []*types.ScoreResult{
		{Score: 0, Valid: false},
		{Score: 0, Valid: false},
	}

	stats := Aggregate(results, 0)
	if stats.TotalCandidates != 2 {
		t.Errorf("total = %d, want 2", stats.TotalCandidates)
	}
	if stats.AverageScore != 0 || stats.TopScore != 0 || stats.QualifiedCandidates != 0 {
		t.Errorf("stats = %+v, want zero score fields", stats)
	}
}

func multiResult(title, category string, score int) *types.MultiJobResult {
	return &types.MultiJobResult{
		Results: map[string]*types.ScoreResult{
			title: {Score: score, Valid: score > 0, DomainCategory: category},
		},
		BestJob: types.BestJob{Title: title, Score: score, Category: category},
	}
}

func TestAggregateMulti(t *testing.T) {
	results := []*types.MultiJobResult{
		multiResult("Full Stack Developer", "full-stack", 82),
		multiResult("Full Stack Developer", "full-stack", 64),
		multiResult("Accountant", "finance", 70),
		multiResult("Accountant", "finance", 0), // invalid sentinel
	}

	stats := AggregateMulti(results, 0)

	if stats.TotalCandidates != 4 {
		t.Errorf("total = %d, want 4", stats.TotalCandidates)
	}
	// Mean of 82, 64, 70 is 72.
	if stats.AverageScore != 72 {
		t.Errorf("average = %d, want 72", stats.AverageScore)
	}
	if stats.TopScore != 82 {
		t.Errorf("top = %d, want 82", stats.TopScore)
	}

	fullStack := stats.CategoryBreakdown["full-stack"]
	if fullStack.Count != 2 || fullStack.AverageScore != 73 {
		t.Errorf("full-stack breakdown = %+v, want count 2 average 73", fullStack)
	}
	finance := stats.CategoryBreakdown["finance"]
	if finance.Count != 1 || finance.AverageScore != 70 {
		t.Errorf("finance breakdown = %+v, want count 1 average 70", finance)
	}
}

func TestAggregateMultiEmpty(t *testing.T) {
	stats := AggregateMulti(nil, 0)
	if stats.TotalCandidates != 0 || stats.AverageScore != 0 || len(stats.CategoryBreakdown) != 0 {
		t.Errorf("empty multi stats = %+v, want all zero", stats)
	}
}
