package screening

import (
	"context"
	"slices"
	"testing"

	"hirescreen/internal/scoring"
	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

type stubClassifier struct {
	category string
}

func (s *stubClassifier) Classify(_ context.Context, _ *types.JobRequirement) string {
	return s.category
}

func testEngine() *scoring.Engine {
	return scoring.NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})
}

func testCandidates() []*types.CandidateProfile {
	return []*types.CandidateProfile{
		{
			Name:       "Priya Kumar",
			Skills:     []string{"react", "node", "sql", "docker"},
			Experience: types.Experience{Years: 3},
			Education:  "Bachelor's",
			RawText:    "full stack developer, B.Tech in Computer Science",
		},
		{
			Name:       "Rohan Gupta",
			Skills:     []string{"accounting", "tally"},
			Experience: types.Experience{Years: 2},
			Education:  "Bachelor's",
			RawText:    "B.Com accounting",
		},
		{
			Name: types.UnknownCandidateName, // invalid sentinel
		},
	}
}

func testJob() *types.JobRequirement {
	return &types.JobRequirement{
		Title:          "Full Stack Developer",
		RequiredSkills: []string{"react", "node"},
		MinExperience:  2,
		MaxExperience:  5,
	}
}

func TestScreenOne(t *testing.T) {
	screener := NewScreener(testEngine(), WithWorkers(2))
	candidates := testCandidates()

	report := screener.ScreenOne(context.Background(), candidates, testJob())

	if len(report.Single) != len(candidates) {
		t.Fatalf("results = %d, want %d", len(report.Single), len(candidates))
	}

	// Order follows input order, not completion order.
	for i, entry := range report.Single {
		if entry.Candidate.Name != candidates[i].Name {
			t.Errorf("result %d is for %q, want %q", i, entry.Candidate.Name, candidates[i].Name)
		}
	}

	if report.Statistics.TotalCandidates != len(candidates) {
		t.Errorf("stats total = %d, want %d", report.Statistics.TotalCandidates, len(candidates))
	}

	// The sentinel candidate scores 0 and stays out of the average.
	last := report.Single[len(report.Single)-1].Result
	if last.Valid || last.Score != 0 {
		t.Errorf("sentinel candidate result = %+v, want invalid score 0", last)
	}
}

func TestScreenMulti(t *testing.T) {
	screener := NewScreener(testEngine(), WithWorkers(4))
	candidates := testCandidates()
	jobs := []types.JobRequirement{
		*testJob(),
		{Title: "Backend Developer", RequiredSkills: []string{"node", "sql"}, MinExperience: 2, MaxExperience: 5},
	}

	report := screener.ScreenMulti(context.Background(), candidates, jobs)

	if len(report.Multi) != len(candidates) {
		t.Fatalf("results = %d, want %d", len(report.Multi), len(candidates))
	}
	for _, entry := range report.Multi {
		if len(entry.Result.Results) != len(jobs) {
			t.Errorf("candidate %q scored against %d jobs, want %d",
				entry.Candidate.Name, len(entry.Result.Results), len(jobs))
		}
	}
	if report.Statistics.CategoryBreakdown == nil {
		t.Error("multi-job statistics should carry a category breakdown")
	}
}

func TestScreenOneCancelled(t *testing.T) {
	screener := NewScreener(testEngine())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := screener.ScreenOne(ctx, testCandidates(), testJob())

	// No units were submitted; the report is empty but well formed.
	if len(report.Single) != 0 {
		t.Errorf("results = %d, want 0 after pre-cancelled context", len(report.Single))
	}
	if report.Statistics == nil {
		t.Fatal("statistics must be present even for an empty run")
	}
}

type stubSkillAugmenter struct {
	extra []string
}

func (s *stubSkillAugmenter) AugmentSkills(_ context.Context, _ *types.CandidateProfile) ([]string, error) {
	return s.extra, nil
}

func (s *stubSkillAugmenter) IsAvailable() bool { return true }

func TestScreenOneSkillAugmentation(t *testing.T) {
	augmenter := &stubSkillAugmenter{extra: []string{"kubernetes", "react"}}
	screener := NewScreener(testEngine(), WithSkillAugmenter(augmenter))

	original := testCandidates()[:1]
	originalSkills := slices.Clone(original[0].Skills)

	report := screener.ScreenOne(context.Background(), original, testJob())

	merged := report.Single[0].Candidate.Skills
	if !slices.Contains(merged, "kubernetes") {
		t.Errorf("merged skills = %v, want kubernetes added", merged)
	}
	// Duplicates are not re-added.
	count := 0
	for _, skill := range merged {
		if skill == "react" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("react appears %d times, want 1", count)
	}
	// The input profile is never patched in place.
	if !slices.Equal(original[0].Skills, originalSkills) {
		t.Errorf("input profile mutated: %v", original[0].Skills)
	}
}
