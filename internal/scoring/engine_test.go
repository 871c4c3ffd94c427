package scoring

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

type stubClassifier struct {
	category string
}

func (s *stubClassifier) Classify(_ context.Context, _ *types.JobRequirement) string {
	return s.category
}

type panicClassifier struct{}

func (p *panicClassifier) Classify(_ context.Context, _ *types.JobRequirement) string {
	panic("classifier blew up")
}

func fullStackCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		Name:   "Priya Kumar",
		Email:  "priya@example.com",
		Skills: []string{"html", "css", "javascript", "react", "node", "express", "mongodb", "sql", "git", "docker"},
		Experience: types.Experience{
			Years:     3,
			Positions: []string{"Full Stack Developer"},
		},
		Education:  "Bachelor's",
		Confidence: 100,
		RawText:    "Priya Kumar, full stack developer. B.Tech in Computer Science.",
	}
}

func financeCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		Name:       "Rohan Gupta",
		Skills:     []string{"accounting", "bookkeeping", "tally", "taxation"},
		Experience: types.Experience{Years: 3},
		Education:  "Bachelor's",
		Confidence: 75,
		RawText:    "Rohan Gupta, accounting professional. B.Com with Tally experience.",
	}
}

func fullStackJob() *types.JobRequirement {
	return &types.JobRequirement{
		Title:          "Full Stack Developer",
		Description:    "Build react and node applications",
		RequiredSkills: []string{"react", "node", "mongodb"},
		MinExperience:  2,
		MaxExperience:  5,
	}
}

func TestScoreOneStrongMatch(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})
	result := engine.ScoreOne(context.Background(), fullStackCandidate(), fullStackJob())

	if !result.Valid {
		t.Error("expected valid result")
	}
	if result.Score < 70 || result.Score > 100 {
		t.Errorf("score = %d, want strong match in [70, 100]", result.Score)
	}
	if !result.ExperienceMatch {
		t.Error("expected experience match for 3 years against 2-5 range")
	}
	if !result.EducationMatch {
		t.Error("expected education match for computer science background")
	}
	if result.DomainPenalty != 0 {
		t.Errorf("domain penalty = %d, want 0", result.DomainPenalty)
	}
	if result.SkillsMatch.Percentage != 100 {
		t.Errorf("skills match percentage = %d, want 100", result.SkillsMatch.Percentage)
	}
	if len(result.Reasons) == 0 {
		t.Error("expected a populated reasons audit trail")
	}
	if result.DomainCategory != taxonomy.DomainFullStack {
		t.Errorf("domain category = %q, want %q", result.DomainCategory, taxonomy.DomainFullStack)
	}
}

func TestScoreOneCrossDomainPenalty(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainGeneralSoftware})
	job := &types.JobRequirement{
		Title:          "Software Engineer",
		RequiredSkills: []string{"python", "java"},
		MinExperience:  1,
		MaxExperience:  5,
	}

	result := engine.ScoreOne(context.Background(), financeCandidate(), job)

	if result.Score >= 30 {
		t.Errorf("score = %d, want below 30 for a cross-domain candidate", result.Score)
	}
	if result.DomainPenalty == 0 {
		t.Error("expected a non-zero domain penalty")
	}
	if !result.Valid {
		t.Error("cross-domain mismatch is still a valid scoring outcome")
	}
}

func TestScoreOneInvalidCandidate(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})

	tests := []struct {
		name      string
		candidate *types.CandidateProfile
	}{
		{"nil candidate", nil},
		{"sentinel name", &types.CandidateProfile{Name: types.UnknownCandidateName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.ScoreOne(context.Background(), tt.candidate, fullStackJob())
			if result.Score != 0 {
				t.Errorf("score = %d, want sentinel 0", result.Score)
			}
			if result.Valid {
				t.Error("expected Valid=false for invalid candidate")
			}
			if len(result.Reasons) != 1 {
				t.Errorf("reasons = %v, want exactly one", result.Reasons)
			}
		})
	}
}

func TestScoreOneRecoversFromPanic(t *testing.T) {
	engine := NewEngine(nil, &panicClassifier{})
	result := engine.ScoreOne(context.Background(), fullStackCandidate(), fullStackJob())

	if result.Score != defaultScoreFloor {
		t.Errorf("score = %d, want floor %d", result.Score, defaultScoreFloor)
	}
	if !result.Valid {
		t.Error("fallback result should stay valid")
	}
	if len(result.Reasons) != 1 || !strings.HasPrefix(result.Reasons[0], "scoring error:") {
		t.Errorf("reasons = %v, want single scoring error reason", result.Reasons)
	}
}

func TestScoreOneDeterministic(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})

	first := engine.ScoreOne(context.Background(), fullStackCandidate(), fullStackJob())
	second := engine.ScoreOne(context.Background(), fullStackCandidate(), fullStackJob())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("rule-based scoring not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestScoreOneBounds(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFinance})

	candidates := []*types.CandidateProfile{
		fullStackCandidate(),
		financeCandidate(),
		{Name: "No Skills", Experience: types.Experience{Years: 0}, Education: types.EducationNotSpecified},
	}
	jobs := []*types.JobRequirement{
		{Title: "Accountant", RequiredSkills: []string{"tally", "gst"}, MinExperience: 5, MaxExperience: 10},
		{Title: "Junior Accountant", MinExperience: 0, MaxExperience: 2},
	}

	for _, candidate := range candidates {
		for _, job := range jobs {
			result := engine.ScoreOne(context.Background(), candidate, job)
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("score %d out of [0, 100] for %s / %s", result.Score, candidate.Name, job.Title)
			}
			if result.Valid && result.Score < defaultScoreFloor {
				t.Errorf("valid score %d below floor %d", result.Score, defaultScoreFloor)
			}
		}
	}
}

func TestScoreMany(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})
	jobs := []types.JobRequirement{
		{Title: "Backend Developer", RequiredSkills: []string{"node", "sql"}, MinExperience: 2, MaxExperience: 5},
		{Title: "Network Engineer", RequiredSkills: []string{"cisco", "bgp"}, MinExperience: 2, MaxExperience: 5},
		{Title: "Full Stack Developer", RequiredSkills: []string{"react", "node"}, MinExperience: 2, MaxExperience: 5},
	}

	multi := engine.ScoreMany(context.Background(), fullStackCandidate(), jobs)

	if len(multi.Results) != len(jobs) {
		t.Fatalf("results = %d entries, want %d", len(multi.Results), len(jobs))
	}
	for _, job := range jobs {
		if _, ok := multi.Results[job.Title]; !ok {
			t.Errorf("missing result for job %q", job.Title)
		}
	}

	maxScore := 0
	for _, result := range multi.Results {
		if result.Score > maxScore {
			maxScore = result.Score
		}
	}
	if multi.BestJob.Score != maxScore {
		t.Errorf("bestJob.Score = %d, want max %d", multi.BestJob.Score, maxScore)
	}
}

func TestScoreManyKeepsDuplicateTitlesSeparate(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})

	jobs := []types.JobRequirement{
		{Title: "Developer", RequiredSkills: []string{"react"}, MinExperience: 2, MaxExperience: 5},
		{Title: "Developer", RequiredSkills: []string{"cobol"}, MinExperience: 2, MaxExperience: 5},
	}

	multi := engine.ScoreMany(context.Background(), fullStackCandidate(), jobs)

	if len(multi.Results) != len(jobs) {
		t.Fatalf("results = %d entries, want %d", len(multi.Results), len(jobs))
	}
	if _, ok := multi.Results["Developer"]; !ok {
		t.Error("missing result under the original title")
	}
	if _, ok := multi.Results["Developer #2"]; !ok {
		t.Error("missing result under the disambiguated title")
	}
}

func TestScoreManyTieBreaksByInputOrder(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})

	// Identical requirements under different titles produce identical scores.
	jobs := []types.JobRequirement{
		{Title: "Developer A", RequiredSkills: []string{"react"}, MinExperience: 2, MaxExperience: 5},
		{Title: "Developer B", RequiredSkills: []string{"react"}, MinExperience: 2, MaxExperience: 5},
	}

	multi := engine.ScoreMany(context.Background(), fullStackCandidate(), jobs)

	if multi.Results["Developer A"].Score != multi.Results["Developer B"].Score {
		t.Fatal("test setup expects a tie")
	}
	if multi.BestJob.Title != "Developer A" {
		t.Errorf("bestJob.Title = %q, want first listed on tie", multi.BestJob.Title)
	}
}

func TestScoreManyEmptyJobs(t *testing.T) {
	engine := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})
	multi := engine.ScoreMany(context.Background(), fullStackCandidate(), nil)

	if len(multi.Results) != 0 {
		t.Errorf("results = %d entries, want 0", len(multi.Results))
	}
	if multi.BestJob.Title != "" || multi.BestJob.Score != 0 {
		t.Errorf("bestJob = %+v, want zero value", multi.BestJob)
	}
}

type stubAugmenter struct {
	available bool
	match     *types.SemanticMatch
	err       error
}

func (s *stubAugmenter) EvaluateMatch(_ context.Context, _ *types.CandidateProfile, _ *types.JobRequirement) (*types.SemanticMatch, error) {
	return s.match, s.err
}

func (s *stubAugmenter) IsAvailable() bool { return s.available }

func TestScoreOneSemanticAugmentation(t *testing.T) {
	augmenter := &stubAugmenter{
		available: true,
		match: &types.SemanticMatch{
			Strengths: []string{"hands-on react delivery"},
			Gaps:      []string{"no kubernetes exposure"},
			Reasoning: "solid frontend-leaning full stack profile",
		},
	}

	base := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack})
	augmented := NewEngine(nil, &stubClassifier{category: taxonomy.DomainFullStack}, WithAugmenter(augmenter))

	plain := base.ScoreOne(context.Background(), fullStackCandidate(), fullStackJob())
	enriched := augmented.ScoreOne(context.Background(), fullStackCandidate(), fullStackJob())

	if enriched.Score != plain.Score {
		t.Errorf("augmentation changed score: %d vs %d", enriched.Score, plain.Score)
	}
	if len(enriched.Reasons) != len(plain.Reasons)+3 {
		t.Errorf("reasons = %d, want %d rule-based plus 3 semantic", len(enriched.Reasons), len(plain.Reasons))
	}
}

func TestMatchRequiredSkills(t *testing.T) {
	tests := []struct {
		name           string
		skills         []string
		required       []string
		wantPercentage int
		wantMissing    []string
	}{
		{
			name:           "all matched",
			skills:         []string{"python", "java", "go"},
			required:       []string{"python", "java"},
			wantPercentage: 100,
			wantMissing:    []string{},
		},
		{
			name:           "one of three",
			skills:         []string{"python"},
			required:       []string{"python", "terraform", "ansible"},
			wantPercentage: 33,
			wantMissing:    []string{"terraform", "ansible"},
		},
		{
			name:           "substring counts",
			skills:         []string{"postgresql"},
			required:       []string{"sql"},
			wantPercentage: 100,
			wantMissing:    []string{},
		},
		{
			name:           "no required skills",
			skills:         []string{"python"},
			required:       nil,
			wantPercentage: 100,
			wantMissing:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := matchRequiredSkills(tt.skills, tt.required)
			if match.Percentage != tt.wantPercentage {
				t.Errorf("percentage = %d, want %d", match.Percentage, tt.wantPercentage)
			}
			if !reflect.DeepEqual(match.Missing, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", match.Missing, tt.wantMissing)
			}
		})
	}
}
