package scoring

import (
	"testing"

	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name        string
		years       int
		minExp      int
		maxExp      int
		wantScore   int
		wantPenalty int
	}{
		{"entry level perfect", 0, 0, 2, 15, 0},
		{"entry level one year", 1, 0, 2, 18, 0},
		{"entry level two years", 2, 0, 2, 18, 0},
		{"entry level overqualified", 5, 0, 2, 12, 0},
		{"within range", 3, 2, 5, 20, 0},
		{"at minimum", 2, 2, 5, 20, 0},
		{"at maximum", 5, 2, 5, 20, 0},
		{"above maximum", 8, 2, 5, 15, 0},
		{"one year short", 2, 3, 6, 12, 10},
		{"two years short", 2, 4, 6, 8, 15},
		{"three years short", 2, 5, 8, 5, 20},
		{"five years short", 1, 6, 8, 5, 20},
		{"zero years against one", 0, 1, 3, 8, 15},
		{"zero years against two", 0, 2, 4, 5, 20},
		{"zero years against three", 0, 3, 5, 3, 25},
		{"zero years against five", 0, 5, 8, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, penalty, reason := experienceScore(tt.years, tt.minExp, tt.maxExp)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if penalty != tt.wantPenalty {
				t.Errorf("penalty = %d, want %d", penalty, tt.wantPenalty)
			}
			if reason == "" {
				t.Error("expected a non-empty reason")
			}
		})
	}
}

func TestEducationScore(t *testing.T) {
	relevance := taxonomy.Default().Domains[taxonomy.DomainGeneralSoftware].Education

	tests := []struct {
		name      string
		candidate types.CandidateProfile
		want      int
	}{
		{
			name: "highly relevant field",
			candidate: types.CandidateProfile{
				Education: "Bachelor's",
				RawText:   "B.Tech in Computer Science",
			},
			want: eduHighlyRelevant,
		},
		{
			name: "somewhat relevant field",
			candidate: types.CandidateProfile{
				Education: "Bachelor's",
				RawText:   "B.E in Mechanical Engineering",
			},
			want: eduSomewhatRelevant,
		},
		{
			name: "unrelated field",
			candidate: types.CandidateProfile{
				Education: "Bachelor's",
				RawText:   "B.Com in Commerce",
			},
			want: eduNotRelevant,
		},
		{
			name: "not specified",
			candidate: types.CandidateProfile{
				Education: types.EducationNotSpecified,
				RawText:   "B.Tech in Computer Science", // level wins over text
			},
			want: eduNotSpecified,
		},
		{
			name: "general background",
			candidate: types.CandidateProfile{
				Education: "Diploma",
				RawText:   "Diploma in hospitality",
			},
			want: eduGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reason := educationScore(&tt.candidate, relevance)
			if score != tt.want {
				t.Errorf("score = %d, want %d", score, tt.want)
			}
			if reason == "" {
				t.Error("expected a non-empty reason")
			}
		})
	}
}
