package formatters

import (
	"strings"
	"testing"

	"hirescreen/internal/types"
)

func sampleScore() *types.ScoreResult {
	return &types.ScoreResult{
		Score: 72,
		Valid: true,
		SkillsMatch: types.SkillsMatch{
			Matched:    []string{"go", "docker"},
			Missing:    []string{"kubernetes"},
			Percentage: 66,
		},
		ExperienceMatch: true,
		EducationMatch:  false,
		Reasons:         []string{"skills coverage 66%", "experience within range"},
		DomainCategory:  "network-infrastructure",
	}
}

func TestFormatScoreResultText(t *testing.T) {
	registry := NewFormatterRegistry()

	out, err := registry.Format(sampleScore(), "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{
		"=== MATCH SCORE ===",
		"Score: 72/100",
		"Coverage: 66%",
		"Experience Match: yes",
		"Education Match: no",
		"=== SCORING TRAIL ===",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Text output missing %q", want)
		}
	}
}

func TestFormatScoreResultMarkdown(t *testing.T) {
	registry := NewFormatterRegistry()

	out, err := registry.Format(sampleScore(), "markdown")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(out, "# Match Score") {
		t.Error("Markdown output missing title")
	}
	if !strings.Contains(out, "**Score:** 72/100") {
		t.Error("Markdown output missing score")
	}
}

func TestFormatProfileAcceptsValueAndPointer(t *testing.T) {
	registry := NewFormatterRegistry()

	profile := types.CandidateProfile{
		Name:       "Dana Smith",
		Skills:     []string{"python", "aws"},
		Experience: types.Experience{Years: 5},
		Education:  "Bachelor's Degree",
		Confidence: 85,
	}

	byValue, err := registry.Format(profile, "text")
	if err != nil {
		t.Fatalf("Format by value failed: %v", err)
	}
	byPointer, err := registry.Format(&profile, "text")
	if err != nil {
		t.Fatalf("Format by pointer failed: %v", err)
	}
	if byValue != byPointer {
		t.Error("Value and pointer inputs should produce identical output")
	}
	if !strings.Contains(byValue, "Name: Dana Smith") {
		t.Error("Profile output missing candidate name")
	}
}

func TestFormatMultiJobStableOrder(t *testing.T) {
	registry := NewFormatterRegistry()

	result := &types.MultiJobResult{
		Results: map[string]*types.ScoreResult{
			"Backend Engineer":  {Score: 80, Valid: true},
			"Analyst":           {Score: 40, Valid: true},
			"Network Engineer":  {Score: 55, Valid: true},
			"Platform Engineer": {Score: 62, Valid: true},
		},
		BestJob: types.BestJob{Title: "Backend Engineer", Score: 80},
	}

	out, err := registry.Format(result, "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	// Job lines must come out alphabetically regardless of map order
	idxAnalyst := strings.Index(out, "Analyst:")
	idxBackend := strings.Index(out, "Backend Engineer: 80")
	idxNetwork := strings.Index(out, "Network Engineer:")
	if idxAnalyst == -1 || idxBackend == -1 || idxNetwork == -1 {
		t.Fatalf("Output missing job lines:\n%s", out)
	}
	if !(idxAnalyst < idxBackend && idxBackend < idxNetwork) {
		t.Error("Job lines are not in alphabetical order")
	}
}

func TestJSONFallbackForUnknownType(t *testing.T) {
	registry := NewFormatterRegistry()

	out, err := registry.Format(map[string]int{"answer": 42}, "json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "\"answer\": 42") {
		t.Errorf("Unexpected JSON output: %s", out)
	}
}

func TestUnknownFormatErrors(t *testing.T) {
	registry := NewFormatterRegistry()

	if _, err := registry.Format(sampleScore(), "xml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
