package extract

import (
	"strings"
	"testing"

	apperrors "hirescreen/internal/errors"
	"hirescreen/internal/types"
)

func newTestExtractor() *Extractor {
	return NewExtractor(nil)
}

func TestExtractEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestExtractor().Extract(tt.text)
			if err == nil {
				t.Fatal("expected error for empty input, got nil")
			}
			appErr, ok := err.(*apperrors.AppError)
			if !ok {
				t.Fatalf("expected *AppError, got %T", err)
			}
			if appErr.Code != apperrors.ErrCodeEmptyInput {
				t.Errorf("error code = %s, want %s", appErr.Code, apperrors.ErrCodeEmptyInput)
			}
		})
	}
}

func TestExtractNameOnly(t *testing.T) {
	profile, err := newTestExtractor().Extract("Rahul Sharma")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if profile.Name != "Rahul Sharma" {
		t.Errorf("name = %q, want %q", profile.Name, "Rahul Sharma")
	}
	if profile.Email != "" {
		t.Errorf("email = %q, want empty", profile.Email)
	}
	if profile.Phone != "" {
		t.Errorf("phone = %q, want empty", profile.Phone)
	}
	if len(profile.Skills) != 0 {
		t.Errorf("skills = %v, want empty", profile.Skills)
	}
	if profile.Education != types.EducationNotSpecified {
		t.Errorf("education = %q, want %q", profile.Education, types.EducationNotSpecified)
	}
	// Base 20 plus the name bonus only.
	if profile.Confidence != 50 {
		t.Errorf("confidence = %d, want 50", profile.Confidence)
	}
}

func TestExtractFullResume(t *testing.T) {
	text := `Priya Kumar
Email: Priya.Kumar@Example.COM
Phone: +91 98765 43210

Summary
Software developer with 5 years of experience building web applications.

Skills: Python, React, Docker, PostgreSQL

Education
B.Tech in Computer Science`

	profile, err := newTestExtractor().Extract(text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if profile.Name != "Priya Kumar" {
		t.Errorf("name = %q, want %q", profile.Name, "Priya Kumar")
	}
	if profile.Email != "priya.kumar@example.com" {
		t.Errorf("email = %q, want lowercased address", profile.Email)
	}
	if profile.Phone != "9876543210" {
		t.Errorf("phone = %q, want 9876543210", profile.Phone)
	}
	if profile.Experience.Years != 5 {
		t.Errorf("experience years = %d, want 5", profile.Experience.Years)
	}
	if profile.Education != "Bachelor's" {
		t.Errorf("education = %q, want Bachelor's", profile.Education)
	}

	for _, want := range []string{"python", "react", "docker", "postgresql"} {
		found := false
		for _, skill := range profile.Skills {
			if skill == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("skills missing %q: %v", want, profile.Skills)
		}
	}

	if profile.Confidence != 100 {
		t.Errorf("confidence = %d, want 100", profile.Confidence)
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain ten digits", "Contact: 9876543210", "9876543210"},
		{"country code", "Mobile +91 98765 43210", "9876543210"},
		{"leading zero", "Ph: 098765-43210", "9876543210"},
		{"formatted with parens", "(91) 87654 32109", "8765432109"},
		{"invalid leading digit", "Contact: 1234567890", ""},
		{"too short", "Contact: 987654321", ""},
		{"no phone", "no digits here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPhone(tt.text); got != tt.want {
				t.Errorf("extractPhone(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantYears int
	}{
		{"simple phrasing", "I have 5 years of experience", 5},
		{"plus suffix", "12+ years experience in networking", 12},
		{"reversed phrasing", "Experience: 7 years", 7},
		{"yrs abbreviation", "8 yrs exp in accounting", 8},
		{"maximum across mentions", "2 years of experience in Go, 6 years of experience overall", 6},
		{"capped at fifty", "60 years of experience", 50},
		{"no mention", "worked on many projects", 0},
	}

	extractor := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := extractor.extractExperience(tt.text, strings.ToLower(tt.text), splitLines(tt.text))
			if exp.Years != tt.wantYears {
				t.Errorf("years = %d, want %d", exp.Years, tt.wantYears)
			}
		})
	}
}

func TestExtractFresher(t *testing.T) {
	text := `Amit Verma
Looking for an entry level role as a fresher.

Skills: Java, SQL`

	profile, err := newTestExtractor().Extract(text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if profile.Experience.Years != 0 {
		t.Errorf("years = %d, want 0", profile.Experience.Years)
	}

	found := false
	for _, pos := range profile.Experience.Positions {
		if pos == "Fresher" {
			found = true
		}
	}
	if !found {
		t.Errorf("positions = %v, want to contain Fresher", profile.Experience.Positions)
	}
}

func TestExtractEducationPrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"phd beats masters", "PhD in CS, M.Tech, B.Tech", "PhD"},
		{"masters", "MBA from a business school", "Master's"},
		{"bachelors", "completed B.Com in 2019", "Bachelor's"},
		{"diploma", "Polytechnic diploma holder", "Diploma"},
		{"twelfth", "passed 12th with distinction", "12th"},
		{"none", "no education section at all", types.EducationNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractEducation(strings.ToLower(tt.text), newTestExtractor().store.Current().DegreePrecedence)
			if got != tt.want {
				t.Errorf("extractEducation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractNameCascade(t *testing.T) {
	skipWords := newTestExtractor().store.Current().NameSkipWords

	t.Run("skips header lines", func(t *testing.T) {
		lines := splitLines("Curriculum Vitae\nSunita Rao\nsunita@example.com")
		got := extractName(lines, "", skipWords)
		if got != "Sunita Rao" {
			t.Errorf("name = %q, want Sunita Rao", got)
		}
	})

	t.Run("skips email lines", func(t *testing.T) {
		lines := splitLines("contact@example.com\nArjun Mehta")
		got := extractName(lines, "", skipWords)
		if got != "Arjun Mehta" {
			t.Errorf("name = %q, want Arjun Mehta", got)
		}
	})

	t.Run("all caps in deep window", func(t *testing.T) {
		var b strings.Builder
		for range 12 {
			b.WriteString("experience section filler line with several words here\n")
		}
		b.WriteString("VIKRAM SINGH\n")
		lines := splitLines(b.String())
		got := extractName(lines, b.String(), skipWords)
		if got != "VIKRAM SINGH" {
			t.Errorf("name = %q, want VIKRAM SINGH", got)
		}
	})

	t.Run("unknown when nothing matches", func(t *testing.T) {
		text := "skills: python, java\nexperience: 3 years"
		got := extractName(splitLines(text), text, skipWords)
		if got != types.UnknownCandidateName {
			t.Errorf("name = %q, want sentinel", got)
		}
	})
}

func TestSkillsCapped(t *testing.T) {
	extractor := NewExtractor(nil, WithMaxSkills(5))

	// More vocabulary hits than the cap allows.
	text := "Skills: python, java, javascript, react, docker, kubernetes, sql, mysql, git, linux"
	profile, err := extractor.Extract(text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(profile.Skills) != 5 {
		t.Errorf("skills count = %d, want cap 5", len(profile.Skills))
	}
}

func TestContainsTerm(t *testing.T) {
	tests := []struct {
		text string
		term string
		want bool
	}{
		{"worked with go daily", "go", true},
		{"searched on google", "go", false},
		{"knows c++ well", "c++", true},
		{"react developer", "react", true},
		{"preact fan", "react", false},
	}

	for _, tt := range tests {
		if got := containsTerm(tt.text, tt.term); got != tt.want {
			t.Errorf("containsTerm(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
		}
	}
}
