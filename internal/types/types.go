package types

import (
	"fmt"
	"strings"
)

// UnknownCandidateName is the sentinel assigned when no name strategy matches.
const UnknownCandidateName = "Unknown Candidate"

// EducationNotSpecified is the default education level when no degree is detected.
const EducationNotSpecified = "Not Specified"

// Experience represents the work-history portion of a candidate profile
type Experience struct {
	Years     int      `json:"years"`
	Positions []string `json:"positions,omitempty"`
}

// CandidateProfile is the structured record extracted from raw resume text.
// It is built once by the extractor and never mutated afterward.
type CandidateProfile struct {
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Skills     []string   `json:"skills"`
	Experience Experience `json:"experience"`
	Education  string     `json:"education"`
	Confidence int        `json:"confidence"` // 0-100, how much structure was recovered

	// RawText carries the source text for evidence-based scoring bonuses.
	// It is not part of the persisted shape.
	RawText string `json:"-"`
}

// JobRequirement describes one job posting to score candidates against
type JobRequirement struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	RequiredSkills      []string `json:"requiredSkills"`
	MinExperience       int      `json:"minExperience"`
	MaxExperience       int      `json:"maxExperience"`
	EducationPreference string   `json:"educationPreference,omitempty"`
	DomainCategory      string   `json:"domainCategory,omitempty"` // optional classifier override
}

// Validate checks the structural invariants of a job requirement: a title,
// non-negative experience bounds, and min not above max. Callers validate
// once where jobs enter the system; scoring assumes a valid job.
func (j *JobRequirement) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return fmt.Errorf("job title is required")
	}
	if j.MinExperience < 0 || j.MaxExperience < 0 {
		return fmt.Errorf("experience bounds must be non-negative, got %d-%d", j.MinExperience, j.MaxExperience)
	}
	if j.MinExperience > j.MaxExperience {
		return fmt.Errorf("minExperience %d exceeds maxExperience %d", j.MinExperience, j.MaxExperience)
	}
	return nil
}

// SkillsMatch breaks down the skill overlap between candidate and job
type SkillsMatch struct {
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Percentage int      `json:"percentage"`
}

// ScoreResult is the outcome of scoring one candidate against one job.
// Score 0 with Valid=false marks an invalid-input sentinel, not a bad match;
// the lowest score a validly scored candidate receives is the configured floor.
type ScoreResult struct {
	Score           int         `json:"score"` // clamped 0-100
	Valid           bool        `json:"valid"`
	SkillsMatch     SkillsMatch `json:"skillsMatch"`
	ExperienceMatch bool        `json:"experienceMatch"`
	EducationMatch  bool        `json:"educationMatch"`
	DomainPenalty   int         `json:"domainPenalty"`
	Reasons         []string    `json:"reasons"` // append-only audit trail, evaluation order
	DomainCategory  string      `json:"domainCategory"`
}

// BestJob identifies the highest-scoring job for one candidate
type BestJob struct {
	Title    string `json:"title"`
	Score    int    `json:"score"`
	Category string `json:"category"`
}

// MultiJobResult maps job titles to score results for one candidate,
// with the best match selected by maximum score (ties: first in input order).
// Duplicate titles are suffixed ("Title #2") so every job keeps an entry.
type MultiJobResult struct {
	Results map[string]*ScoreResult `json:"results"`
	BestJob BestJob                 `json:"bestJob"`
}

// ScoreBucket counts candidates falling into one score band
type ScoreBucket struct {
	Excellent int `json:"excellent"` // >= 80
	Good      int `json:"good"`      // [60, 80)
	Average   int `json:"average"`   // [40, 60)
	Poor      int `json:"poor"`      // < 40
}

// CategoryStats summarizes candidates whose best job fell in one domain
type CategoryStats struct {
	Count        int `json:"count"`
	AverageScore int `json:"averageScore"`
}

// ScreeningStatistics aggregates a batch of score results.
// Invalid sentinel scores (0) are excluded from average/top computations.
type ScreeningStatistics struct {
	TotalCandidates     int                      `json:"totalCandidates"`
	QualifiedCandidates int                      `json:"qualifiedCandidates"`
	AverageScore        int                      `json:"averageScore"`
	TopScore            int                      `json:"topScore"`
	ScoreDistribution   ScoreBucket              `json:"scoreDistribution"`
	CategoryBreakdown   map[string]CategoryStats `json:"categoryBreakdown,omitempty"` // multi-job mode only
}

// DomainClassification is the semantic collaborator's view of a job's domain
type DomainClassification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// SemanticMatch is the semantic collaborator's view of a candidate/job fit.
// It only ever supplements rule-based results.
type SemanticMatch struct {
	Score     int      `json:"score"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
	Reasoning string   `json:"reasoning"`
}

// CandidateScore pairs one candidate's profile with its single-job score
type CandidateScore struct {
	Candidate *CandidateProfile `json:"candidate"`
	Result    *ScoreResult      `json:"result"`
}

// CandidateMultiScore pairs one candidate's profile with its multi-job scores
type CandidateMultiScore struct {
	Candidate *CandidateProfile `json:"candidate"`
	Result    *MultiJobResult   `json:"result"`
}

// ScreeningReport is the full output of a batch screening run
type ScreeningReport struct {
	Job        *JobRequirement       `json:"job,omitempty"`
	Jobs       []JobRequirement      `json:"jobs,omitempty"`
	Single     []CandidateScore      `json:"results,omitempty"`
	Multi      []CandidateMultiScore `json:"multiResults,omitempty"`
	Statistics *ScreeningStatistics  `json:"statistics"`
}
