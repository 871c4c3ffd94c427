package scoring

import (
	"fmt"
	"strings"

	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

// Education relevance sub-scores per tier
const (
	eduHighlyRelevant   = 15
	eduSomewhatRelevant = 10
	eduGeneral          = 7
	eduNotSpecified     = 5
	eduNotRelevant      = 3
)

// educationScore looks up the candidate's field of study against the
// domain's three-tier relevance table. Tier keywords are matched over the
// raw resume text because the education level label alone carries no field
// information.
func educationScore(candidate *types.CandidateProfile, relevance taxonomy.EducationRelevance) (score int, reason string) {
	if candidate.Education == types.EducationNotSpecified {
		return eduNotSpecified, "education not specified"
	}

	lower := strings.ToLower(candidate.RawText + " " + candidate.Education)

	if keyword := firstMatch(lower, relevance.HighlyRelevant); keyword != "" {
		return eduHighlyRelevant, fmt.Sprintf("%s with highly relevant field (%s)", candidate.Education, keyword)
	}
	if keyword := firstMatch(lower, relevance.SomewhatRelevant); keyword != "" {
		return eduSomewhatRelevant, fmt.Sprintf("%s with somewhat relevant field (%s)", candidate.Education, keyword)
	}
	if keyword := firstMatch(lower, relevance.NotRelevant); keyword != "" {
		return eduNotRelevant, fmt.Sprintf("%s in an unrelated field (%s)", candidate.Education, keyword)
	}

	return eduGeneral, fmt.Sprintf("%s, general background", candidate.Education)
}

func firstMatch(text string, keywords []string) string {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return keyword
		}
	}
	return ""
}
