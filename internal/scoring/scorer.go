// Package scoring computes explainable match scores for candidate profiles
// against job requirements. Every domain shares one scoring shape driven by
// its taxonomy: weighted skill categories, evidence bonuses, experience and
// education sub-scores, and cross-domain mismatch penalties. Each step
// appends a human-readable reason, so the result doubles as an audit trail.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

// mismatchMarkerHits is how many foreign-domain markers a candidate's skill
// set must hit before the mismatch penalty is considered
const mismatchMarkerHits = 2

// skillMatches reports whether a candidate skill satisfies a target skill:
// exact, substring, or superstring, case-insensitive
func skillMatches(candidateSkill, target string) bool {
	cs := strings.ToLower(strings.TrimSpace(candidateSkill))
	t := strings.ToLower(strings.TrimSpace(target))
	if cs == "" || t == "" {
		return false
	}
	return cs == t || strings.Contains(cs, t) || strings.Contains(t, cs)
}

// hasSkill reports whether any candidate skill satisfies the target
func hasSkill(skills []string, target string) bool {
	for _, skill := range skills {
		if skillMatches(skill, target) {
			return true
		}
	}
	return false
}

// matchRequiredSkills compares the candidate's skills against the job's
// required list, producing the matched/missing breakdown
func matchRequiredSkills(skills, required []string) types.SkillsMatch {
	match := types.SkillsMatch{Matched: []string{}, Missing: []string{}}
	if len(required) == 0 {
		match.Percentage = 100
		return match
	}

	for _, req := range required {
		if hasSkill(skills, req) {
			match.Matched = append(match.Matched, req)
		} else {
			match.Missing = append(match.Missing, req)
		}
	}
	match.Percentage = int(math.Round(float64(len(match.Matched)) / float64(len(required)) * 100))
	return match
}

// scoreDomain runs the full per-domain algorithm for a valid candidate
func scoreDomain(candidate *types.CandidateProfile, job *types.JobRequirement, domain *taxonomy.DomainTaxonomy, floor int) *types.ScoreResult {
	result := &types.ScoreResult{
		Valid:          true,
		DomainCategory: domain.Name,
		Reasons:        []string{},
	}

	// Weighted skill categories.
	skillScore := 0.0
	for _, category := range domain.Categories {
		matched := 0
		for _, skill := range category.Skills {
			if hasSkill(candidate.Skills, skill) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		contribution := float64(matched) / float64(len(category.Skills)) * float64(category.Weight)
		skillScore += contribution
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("%s: matched %d/%d skills (+%.0f)", category.Name, matched, len(category.Skills), contribution))
	}

	result.SkillsMatch = matchRequiredSkills(candidate.Skills, job.RequiredSkills)
	result.Reasons = append(result.Reasons,
		fmt.Sprintf("required skills matched: %d/%d (%d%%)",
			len(result.SkillsMatch.Matched), len(job.RequiredSkills), result.SkillsMatch.Percentage))

	// Evidence bonuses from the raw resume text and skill combinations.
	bonus := 0
	rawLower := strings.ToLower(candidate.RawText)
	for _, rule := range domain.Bonuses {
		if applyBonus(rule, rawLower, candidate.Skills) {
			bonus += rule.Points
			result.Reasons = append(result.Reasons, fmt.Sprintf("%s (+%d)", rule.Reason, rule.Points))
		}
	}

	expScore, expPenalty, expReason := experienceScore(candidate.Experience.Years, job.MinExperience, job.MaxExperience)
	result.ExperienceMatch = expPenalty == 0
	result.Reasons = append(result.Reasons, expReason)

	eduScore, eduReason := educationScore(candidate, domain.Education)
	result.EducationMatch = eduScore >= eduSomewhatRelevant
	result.Reasons = append(result.Reasons, eduReason)

	// Cross-domain mismatch: foreign markers dominating a weak skill score.
	if domain.Mismatch != nil && skillScore < domain.Mismatch.Threshold {
		hits := 0
		for _, marker := range domain.Mismatch.Markers {
			if hasSkill(candidate.Skills, marker) {
				hits++
			}
		}
		if hits >= mismatchMarkerHits {
			result.DomainPenalty = domain.Mismatch.Penalty
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("skill set points to a different domain (%d markers, -%d)", hits, domain.Mismatch.Penalty))
		}
	}

	raw := int(math.Round(skillScore)) + bonus + expScore + eduScore - result.DomainPenalty - expPenalty
	result.Score = clamp(raw, floor, 100)

	return result
}

func applyBonus(rule taxonomy.BonusRule, rawLower string, skills []string) bool {
	if rule.Phrase != "" {
		return strings.Contains(rawLower, strings.ToLower(rule.Phrase))
	}
	if len(rule.Skills) == 0 {
		return false
	}
	for _, required := range rule.Skills {
		if !hasSkill(skills, required) {
			return false
		}
	}
	return true
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
