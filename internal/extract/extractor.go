// Package extract turns raw resume text into a structured candidate profile.
// Extraction is best-effort: the only failure mode is empty input, every
// other path produces a profile with whatever fields could be recovered.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"hirescreen/internal/errors"
	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

// Extractor parses raw resume text into candidate profiles using the
// injected taxonomy tables. Safe for concurrent use.
type Extractor struct {
	store     *taxonomy.Store
	maxSkills int
	maxYears  int
}

// Option configures an Extractor
type Option func(*Extractor)

// WithMaxSkills caps the number of extracted skills
func WithMaxSkills(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxSkills = n
		}
	}
}

// WithMaxExperienceYears caps the extracted experience years
func WithMaxExperienceYears(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxYears = n
		}
	}
}

// NewExtractor creates an extractor backed by the given taxonomy store.
// A nil store falls back to the builtin tables.
func NewExtractor(store *taxonomy.Store, opts ...Option) *Extractor {
	if store == nil {
		store = taxonomy.NewStore(nil)
	}
	e := &Extractor{
		store:     store,
		maxSkills: 30,
		maxYears:  50,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Indian mobile numbering: optional +91/91/0 prefix, 10 digits, leading 6-9.
	phonePattern = regexp.MustCompile(`(?:\+91|91|0)?([6-9][0-9]{9})`)

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2})\+?\s*years?\s*(?:of\s+)?(?:work\s+)?experience`),
		regexp.MustCompile(`(?i)experience\s*(?:of\s*)?:?\s*(\d{1,2})\+?\s*years?`),
		regexp.MustCompile(`(?i)(\d{1,2})\+?\s*yrs?\.?\s*(?:of\s+)?exp`),
	}

	fresherPattern = regexp.MustCompile(`(?i)\b(fresher|internship|intern)\b`)

	positionPattern = regexp.MustCompile(`(?i)\b(engineer|developer|analyst|consultant|accountant|administrator|architect|manager|designer|executive)\b`)
)

// Extract parses raw resume text into a candidate profile. The only error
// is EMPTY_INPUT on empty or whitespace-only text.
func (e *Extractor) Extract(rawText string) (*types.CandidateProfile, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, errors.NewExtractionError(errors.ErrCodeEmptyInput, "resume text is empty", nil)
	}

	table := e.store.Current()
	lines := splitLines(rawText)
	lower := strings.ToLower(rawText)

	profile := &types.CandidateProfile{
		Name:       extractName(lines, rawText, table.NameSkipWords),
		Email:      extractEmail(rawText),
		Phone:      extractPhone(rawText),
		Skills:     e.extractSkills(rawText, lower, lines, table),
		Experience: e.extractExperience(rawText, lower, lines),
		Education:  extractEducation(lower, table.DegreePrecedence),
		RawText:    rawText,
	}
	profile.Confidence = confidence(profile)

	return profile, nil
}

// splitLines splits text into trimmed lines, dropping blank ones
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func extractEmail(text string) string {
	match := emailPattern.FindString(text)
	return strings.ToLower(match)
}

func extractPhone(text string) string {
	// Strip separators first so formatted numbers collapse into digit runs.
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "").Replace(text)

	for _, match := range phonePattern.FindAllStringSubmatchIndex(cleaned, -1) {
		start := match[0]
		// Reject matches embedded in a longer digit run.
		if start > 0 && isDigit(cleaned[start-1]) {
			continue
		}
		end := match[1]
		if end < len(cleaned) && isDigit(cleaned[end]) {
			continue
		}
		return cleaned[match[2]:match[3]]
	}
	return ""
}

// sectionHeaders recognized as boundaries for the skills section scan
var sectionHeaders = []string{
	"experience", "education", "projects", "certifications", "achievements",
	"summary", "objective", "declaration", "languages", "hobbies",
	"interests", "references", "work history", "employment",
}

func isSectionHeader(line string) bool {
	lower := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":"))
	if len(strings.Fields(lower)) > 4 {
		return false
	}
	for _, header := range sectionHeaders {
		if strings.Contains(lower, header) {
			return true
		}
	}
	return false
}

var skillsHeaderPattern = regexp.MustCompile(`(?i)^(technical\s+|key\s+|core\s+)?skills?\b`)

// extractSkills unions vocabulary matches over the whole text with tokens
// parsed out of a detected skills section, deduplicated and capped.
func (e *Extractor) extractSkills(text, lower string, lines []string, table *taxonomy.Table) []string {
	seen := make(map[string]bool)
	var skills []string

	add := func(skill string) {
		norm := strings.ToLower(strings.TrimSpace(skill))
		if norm == "" || seen[norm] || len(skills) >= e.maxSkills {
			return
		}
		seen[norm] = true
		skills = append(skills, norm)
	}

	for _, term := range table.SkillVocabulary {
		if containsTerm(lower, term) {
			add(term)
		}
	}

	for _, token := range skillsSectionTokens(lines) {
		tokenLower := strings.ToLower(token)
		for _, term := range table.SkillVocabulary {
			if tokenLower == term || containsTerm(tokenLower, term) {
				add(term)
			}
		}
	}

	if skills == nil {
		skills = []string{}
	}
	return skills
}

// skillsSectionTokens returns comma/bullet-separated tokens from the lines
// between a "Skills" header and the next recognized section header
func skillsSectionTokens(lines []string) []string {
	start := -1
	for i, line := range lines {
		if skillsHeaderPattern.MatchString(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var tokens []string
	splitter := func(r rune) bool {
		return r == ',' || r == '|' || r == ';' || r == '•' || r == '·'
	}

	// Tokens may start on the header line itself ("Skills: python, sql").
	if idx := strings.Index(lines[start], ":"); idx >= 0 {
		tokens = append(tokens, strings.FieldsFunc(lines[start][idx+1:], splitter)...)
	}

	for i := start + 1; i < len(lines) && i < start+15; i++ {
		if isSectionHeader(lines[i]) {
			break
		}
		tokens = append(tokens, strings.FieldsFunc(lines[i], splitter)...)
	}
	return tokens
}

// containsTerm reports whether text contains term bounded by non-alphanumeric
// characters, so short terms do not match inside longer words
func containsTerm(text, term string) bool {
	for offset := 0; ; {
		idx := strings.Index(text[offset:], term)
		if idx == -1 {
			return false
		}
		idx += offset
		end := idx + len(term)

		beforeOK := idx == 0 || !isAlphanumeric(text[idx-1])
		afterOK := end == len(text) || !isAlphanumeric(text[end])
		if beforeOK && afterOK {
			return true
		}
		offset = idx + 1
	}
}

func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// extractExperience takes the maximum years across all phrasing patterns,
// capped. Fresher/intern keywords with no numeric experience set years to 0
// with a labeled position.
func (e *Extractor) extractExperience(text, lower string, lines []string) types.Experience {
	years := -1
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if value, err := strconv.Atoi(match[1]); err == nil && value > years {
				years = value
			}
		}
	}

	exp := types.Experience{Positions: extractPositions(lines)}

	if years >= 0 {
		if years > e.maxYears {
			years = e.maxYears
		}
		exp.Years = years
		return exp
	}

	if match := fresherPattern.FindString(lower); match != "" {
		label := "Fresher"
		if strings.HasPrefix(strings.ToLower(match), "intern") {
			label = "Intern"
		}
		exp.Positions = append(exp.Positions, label)
	}
	return exp
}

// extractPositions picks short lines mentioning a recognizable role word
func extractPositions(lines []string) []string {
	var positions []string
	seen := make(map[string]bool)

	for _, line := range lines {
		if len(strings.Fields(line)) > 6 {
			continue
		}
		if !positionPattern.MatchString(line) {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		positions = append(positions, line)
		if len(positions) >= 5 {
			break
		}
	}
	return positions
}

// extractEducation returns the highest credential found, walking the
// precedence table from highest to lowest
func extractEducation(lower string, precedence []taxonomy.DegreeLevel) string {
	for _, level := range precedence {
		for _, keyword := range level.Keywords {
			if containsTerm(lower, keyword) {
				return level.Label
			}
		}
	}
	return types.EducationNotSpecified
}

// confidence is an additive measure of how much structure was recovered
func confidence(p *types.CandidateProfile) int {
	score := 20
	if p.Name != types.UnknownCandidateName {
		score += 30
	}
	if p.Email != "" {
		score += 25
	}
	if p.Phone != "" {
		score += 15
	}
	if len(p.Skills) > 0 {
		score += 25
	}
	if p.Experience.Years > 0 || len(p.Experience.Positions) > 0 {
		score += 5
	}
	if score > 100 {
		score = 100
	}
	return score
}
