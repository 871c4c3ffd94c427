package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"hirescreen/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "CandidateProfile", &ProfileTextFormatter{})
	registry.RegisterFormatter("markdown", "CandidateProfile", &ProfileMarkdownFormatter{})
	registry.RegisterFormatter("text", "ScoreResult", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreResult", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "MultiJobResult", &MultiJobTextFormatter{})
	registry.RegisterFormatter("markdown", "MultiJobResult", &MultiJobMarkdownFormatter{})
	registry.RegisterFormatter("text", "ScreeningReport", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "ScreeningReport", &ReportMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.CandidateProfile, *types.CandidateProfile:
		return "CandidateProfile"
	case types.ScoreResult, *types.ScoreResult:
		return "ScoreResult"
	case types.MultiJobResult, *types.MultiJobResult:
		return "MultiJobResult"
	case types.ScreeningReport, *types.ScreeningReport:
		return "ScreeningReport"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func asProfile(data any) (*types.CandidateProfile, bool) {
	switch v := data.(type) {
	case types.CandidateProfile:
		return &v, true
	case *types.CandidateProfile:
		return v, true
	default:
		return nil, false
	}
}

func asScore(data any) (*types.ScoreResult, bool) {
	switch v := data.(type) {
	case types.ScoreResult:
		return &v, true
	case *types.ScoreResult:
		return v, true
	default:
		return nil, false
	}
}

func asMultiJob(data any) (*types.MultiJobResult, bool) {
	switch v := data.(type) {
	case types.MultiJobResult:
		return &v, true
	case *types.MultiJobResult:
		return v, true
	default:
		return nil, false
	}
}

func asReport(data any) (*types.ScreeningReport, bool) {
	switch v := data.(type) {
	case types.ScreeningReport:
		return &v, true
	case *types.ScreeningReport:
		return v, true
	default:
		return nil, false
	}
}

// ProfileTextFormatter handles text formatting for extracted candidate profiles
type ProfileTextFormatter struct{}

func (ptf *ProfileTextFormatter) Format(data any) (string, error) {
	profile, ok := asProfile(data)
	if !ok {
		return "", fmt.Errorf("expected CandidateProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE PROFILE ===\n\n")
	output.WriteString(fmt.Sprintf("Name: %s\n", profile.Name))
	if profile.Email != "" {
		output.WriteString(fmt.Sprintf("Email: %s\n", profile.Email))
	}
	if profile.Phone != "" {
		output.WriteString(fmt.Sprintf("Phone: %s\n", profile.Phone))
	}
	output.WriteString(fmt.Sprintf("Education: %s\n", profile.Education))
	output.WriteString(fmt.Sprintf("Experience: %d years\n", profile.Experience.Years))
	output.WriteString(fmt.Sprintf("Extraction Confidence: %d/100\n\n", profile.Confidence))

	output.WriteString("=== SKILLS ===\n")
	if len(profile.Skills) > 0 {
		for _, skill := range profile.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
	} else {
		output.WriteString("No recognized skills.\n")
	}

	if len(profile.Experience.Positions) > 0 {
		output.WriteString("\n=== POSITIONS ===\n")
		for _, position := range profile.Experience.Positions {
			output.WriteString(fmt.Sprintf("- %s\n", position))
		}
	}

	return output.String(), nil
}

func (ptf *ProfileTextFormatter) SupportedType() string {
	return "CandidateProfile"
}

// ProfileMarkdownFormatter handles markdown formatting for extracted candidate profiles
type ProfileMarkdownFormatter struct{}

func (pmf *ProfileMarkdownFormatter) Format(data any) (string, error) {
	profile, ok := asProfile(data)
	if !ok {
		return "", fmt.Errorf("expected CandidateProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Candidate Profile: %s\n\n", profile.Name))
	if profile.Email != "" {
		output.WriteString(fmt.Sprintf("**Email:** %s\n\n", profile.Email))
	}
	if profile.Phone != "" {
		output.WriteString(fmt.Sprintf("**Phone:** %s\n\n", profile.Phone))
	}
	output.WriteString(fmt.Sprintf("**Education:** %s\n\n", profile.Education))
	output.WriteString(fmt.Sprintf("**Experience:** %d years\n\n", profile.Experience.Years))
	output.WriteString(fmt.Sprintf("**Extraction Confidence:** %d/100\n\n", profile.Confidence))

	output.WriteString("## Skills\n\n")
	if len(profile.Skills) > 0 {
		for _, skill := range profile.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	} else {
		output.WriteString("No recognized skills.\n\n")
	}

	if len(profile.Experience.Positions) > 0 {
		output.WriteString("## Positions\n\n")
		for _, position := range profile.Experience.Positions {
			output.WriteString(fmt.Sprintf("- %s\n", position))
		}
	}

	return output.String(), nil
}

func (pmf *ProfileMarkdownFormatter) SupportedType() string {
	return "CandidateProfile"
}

// ScoreTextFormatter handles text formatting for single-job score results
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := asScore(data)
	if !ok {
		return "", fmt.Errorf("expected ScoreResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== MATCH SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n", result.Score))
	if !result.Valid {
		output.WriteString("Status: invalid input\n")
	}
	if result.DomainCategory != "" {
		output.WriteString(fmt.Sprintf("Job Category: %s\n", result.DomainCategory))
	}
	output.WriteString("\n")

	output.WriteString("=== SKILLS MATCH ===\n")
	output.WriteString(fmt.Sprintf("Coverage: %d%%\n", result.SkillsMatch.Percentage))
	if len(result.SkillsMatch.Matched) > 0 {
		output.WriteString("Matched:\n")
		for _, skill := range result.SkillsMatch.Matched {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
	}
	if len(result.SkillsMatch.Missing) > 0 {
		output.WriteString("Missing:\n")
		for _, skill := range result.SkillsMatch.Missing {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
	}
	output.WriteString("\n")

	output.WriteString("=== CRITERIA ===\n")
	output.WriteString(fmt.Sprintf("Experience Match: %s\n", yesNo(result.ExperienceMatch)))
	output.WriteString(fmt.Sprintf("Education Match: %s\n", yesNo(result.EducationMatch)))
	if result.DomainPenalty != 0 {
		output.WriteString(fmt.Sprintf("Domain Penalty: %d\n", result.DomainPenalty))
	}
	output.WriteString("\n")

	if len(result.Reasons) > 0 {
		output.WriteString("=== SCORING TRAIL ===\n")
		for i, reason := range result.Reasons {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, reason))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreResult"
}

// ScoreMarkdownFormatter handles markdown formatting for single-job score results
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asScore(data)
	if !ok {
		return "", fmt.Errorf("expected ScoreResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Match Score\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.Score))
	if !result.Valid {
		output.WriteString("**Status:** invalid input\n\n")
	}
	if result.DomainCategory != "" {
		output.WriteString(fmt.Sprintf("**Job Category:** %s\n\n", result.DomainCategory))
	}

	output.WriteString("## Skills Match\n\n")
	output.WriteString(fmt.Sprintf("**Coverage:** %d%%\n\n", result.SkillsMatch.Percentage))
	if len(result.SkillsMatch.Matched) > 0 {
		output.WriteString("### Matched\n")
		for _, skill := range result.SkillsMatch.Matched {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.SkillsMatch.Missing) > 0 {
		output.WriteString("### Missing\n")
		for _, skill := range result.SkillsMatch.Missing {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Criteria\n\n")
	output.WriteString(fmt.Sprintf("- Experience match: %s\n", yesNo(result.ExperienceMatch)))
	output.WriteString(fmt.Sprintf("- Education match: %s\n", yesNo(result.EducationMatch)))
	if result.DomainPenalty != 0 {
		output.WriteString(fmt.Sprintf("- Domain penalty: %d\n", result.DomainPenalty))
	}
	output.WriteString("\n")

	if len(result.Reasons) > 0 {
		output.WriteString("## Scoring Trail\n\n")
		for i, reason := range result.Reasons {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, reason))
		}
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreResult"
}

// MultiJobTextFormatter handles text formatting for multi-job score results
type MultiJobTextFormatter struct{}

func (mtf *MultiJobTextFormatter) Format(data any) (string, error) {
	result, ok := asMultiJob(data)
	if !ok {
		return "", fmt.Errorf("expected MultiJobResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== BEST MATCH ===\n\n")
	output.WriteString(fmt.Sprintf("Job: %s\n", result.BestJob.Title))
	output.WriteString(fmt.Sprintf("Score: %d/100\n", result.BestJob.Score))
	if result.BestJob.Category != "" {
		output.WriteString(fmt.Sprintf("Category: %s\n", result.BestJob.Category))
	}
	output.WriteString("\n=== ALL JOBS ===\n")

	for _, title := range sortedJobTitles(result.Results) {
		score := result.Results[title]
		output.WriteString(fmt.Sprintf("%s: %d/100 (skills %d%%)\n",
			title, score.Score, score.SkillsMatch.Percentage))
	}

	return output.String(), nil
}

func (mtf *MultiJobTextFormatter) SupportedType() string {
	return "MultiJobResult"
}

// MultiJobMarkdownFormatter handles markdown formatting for multi-job score results
type MultiJobMarkdownFormatter struct{}

func (mmf *MultiJobMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asMultiJob(data)
	if !ok {
		return "", fmt.Errorf("expected MultiJobResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Multi-Job Match\n\n")
	output.WriteString(fmt.Sprintf("**Best Job:** %s\n\n", result.BestJob.Title))
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.BestJob.Score))
	if result.BestJob.Category != "" {
		output.WriteString(fmt.Sprintf("**Category:** %s\n\n", result.BestJob.Category))
	}

	output.WriteString("## All Jobs\n\n")
	output.WriteString("| Job | Score | Skills |\n")
	output.WriteString("|-----|-------|--------|\n")
	for _, title := range sortedJobTitles(result.Results) {
		score := result.Results[title]
		output.WriteString(fmt.Sprintf("| %s | %d/100 | %d%% |\n",
			title, score.Score, score.SkillsMatch.Percentage))
	}

	return output.String(), nil
}

func (mmf *MultiJobMarkdownFormatter) SupportedType() string {
	return "MultiJobResult"
}

// ReportTextFormatter handles text formatting for batch screening reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	report, ok := asReport(data)
	if !ok {
		return "", fmt.Errorf("expected ScreeningReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SCREENING REPORT ===\n\n")
	if report.Job != nil {
		output.WriteString(fmt.Sprintf("Job: %s\n\n", report.Job.Title))
	}
	if len(report.Jobs) > 0 {
		output.WriteString("Jobs:\n")
		for _, job := range report.Jobs {
			output.WriteString(fmt.Sprintf("- %s\n", job.Title))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== CANDIDATES ===\n")
	for _, entry := range report.Single {
		output.WriteString(fmt.Sprintf("%s: %d/100 (skills %d%%)\n",
			entry.Candidate.Name, entry.Result.Score, entry.Result.SkillsMatch.Percentage))
	}
	for _, entry := range report.Multi {
		output.WriteString(fmt.Sprintf("%s: best %s at %d/100\n",
			entry.Candidate.Name, entry.Result.BestJob.Title, entry.Result.BestJob.Score))
	}
	output.WriteString("\n")

	if stats := report.Statistics; stats != nil {
		output.WriteString("=== STATISTICS ===\n")
		output.WriteString(fmt.Sprintf("Total Candidates: %d\n", stats.TotalCandidates))
		output.WriteString(fmt.Sprintf("Qualified Candidates: %d\n", stats.QualifiedCandidates))
		output.WriteString(fmt.Sprintf("Average Score: %d\n", stats.AverageScore))
		output.WriteString(fmt.Sprintf("Top Score: %d\n\n", stats.TopScore))

		output.WriteString("Score Distribution:\n")
		output.WriteString(fmt.Sprintf("- Excellent (80+): %d\n", stats.ScoreDistribution.Excellent))
		output.WriteString(fmt.Sprintf("- Good (60-79): %d\n", stats.ScoreDistribution.Good))
		output.WriteString(fmt.Sprintf("- Average (40-59): %d\n", stats.ScoreDistribution.Average))
		output.WriteString(fmt.Sprintf("- Poor (<40): %d\n", stats.ScoreDistribution.Poor))

		if len(stats.CategoryBreakdown) > 0 {
			output.WriteString("\nCategory Breakdown:\n")
			for _, category := range sortedCategories(stats.CategoryBreakdown) {
				cs := stats.CategoryBreakdown[category]
				output.WriteString(fmt.Sprintf("- %s: %d candidates, average %d\n",
					category, cs.Count, cs.AverageScore))
			}
		}
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "ScreeningReport"
}

// ReportMarkdownFormatter handles markdown formatting for batch screening reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	report, ok := asReport(data)
	if !ok {
		return "", fmt.Errorf("expected ScreeningReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Screening Report\n\n")
	if report.Job != nil {
		output.WriteString(fmt.Sprintf("**Job:** %s\n\n", report.Job.Title))
	}
	if len(report.Jobs) > 0 {
		output.WriteString("**Jobs:**\n\n")
		for _, job := range report.Jobs {
			output.WriteString(fmt.Sprintf("- %s\n", job.Title))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Candidates\n\n")
	if len(report.Single) > 0 {
		output.WriteString("| Candidate | Score | Skills |\n")
		output.WriteString("|-----------|-------|--------|\n")
		for _, entry := range report.Single {
			output.WriteString(fmt.Sprintf("| %s | %d/100 | %d%% |\n",
				entry.Candidate.Name, entry.Result.Score, entry.Result.SkillsMatch.Percentage))
		}
		output.WriteString("\n")
	}
	if len(report.Multi) > 0 {
		output.WriteString("| Candidate | Best Job | Score |\n")
		output.WriteString("|-----------|----------|-------|\n")
		for _, entry := range report.Multi {
			output.WriteString(fmt.Sprintf("| %s | %s | %d/100 |\n",
				entry.Candidate.Name, entry.Result.BestJob.Title, entry.Result.BestJob.Score))
		}
		output.WriteString("\n")
	}

	if stats := report.Statistics; stats != nil {
		output.WriteString("## Statistics\n\n")
		output.WriteString(fmt.Sprintf("**Total Candidates:** %d\n\n", stats.TotalCandidates))
		output.WriteString(fmt.Sprintf("**Qualified Candidates:** %d\n\n", stats.QualifiedCandidates))
		output.WriteString(fmt.Sprintf("**Average Score:** %d\n\n", stats.AverageScore))
		output.WriteString(fmt.Sprintf("**Top Score:** %d\n\n", stats.TopScore))

		output.WriteString("### Score Distribution\n\n")
		output.WriteString(fmt.Sprintf("- Excellent (80+): %d\n", stats.ScoreDistribution.Excellent))
		output.WriteString(fmt.Sprintf("- Good (60-79): %d\n", stats.ScoreDistribution.Good))
		output.WriteString(fmt.Sprintf("- Average (40-59): %d\n", stats.ScoreDistribution.Average))
		output.WriteString(fmt.Sprintf("- Poor (<40): %d\n", stats.ScoreDistribution.Poor))
		output.WriteString("\n")

		if len(stats.CategoryBreakdown) > 0 {
			output.WriteString("### Category Breakdown\n\n")
			for _, category := range sortedCategories(stats.CategoryBreakdown) {
				cs := stats.CategoryBreakdown[category]
				output.WriteString(fmt.Sprintf("- **%s:** %d candidates, average %d\n",
					category, cs.Count, cs.AverageScore))
			}
		}
	}

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "ScreeningReport"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// sortedJobTitles gives map iteration a stable order for display
func sortedJobTitles(results map[string]*types.ScoreResult) []string {
	titles := make([]string, 0, len(results))
	for title := range results {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

func sortedCategories(breakdown map[string]types.CategoryStats) []string {
	categories := make([]string, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
