package common

import (
	"encoding/json"
	"fmt"

	"hirescreen/internal/errors"
	"hirescreen/internal/types"
	"hirescreen/internal/utils"

	"gopkg.in/yaml.v3"
)

// jobDocument mirrors types.JobRequirement with YAML tags so job files can
// use the same camelCase keys in both YAML and JSON.
type jobDocument struct {
	Title               string   `yaml:"title" json:"title"`
	Description         string   `yaml:"description" json:"description"`
	RequiredSkills      []string `yaml:"requiredSkills" json:"requiredSkills"`
	MinExperience       int      `yaml:"minExperience" json:"minExperience"`
	MaxExperience       int      `yaml:"maxExperience" json:"maxExperience"`
	EducationPreference string   `yaml:"educationPreference" json:"educationPreference"`
	DomainCategory      string   `yaml:"domainCategory" json:"domainCategory"`
}

func (jd jobDocument) toRequirement() types.JobRequirement {
	return types.JobRequirement{
		Title:               jd.Title,
		Description:         jd.Description,
		RequiredSkills:      jd.RequiredSkills,
		MinExperience:       jd.MinExperience,
		MaxExperience:       jd.MaxExperience,
		EducationPreference: jd.EducationPreference,
		DomainCategory:      jd.DomainCategory,
	}
}

// LoadJobs reads one or more job requirements from a YAML or JSON file.
// The file may contain a single job object or a list of jobs.
func LoadJobs(logger *errors.Logger, filename string) ([]types.JobRequirement, error) {
	fp := NewFileProcessor(logger)
	content, err := fp.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var docs []jobDocument
	switch utils.GetFileExtension(filename) {
	case ".json":
		docs, err = parseJobJSON([]byte(content))
	default:
		docs, err = parseJobYAML([]byte(content))
	}
	if err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Cannot parse job file: %s", filename), err)
	}

	if len(docs) == 0 {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyInput,
			fmt.Sprintf("Job file contains no jobs: %s", filename), nil)
	}

	jobs := make([]types.JobRequirement, len(docs))
	for i, doc := range docs {
		jobs[i] = doc.toRequirement()
		if err := jobs[i].Validate(); err != nil {
			return nil, errors.NewValidationError(errors.ErrCodeInvalidFormat,
				fmt.Sprintf("Job %d in %s is invalid", i+1, filename), err)
		}
	}

	return jobs, nil
}

// LoadJob reads exactly one job requirement from a YAML or JSON file.
func LoadJob(logger *errors.Logger, filename string) (*types.JobRequirement, error) {
	jobs, err := LoadJobs(logger, filename)
	if err != nil {
		return nil, err
	}
	if len(jobs) > 1 {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Expected a single job in %s, found %d", filename, len(jobs)), nil)
	}
	return &jobs[0], nil
}

func parseJobJSON(data []byte) ([]jobDocument, error) {
	var list []jobDocument
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var single jobDocument
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []jobDocument{single}, nil
}

func parseJobYAML(data []byte) ([]jobDocument, error) {
	var list []jobDocument
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var single jobDocument
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []jobDocument{single}, nil
}
