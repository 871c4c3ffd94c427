package common

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestLoadJobSingleYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "job.yaml", `
title: Backend Engineer
description: Build and run Go services
requiredSkills:
  - go
  - postgresql
minExperience: 3
maxExperience: 8
educationPreference: Bachelor's Degree
`)

	job, err := LoadJob(nil, path)
	if err != nil {
		t.Fatalf("LoadJob failed: %v", err)
	}

	if job.Title != "Backend Engineer" {
		t.Errorf("Expected title 'Backend Engineer', got '%s'", job.Title)
	}
	if len(job.RequiredSkills) != 2 || job.RequiredSkills[0] != "go" {
		t.Errorf("Unexpected required skills: %v", job.RequiredSkills)
	}
	if job.MinExperience != 3 || job.MaxExperience != 8 {
		t.Errorf("Unexpected experience range: %d-%d", job.MinExperience, job.MaxExperience)
	}
}

func TestLoadJobsListYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "jobs.yaml", `
- title: Network Engineer
  requiredSkills: [bgp, ospf]
- title: Data Analyst
  requiredSkills: [sql, python]
`)

	jobs, err := LoadJobs(nil, path)
	if err != nil {
		t.Fatalf("LoadJobs failed: %v", err)
	}

	if len(jobs) != 2 {
		t.Fatalf("Expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Title != "Network Engineer" || jobs[1].Title != "Data Analyst" {
		t.Errorf("Unexpected job titles: %s, %s", jobs[0].Title, jobs[1].Title)
	}
}

func TestLoadJobsJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "job.json",
		`{"title": "Platform Engineer", "requiredSkills": ["kubernetes", "terraform"], "minExperience": 2}`)

	jobs, err := LoadJobs(nil, path)
	if err != nil {
		t.Fatalf("LoadJobs failed: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("Expected 1 job, got %d", len(jobs))
	}
	if jobs[0].Title != "Platform Engineer" {
		t.Errorf("Unexpected title: %s", jobs[0].Title)
	}
}

func TestLoadJobRejectsMissingTitle(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "job.yaml", `
description: no title here
requiredSkills: [go]
`)

	if _, err := LoadJob(nil, path); err == nil {
		t.Error("Expected error for job without title")
	}
}

func TestLoadJobsRejectsInvalidExperienceRange(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			"InvertedRange",
			`
title: Senior Accountant
requiredSkills: [tally]
minExperience: 5
maxExperience: 2
`,
		},
		{
			"NegativeMinimum",
			`
title: Analyst
minExperience: -1
maxExperience: 3
`,
		},
		{
			"NegativeMaximum",
			`
title: Analyst
minExperience: 0
maxExperience: -2
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, dir, tt.name+".yaml", tt.content)
			if _, err := LoadJobs(nil, path); err == nil {
				t.Error("Expected error for invalid experience bounds")
			}
		})
	}
}

func TestLoadJobRejectsMultipleJobs(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "jobs.yaml", `
- title: One
- title: Two
`)

	if _, err := LoadJob(nil, path); err == nil {
		t.Error("Expected error when a single job is required but several are present")
	}
}

func TestExpandResumePaths(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "b.txt", "resume b")
	writeTestFile(t, dir, "a.txt", "resume a")
	writeTestFile(t, dir, "notes.bin", "skip me")
	extra := writeTestFile(t, dir, "c.md", "resume c")

	fp := NewFileProcessor(nil)

	files, err := fp.ExpandResumePaths(dir)
	if err != nil {
		t.Fatalf("ExpandResumePaths failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("Expected 3 resume files, got %d: %v", len(files), files)
	}
	// Sorted order
	if filepath.Base(files[0]) != "a.txt" || filepath.Base(files[2]) != "c.md" {
		t.Errorf("Files not in sorted order: %v", files)
	}

	// Direct file path passes through even without a text extension check
	files, err = fp.ExpandResumePaths(extra)
	if err != nil {
		t.Fatalf("ExpandResumePaths single file failed: %v", err)
	}
	if len(files) != 1 || files[0] != extra {
		t.Errorf("Unexpected single-file result: %v", files)
	}
}

func TestExpandResumePathsMissing(t *testing.T) {
	fp := NewFileProcessor(nil)
	if _, err := fp.ExpandResumePaths("/nonexistent/resumes"); err == nil {
		t.Error("Expected error for missing path")
	}
}
