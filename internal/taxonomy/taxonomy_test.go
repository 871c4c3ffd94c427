package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWeightsSumTo100(t *testing.T) {
	table := Default()

	for name, domain := range table.Domains {
		t.Run(name, func(t *testing.T) {
			sum := 0
			for _, category := range domain.Categories {
				sum += category.Weight
			}
			if sum != 100 {
				t.Errorf("domain %s category weights sum to %d, want 100", name, sum)
			}
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("builtin table failed validation: %v", err)
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Table)
	}{
		{
			name:   "no domains",
			mutate: func(tb *Table) { tb.Domains = nil },
		},
		{
			name: "weights do not sum to 100",
			mutate: func(tb *Table) {
				tb.Domains[DomainFinance].Categories[0].Weight += 5
			},
		},
		{
			name: "empty keywords",
			mutate: func(tb *Table) {
				tb.Domains[DomainFullStack].Keywords = nil
			},
		},
		{
			name: "category without skills",
			mutate: func(tb *Table) {
				tb.Domains[DomainNetworkInfra].Categories[0].Skills = nil
			},
		},
		{
			name:   "empty skill vocabulary",
			mutate: func(tb *Table) { tb.SkillVocabulary = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Default()
			tt.mutate(table)
			if err := table.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")

	content := `
skillVocabulary:
  - python
  - java
  - accounting
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write taxonomy file: %v", err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if len(table.SkillVocabulary) != 3 {
		t.Errorf("skill vocabulary length = %d, want 3", len(table.SkillVocabulary))
	}
	// Omitted sections inherit the builtin.
	if len(table.Domains) != len(Default().Domains) {
		t.Errorf("domains = %d, want builtin %d", len(table.Domains), len(Default().Domains))
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed yaml",
			content: "domains: [not a map",
		},
		{
			name: "bad weight sum",
			content: `
domains:
  finance:
    name: finance
    keywords: [accounting]
    categories:
      - name: core
        weight: 90
        skills: [tally]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestStoreSwap(t *testing.T) {
	store := NewStore(nil)
	if store.Current() == nil {
		t.Fatal("store seeded with nil should hold builtin table")
	}

	override := Default()
	override.SkillVocabulary = []string{"python"}
	store.Swap(override)

	if got := len(store.Current().SkillVocabulary); got != 1 {
		t.Errorf("after swap, skill vocabulary length = %d, want 1", got)
	}
}
