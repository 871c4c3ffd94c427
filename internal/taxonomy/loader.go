package taxonomy

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"hirescreen/internal/errors"
)

// LoadFile reads a YAML taxonomy override file and validates it before
// returning. An invalid file never replaces anything: the caller keeps
// whatever table it already holds.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError(errors.ErrCodeFileNotFound, "taxonomy file not found", err).
				WithContext("path", path)
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable, "failed to read taxonomy file", err).
			WithContext("path", path)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "failed to parse taxonomy YAML", err).
			WithContext("path", path)
	}

	// Partial overrides inherit the builtin sections they omit.
	builtin := Default()
	if len(table.Domains) == 0 {
		table.Domains = builtin.Domains
	}
	if len(table.SkillVocabulary) == 0 {
		table.SkillVocabulary = builtin.SkillVocabulary
	}
	if len(table.NameSkipWords) == 0 {
		table.NameSkipWords = builtin.NameSkipWords
	}
	if len(table.DegreePrecedence) == 0 {
		table.DegreePrecedence = builtin.DegreePrecedence
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return &table, nil
}

// Store holds the active taxonomy table and supports atomic swaps from the
// hot-reload watcher. Readers always see a complete, validated table.
type Store struct {
	mu    sync.RWMutex
	table *Table
}

// NewStore creates a store seeded with the given table; nil seeds the builtin.
func NewStore(table *Table) *Store {
	if table == nil {
		table = Default()
	}
	return &Store{table: table}
}

// Current returns the active table
func (s *Store) Current() *Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Swap replaces the active table. The table must already be validated.
func (s *Store) Swap(table *Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
}
