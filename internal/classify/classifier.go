// Package classify maps a job posting onto a domain category by counting
// domain keyword hits over the title and description. The keyword path is
// deterministic and always usable alone; a semantic collaborator may
// override it only when available and sufficiently confident.
package classify

import (
	"context"
	"slices"
	"strings"

	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

// minKeywordHits is the threshold a domain must reach to win classification
const minKeywordHits = 2

// SemanticClassifier is the optional external capability. Absence, errors,
// and low confidence all fall through to the keyword result.
type SemanticClassifier interface {
	ClassifyDomain(ctx context.Context, job *types.JobRequirement) (category string, confidence float64, err error)
	IsAvailable() bool
}

// Classifier resolves job postings to domain categories
type Classifier struct {
	store               *taxonomy.Store
	semantic            SemanticClassifier
	confidenceThreshold float64
}

// NewClassifier creates a keyword classifier. semantic may be nil.
func NewClassifier(store *taxonomy.Store, semantic SemanticClassifier, confidenceThreshold float64) *Classifier {
	if store == nil {
		store = taxonomy.NewStore(nil)
	}
	if confidenceThreshold <= 0 {
		confidenceThreshold = 0.75
	}
	return &Classifier{
		store:               store,
		semantic:            semantic,
		confidenceThreshold: confidenceThreshold,
	}
}

// Classify returns the domain category for a job. An explicit
// DomainCategory on the job short-circuits classification entirely.
func (c *Classifier) Classify(ctx context.Context, job *types.JobRequirement) string {
	if job == nil {
		return taxonomy.DefaultDomain
	}
	if job.DomainCategory != "" {
		if _, ok := c.store.Current().Domains[job.DomainCategory]; ok {
			return job.DomainCategory
		}
	}

	keywordResult := c.classifyByKeywords(job)

	if c.semantic != nil && c.semantic.IsAvailable() {
		if category, confidence, err := c.semantic.ClassifyDomain(ctx, job); err == nil && confidence >= c.confidenceThreshold {
			if _, ok := c.store.Current().Domains[category]; ok {
				return category
			}
		}
	}

	return keywordResult
}

// classifyByKeywords counts each domain's primary keywords over
// title + description; the highest count wins if it reaches the threshold
func (c *Classifier) classifyByKeywords(job *types.JobRequirement) string {
	text := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.RequiredSkills, " "))

	best := taxonomy.DefaultDomain
	bestCount := 0

	table := c.store.Current()
	for _, name := range sortedDomainNames(table) {
		count := 0
		for _, keyword := range table.Domains[name].Keywords {
			if strings.Contains(text, keyword) {
				count++
			}
		}
		if count > bestCount {
			best = name
			bestCount = count
		}
	}

	if bestCount < minKeywordHits {
		return taxonomy.DefaultDomain
	}
	return best
}

// sortedDomainNames gives a stable iteration order so ties between domains
// resolve deterministically across runs
func sortedDomainNames(table *taxonomy.Table) []string {
	names := make([]string, 0, len(table.Domains))
	for name := range table.Domains {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
