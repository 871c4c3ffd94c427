package taxonomy

import (
	"hirescreen/internal/errors"
)

// Validate checks the structural invariants of a table: every domain has a
// non-empty keyword set and skill categories whose weights sum to exactly 100.
func (t *Table) Validate() error {
	if len(t.Domains) == 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "taxonomy has no domains", nil)
	}

	for name, domain := range t.Domains {
		if err := validateDomain(name, domain); err != nil {
			return err
		}
	}

	if len(t.SkillVocabulary) == 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "skill vocabulary is empty", nil)
	}
	if len(t.DegreePrecedence) == 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "degree precedence table is empty", nil)
	}

	return nil
}

func validateDomain(name string, domain *DomainTaxonomy) error {
	if domain == nil {
		return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "domain entry is nil", nil).
			WithContext("domain", name)
	}
	if len(domain.Keywords) == 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "domain has no classifier keywords", nil).
			WithContext("domain", name)
	}
	if len(domain.Categories) == 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "domain has no skill categories", nil).
			WithContext("domain", name)
	}

	weightSum := 0
	for _, category := range domain.Categories {
		if category.Name == "" {
			return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "skill category has no name", nil).
				WithContext("domain", name)
		}
		if len(category.Skills) == 0 {
			return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "skill category has no skills", nil).
				WithContext("domain", name).
				WithContext("category", category.Name)
		}
		if category.Weight <= 0 {
			return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "skill category weight must be positive", nil).
				WithContext("domain", name).
				WithContext("category", category.Name)
		}
		weightSum += category.Weight
	}

	if weightSum != 100 {
		return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "domain category weights must sum to 100", nil).
			WithContext("domain", name).
			WithContext("weight_sum", weightSum)
	}

	if domain.Mismatch != nil {
		if len(domain.Mismatch.Markers) == 0 {
			return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "mismatch rule has no marker terms", nil).
				WithContext("domain", name)
		}
		if domain.Mismatch.Penalty <= 0 {
			return errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "mismatch penalty must be positive", nil).
				WithContext("domain", name)
		}
	}

	return nil
}
