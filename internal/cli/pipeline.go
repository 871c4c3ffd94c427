package cli

import (
	"fmt"

	"hirescreen/internal/ai"
	"hirescreen/internal/classify"
	"hirescreen/internal/config"
	"hirescreen/internal/errors"
	"hirescreen/internal/extract"
	"hirescreen/internal/scoring"
	"hirescreen/internal/screening"
	"hirescreen/internal/taxonomy"
)

// pipeline bundles the screening components a CLI command needs. Each
// command builds one for its own run; the HTTP server keeps a long-lived
// equivalent instead.
type pipeline struct {
	Store     *taxonomy.Store
	Extractor *extract.Extractor
	Engine    *scoring.Engine
	Screener  *screening.Screener
	Semantic  *ai.Semantic
}

func newPipeline(cfg *config.Config, logger *errors.Logger) (*pipeline, error) {
	store, err := loadTaxonomyStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	semantic, err := ai.NewSemantic(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AI collaborator: %w", err)
	}

	engineCfg := cfg.Engine
	classifier := classify.NewClassifier(store, semantic, engineCfg.SemanticConfidenceThreshold)
	engine := scoring.NewEngine(store, classifier,
		scoring.WithScoreFloor(engineCfg.ScoreFloor),
		scoring.WithAugmenter(semantic),
		scoring.WithLogger(logger),
	)
	screener := screening.NewScreener(engine,
		screening.WithWorkers(engineCfg.Workers),
		screening.WithQualifyingThreshold(engineCfg.QualifyingThreshold),
		screening.WithSkillAugmenter(semantic),
		screening.WithScreenerLogger(logger),
	)
	extractor := extract.NewExtractor(store,
		extract.WithMaxSkills(engineCfg.MaxSkills),
		extract.WithMaxExperienceYears(engineCfg.MaxExperienceYears),
	)

	return &pipeline{
		Store:     store,
		Extractor: extractor,
		Engine:    engine,
		Screener:  screener,
		Semantic:  semantic,
	}, nil
}

func loadTaxonomyStore(cfg *config.Config, logger *errors.Logger) (*taxonomy.Store, error) {
	if cfg.Engine.TaxonomyFile == "" {
		return taxonomy.NewStore(nil), nil
	}

	table, err := taxonomy.LoadFile(cfg.Engine.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy file: %w", err)
	}

	logger.Info("Loaded taxonomy override",
		"file", cfg.Engine.TaxonomyFile,
		"domains", len(table.Domains))

	return taxonomy.NewStore(table), nil
}
