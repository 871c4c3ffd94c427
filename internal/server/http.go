package server

import (
	"fmt"
	"time"

	"hirescreen/internal/ai"
	"hirescreen/internal/classify"
	"hirescreen/internal/config"
	hsErrors "hirescreen/internal/errors"
	"hirescreen/internal/extract"
	"hirescreen/internal/scoring"
	"hirescreen/internal/screening"
	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

// ExtractRequest represents the request body for the extract endpoint
type ExtractRequest struct {
	ResumeText string `json:"resumeText"`
}

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	ResumeText string               `json:"resumeText"`
	Job        types.JobRequirement `json:"job"`
}

// ScreenRequest represents the request body for the screen endpoint.
// Provide either a single job or a list of jobs; a list triggers
// best-match selection across all of them.
type ScreenRequest struct {
	Resumes []string               `json:"resumes"`
	Job     *types.JobRequirement  `json:"job,omitempty"`
	Jobs    []types.JobRequirement `json:"jobs,omitempty"`
}

// ScoreResponse pairs the extracted profile with its score
type ScoreResponse struct {
	Candidate *types.CandidateProfile `json:"candidate"`
	Result    *types.ScoreResult      `json:"result"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Screening pipeline
	Store     *taxonomy.Store
	Extractor *extract.Extractor
	Engine    *scoring.Engine
	Screener  *screening.Screener
	Semantic  *ai.Semantic

	// Taxonomy hot reload
	TaxonomyWatcher *taxonomy.Watcher

	// Logger
	Logger *hsErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct.
// The screening pipeline (taxonomy, extractor, scoring engine, screener,
// optional AI collaborator) is built once and shared across requests.
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *hsErrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	store, err := buildTaxonomyStore(appCfg, logger)
	if err != nil {
		return nil, err
	}

	semantic, err := ai.NewSemantic(appCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AI collaborator: %w", err)
	}

	engineCfg := appCfg.Engine
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

	s := &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Store:          store,
		Extractor:      extractor,
		Engine:         engine,
		Screener:       screener,
		Semantic:       semantic,
		Logger:         logger,
	}

	if engineCfg.WatchTaxonomy && engineCfg.TaxonomyFile != "" {
		s.TaxonomyWatcher = taxonomy.NewWatcher(engineCfg.TaxonomyFile, store, 500*time.Millisecond, logger)
	}

	return s, nil
}

// buildTaxonomyStore loads the configured taxonomy override or falls back
// to the builtin tables.
func buildTaxonomyStore(appCfg *config.Config, logger *hsErrors.Logger) (*taxonomy.Store, error) {
	if appCfg.Engine.TaxonomyFile == "" {
		return taxonomy.NewStore(nil), nil
	}

	table, err := taxonomy.LoadFile(appCfg.Engine.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy file: %w", err)
	}

	logger.Info("Loaded taxonomy override",
		"file", appCfg.Engine.TaxonomyFile,
		"domains", len(table.Domains))

	return taxonomy.NewStore(table), nil
}
