package cli

import (
	"context"
	"fmt"

	"hirescreen/internal/common"
	"hirescreen/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file] [job-file]",
	Short: "Score a resume against a job requirement",
	Long: `Score a plain-text resume against a job requirement. The job file is
YAML or JSON describing the title, required skills, experience range,
education preference and domain category. The result includes the match
score, matched and missing skills, and a scoring trail explaining every
adjustment.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	job, err := common.LoadJob(logger, args[1])
	if err != nil {
		return fmt.Errorf("failed to load job requirement: %w", err)
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input),
			"job_title", job.Title,
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, resumeText string) (*types.ScoreResult, error) {
		candidate, err := p.Extractor.Extract(resumeText)
		if err != nil {
			return nil, fmt.Errorf("failed to extract profile: %w", err)
		}
		return p.Engine.ScoreOne(ctx, candidate, job), nil
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args[:1],
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
