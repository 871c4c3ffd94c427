package cli

import (
	"context"
	"fmt"

	"hirescreen/internal/common"
	"hirescreen/internal/types"

	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen [job-file] [resume-file-or-dir...]",
	Short: "Screen a batch of resumes against one or more jobs",
	Long: `Screen a batch of plain-text resumes against job requirements.
Resume arguments may be individual files or directories; directories are
scanned for text files one level deep. The job file holds a single job,
or a list of jobs when --multi is set, in which case every candidate is
matched against all jobs and assigned a best match.

The report lists each candidate's result, qualification statistics and
the score distribution across the batch.`,
	Args: cobra.MinimumNArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if screenConfig.OutputFormat == "" {
			screenConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(screenConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScreen,
}

var screenConfig common.CommandConfig
var screenMulti bool

func init() {
	screenCmd.Flags().StringVarP(&screenConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	screenCmd.Flags().StringVar(&screenConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	screenCmd.Flags().BoolVar(&screenMulti, "multi", false, "Treat the job file as a list and match candidates across all jobs")

	// Add completion for format flag
	_ = screenCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	jobs, err := common.LoadJobs(logger, args[0])
	if err != nil {
		return fmt.Errorf("failed to load job requirements: %w", err)
	}
	if !screenMulti && len(jobs) > 1 {
		return fmt.Errorf("job file %s holds %d jobs; pass --multi to screen against all of them", args[0], len(jobs))
	}

	resumeFiles, err := common.NewFileProcessor(logger).ExpandResumePaths(args[1:]...)
	if err != nil {
		return err
	}

	createInput := func(contents []string) ([]*types.CandidateProfile, error) {
		candidates := make([]*types.CandidateProfile, 0, len(contents))
		for i, content := range contents {
			candidate, err := p.Extractor.Extract(content)
			if err != nil {
				// Unparseable resumes stay in the batch as invalid
				// entries so the report accounts for them.
				logger.Warn("Failed to extract profile, marking candidate invalid",
					"file", resumeFiles[i],
					"error", err.Error())
				candidate = &types.CandidateProfile{Name: types.UnknownCandidateName}
			}
			candidates = append(candidates, candidate)
		}
		return candidates, nil
	}

	logDetails := func(candidates []*types.CandidateProfile, cfg common.CommandConfig) {
		logger.Info("Starting batch screening",
			"candidates", len(candidates),
			"jobs", len(jobs),
			"output_format", cfg.OutputFormat)
	}

	screenOperation := func(ctx context.Context, candidates []*types.CandidateProfile) (*types.ScreeningReport, error) {
		if screenMulti {
			return p.Screener.ScreenMulti(ctx, candidates, jobs), nil
		}
		return p.Screener.ScreenOne(ctx, candidates, &jobs[0]), nil
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		screenConfig,
		resumeFiles,
		createInput,
		screenOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to screen resumes: %w", err)
	}
	logger.Info("Batch screening completed successfully")
	return nil
}
