package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-advisor/internal/advice"
	"github.com/jonathan/resume-advisor/internal/config"
	"github.com/jonathan/resume-advisor/internal/fetch"
	"github.com/jonathan/resume-advisor/internal/jobs"
	"github.com/jonathan/resume-advisor/internal/llm"
	"github.com/jonathan/resume-advisor/internal/logger"
	"github.com/jonathan/resume-advisor/internal/types"
)

// jobFlags are the flags shared by commands that compare a resume with a job.
type jobFlags struct {
	configPath     string
	jobTitle       string
	jobDescription string
	skills         string
	minExperience  int
	education      string
	jobFile        string
	jobURL         string
	lexicon        string
	apiKey         string
	useModel       bool
	model          string
	useBrowser     bool
	verbose        bool
}

func (f *jobFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	flags.StringVarP(&f.jobTitle, "job-title", "t", "", "Target job title; a matching template fills missing skills and description")
	flags.StringVar(&f.jobDescription, "job-description", "", "Job description text (mutually exclusive with --job-url)")
	flags.StringVarP(&f.skills, "skills", "s", "", "Required skills, separated by commas or newlines")
	flags.IntVar(&f.minExperience, "min-experience", 0, "Minimum years of experience")
	flags.StringVarP(&f.education, "education", "e", "", "Minimum education: Any, High School, Associate's, Bachelor's, Master's, PhD")
	flags.StringVarP(&f.jobFile, "job-file", "j", "", "Path to job requirements YAML or JSON file")
	flags.StringVar(&f.jobURL, "job-url", "", "URL of a job posting to use as the description")
	flags.StringVar(&f.lexicon, "lexicon", "", "Path to keyword tables (YAML or JSON); built-in English tables when empty")
	flags.StringVar(&f.apiKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	flags.BoolVar(&f.useModel, "use-model", false, "Use the generative model for advice when an API key is available")
	flags.StringVar(&f.model, "model", "", "Gemini model for advice (defaults to the standard tier model)")
	flags.BoolVar(&f.useBrowser, "use-browser", false, "Use headless browser for SPA job postings (requires Chrome)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed information")
}

// resolve loads the config file, applies explicitly set flags on top and
// fills defaults.
func (f *jobFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfigFile(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("job-title") {
		cfg.JobTitle = f.jobTitle
	}
	if flags.Changed("job-description") {
		cfg.JobDescription = f.jobDescription
	}
	if flags.Changed("skills") {
		cfg.Skills = jobs.ParseSkills(f.skills)
	}
	if flags.Changed("min-experience") {
		cfg.MinExperience = f.minExperience
	}
	if flags.Changed("education") {
		cfg.EducationLevel = f.education
	}
	if flags.Changed("job-file") {
		cfg.JobFile = f.jobFile
	}
	if flags.Changed("job-url") {
		cfg.JobURL = f.jobURL
	}
	if flags.Changed("lexicon") {
		cfg.Lexicon = f.lexicon
	}
	if flags.Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if flags.Changed("use-model") {
		cfg.UseModel = f.useModel
	}
	if flags.Changed("model") {
		cfg.Model = f.model
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = f.useBrowser
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	return finishConfig(cfg)
}

func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return *loaded, nil
}

func finishConfig(cfg config.Config) (*config.Config, error) {
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if cfg.APIKey == "" {
		cfg.APIKey = llm.APIKeyFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initLogging(cfg.LogLevel, cfg.LogFormat)
	return &cfg, nil
}

// buildJob assembles job requirements from a job file or individual fields.
// A job URL replaces the description with the posting text.
func buildJob(ctx context.Context, cfg *config.Config) (*types.JobRequirements, error) {
	description := cfg.JobDescription
	if cfg.JobURL != "" {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = cfg.UseBrowser
		posting, err := fetch.JobPosting(ctx, cfg.JobURL, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job posting: %w", err)
		}
		logger.Info().
			Str("url", posting.URL).
			Str("platform", string(posting.Platform)).
			Bool("rendered", posting.Rendered).
			Int("chars", len(posting.Text)).
			Msg("fetched job posting")
		description = posting.Text
	}

	if cfg.JobFile != "" {
		job, err := jobs.LoadFile(cfg.JobFile)
		if err != nil {
			return nil, err
		}
		if description != "" {
			job.Description = description
		}
		return job, nil
	}

	return jobs.Build(jobs.Input{
		Title:          cfg.JobTitle,
		Description:    description,
		Skills:         cfg.Skills,
		MinExperience:  cfg.MinExperience,
		EducationLevel: cfg.EducationLevel,
	})
}

// newGenerator picks the advice strategy. The returned func releases the
// model client, if any.
func newGenerator(ctx context.Context, cfg *config.Config) (advice.Generator, func()) {
	noop := func() {}
	if !cfg.UseModel {
		return advice.RuleBased{}, noop
	}
	if cfg.APIKey == "" {
		logger.Warn().Msgf("model advice requested but %s is not set, using rule-based replies", llm.APIKeyEnv)
		return advice.RuleBased{}, noop
	}

	client, err := llm.NewClient(ctx, modelConfig(cfg), cfg.APIKey)
	if err != nil {
		logger.Warn().Err(err).Msg("model client unavailable, using rule-based replies")
		return advice.RuleBased{}, noop
	}
	return advice.NewModelBacked(client), func() { _ = client.Close() }
}

// modelConfig is the default model config with cfg.Model, if set, as the
// standard tier model.
func modelConfig(cfg *config.Config) *llm.Config {
	mc := llm.DefaultConfig()
	if model := strings.TrimSpace(cfg.Model); model != "" {
		mc = mc.WithModel(llm.TierStandard, model)
	}
	return mc
}
