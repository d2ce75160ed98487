// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-advisor/internal/types"
)

// Defaults applied by MergeWithDefaults callers.
const (
	DefaultPort      = 8080
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

var logLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true, "disabled": true,
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Job
	JobTitle       string   `json:"job_title,omitempty"`
	JobDescription string   `json:"job_description,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	MinExperience  int      `json:"min_experience,omitempty"`
	EducationLevel string   `json:"education_level,omitempty"` // one of types.EducationLevels
	JobFile        string   `json:"job_file,omitempty"`        // YAML/JSON job requirements
	JobURL         string   `json:"job_url,omitempty"`         // posting to use as the description

	// Tables
	Lexicon string `json:"lexicon,omitempty"` // keyword tables (YAML/JSON)

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseModel   bool   `json:"use_model,omitempty"`   // model-backed advice when an API key is present
	Model      string `json:"model,omitempty"`       // Gemini model for advice; tier default when empty
	UseBrowser bool   `json:"use_browser,omitempty"` // headless browser for SPA job postings
	Verbose    bool   `json:"verbose,omitempty"`

	// Server
	Port int `json:"port,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"` // "json" or "pretty"
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges and enum membership. Required inputs are
// checked by the commands after flags are merged.
func (c *Config) Validate() error {
	if c.JobFile != "" && (c.JobTitle != "" || len(c.Skills) > 0) {
		return fmt.Errorf("config error: 'job_file' cannot be combined with 'job_title' or 'skills'")
	}
	if c.JobDescription != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job_description' and 'job_url' are mutually exclusive")
	}

	if c.MinExperience < 0 {
		return fmt.Errorf("config error: 'min_experience' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if _, ok := types.ParseEducationLevel(c.EducationLevel); !ok {
		return fmt.Errorf("config error: unknown 'education_level' %q", c.EducationLevel)
	}
	if c.LogLevel != "" && !logLevels[c.LogLevel] {
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}
	if c.LogFormat != "" && c.LogFormat != "json" && c.LogFormat != "pretty" {
		return fmt.Errorf("config error: 'log_format' must be 'json' or 'pretty'")
	}

	for name, path := range map[string]string{"job_file": c.JobFile, "lexicon": c.Lexicon} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Config file values are passed as defaults for CLI flags this way.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if len(result.Skills) == 0 && len(defaults.Skills) > 0 {
		result.Skills = append([]string(nil), defaults.Skills...)
	}
	if result.EducationLevel == "" {
		result.EducationLevel = defaults.EducationLevel
	}
	if result.JobFile == "" {
		result.JobFile = defaults.JobFile
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.MinExperience == 0 {
		result.MinExperience = defaults.MinExperience
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bools cannot distinguish unset from false, so CLI flags always win.

	return result
}

// Defaults returns the built-in defaults.
func Defaults() Config {
	return Config{
		EducationLevel: string(types.EducationAny),
		Port:           DefaultPort,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}
