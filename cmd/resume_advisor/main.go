// Package main provides the command line interface for the resume advisor.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-advisor/internal/logger"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "resume_advisor",
	Short: "Resume gap analysis and career advice",
	Long: `Resume Advisor extracts a structured record from a PDF or DOCX resume, compares it with job requirements,
scores the selection probability and answers career questions about the gaps it finds.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogging("", "")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (defaults to LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or pretty (defaults to LOG_FORMAT or json)")
}

// initLogging configures the logger. Flags win over config file values,
// which win over the environment.
func initLogging(cfgLevel, cfgFormat string) {
	lc := logger.FromEnv()
	if cfgLevel != "" {
		lc.Level = cfgLevel
	}
	if cfgFormat != "" {
		lc.Format = cfgFormat
	}
	if logLevel != "" {
		lc.Level = logLevel
	}
	if logFormat != "" {
		lc.Format = logFormat
	}
	logger.Init(lc)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
