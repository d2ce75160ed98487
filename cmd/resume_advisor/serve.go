package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-advisor/internal/fetch"
	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/server"
	"github.com/jonathan/resume-advisor/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server that analyzes uploaded resumes and keeps chat sessions in memory.

Rate limits are read from RATE_LIMIT_* environment variables. Sessions without chat activity for
--session-ttl are dropped.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveLexicon    string
	serveAPIKey     string
	serveUseModel   bool
	serveUseBrowser bool
	serveModel      string
	serveSessionTTL time.Duration
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveLexicon, "lexicon", "", "Path to keyword tables (YAML or JSON)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().BoolVar(&serveUseModel, "use-model", false, "Use the generative model for chat replies")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job postings (requires Chrome)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Gemini model for chat replies (defaults to the standard tier model)")
	serveCmd.Flags().DurationVar(&serveSessionTTL, "session-ttl", session.DefaultIdleTTL, "Drop sessions idle this long (0 keeps them)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(serveConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if flags.Changed("lexicon") {
		cfg.Lexicon = serveLexicon
	}
	if flags.Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if flags.Changed("use-model") {
		cfg.UseModel = serveUseModel
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}
	if flags.Changed("model") {
		cfg.Model = serveModel
	}
	if serveSessionTTL < 0 {
		return fmt.Errorf("--session-ttl must not be negative")
	}

	resolved, err := finishConfig(cfg)
	if err != nil {
		return err
	}

	lex, err := lexicon.Load(resolved.Lexicon)
	if err != nil {
		return err
	}

	gen, closeGen := newGenerator(cmd.Context(), resolved)
	defer closeGen()

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = resolved.UseBrowser

	srv, err := server.New(server.Config{
		Port:         resolved.Port,
		Lexicon:      lex,
		Generator:    gen,
		FetchOptions: fetchOpts,
		Sessions: &session.StoreConfig{
			IdleTTL:         serveSessionTTL,
			CleanupInterval: session.DefaultCleanupInterval,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
