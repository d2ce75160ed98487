package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-advisor/internal/advice"
	"github.com/jonathan/resume-advisor/internal/analysis"
	"github.com/jonathan/resume-advisor/internal/ingestion"
	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/logger"
	"github.com/jonathan/resume-advisor/internal/observability"
	"github.com/jonathan/resume-advisor/internal/parsing"
	"github.com/jonathan/resume-advisor/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume>...",
	Short: "Analyze resumes against job requirements",
	Long: `Extract each resume (PDF, DOCX, or plain text), compare it with the job requirements and print the
gap report, selection probability, prioritized suggestions and insights.

Several resumes are analyzed independently and concurrently. Configuration can be loaded from a JSON file
using --config. Command-line arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeJob      jobFlags
	analyzeJSON     bool
	analyzeReview   bool
	analyzeParallel int
)

func init() {
	analyzeJob.register(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeReview, "review", false, "Append the honest review narrative")
	analyzeCmd.Flags().IntVarP(&analyzeParallel, "parallel", "p", runtime.NumCPU(), "Maximum resumes analyzed at once")

	rootCmd.AddCommand(analyzeCmd)
}

// fileResult is the outcome for one resume file.
type fileResult struct {
	Path     string              `json:"path"`
	Document *ingestion.Metadata `json:"document,omitempty"`
	Analysis *types.Analysis     `json:"analysis,omitempty"`
	Review   string              `json:"review,omitempty"`
	Error    string              `json:"error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := analyzeJob.resolve(cmd)
	if err != nil {
		return err
	}

	lex, err := lexicon.Load(cfg.Lexicon)
	if err != nil {
		return err
	}

	job, err := buildJob(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	results := analyzeFiles(args, *job, lex, analyzeParallel, analyzeReview)

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		printResults(out, cmd.ErrOrStderr(), results, job, cfg.Verbose)
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d resumes could not be analyzed", failed, len(results))
	}
	return nil
}

// analyzeFiles runs each file on its own goroutine, at most limit at a time.
// Results keep the order of paths.
func analyzeFiles(paths []string, job types.JobRequirements, lex *lexicon.Lexicon, limit int, review bool) []fileResult {
	if limit < 1 {
		limit = 1
	}
	results := make([]fileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = analyzeFile(path, job, lex, review)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func analyzeFile(path string, job types.JobRequirements, lex *lexicon.Lexicon, review bool) fileResult {
	logger.Debug().Str("file", path).Msg("analyzing resume")

	doc, err := ingestion.Load(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("resume could not be read")
		return fileResult{Path: path, Error: err.Error()}
	}

	record := parsing.BuildRecord(doc.Text, lex)
	result := analysis.Run(record, job, lex)
	fr := fileResult{Path: path, Document: doc.Metadata, Analysis: &result}
	if review {
		fr.Review = advice.RenderReview(advice.NewInput(record, job, lex))
	}
	return fr
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func printResults(out, errOut io.Writer, results []fileResult, job *types.JobRequirements, verbose bool) {
	printer := observability.NewPrinter(out)
	if verbose {
		printer.PrintJobRequirements(job)
	}
	for i, r := range results {
		if r.Error != "" {
			fmt.Fprintf(errOut, "✗ %s: %s\n", r.Path, r.Error)
			continue
		}
		if i > 0 || verbose {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", r.Path)
		if verbose && r.Document != nil {
			if meta, err := r.Document.ToJSON(); err == nil {
				fmt.Fprintf(out, "%s\n", meta)
			}
		}
		printer.PrintAnalysis(r.Analysis)
		if r.Review != "" {
			fmt.Fprintf(out, "\n%s\n", r.Review)
		}
	}
}
