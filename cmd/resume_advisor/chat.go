package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-advisor/internal/ingestion"
	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/observability"
	"github.com/jonathan/resume-advisor/internal/parsing"
	"github.com/jonathan/resume-advisor/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat <resume>",
	Short: "Ask career questions about a resume",
	Long: `Analyze a resume against job requirements, then answer questions about improvements, selection chances,
skills, experience and projects. Reads questions from stdin until "exit" unless --message is given.

With --use-model and GEMINI_API_KEY set, replies come from the generative model and fall back to the
rule-based advisor on any model failure.`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

var (
	chatJob      jobFlags
	chatMessages []string
)

func init() {
	chatJob.register(chatCmd)
	chatCmd.Flags().StringArrayVarP(&chatMessages, "message", "m", nil, "Ask this question and exit (repeatable)")

	rootCmd.AddCommand(chatCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := chatJob.resolve(cmd)
	if err != nil {
		return err
	}
	lex, err := lexicon.Load(cfg.Lexicon)
	if err != nil {
		return err
	}
	job, err := buildJob(ctx, cfg)
	if err != nil {
		return err
	}

	doc, err := ingestion.Load(args[0])
	if err != nil {
		return err
	}
	record := parsing.BuildRecord(doc.Text, lex)
	sess := session.New(record, *job, lex)

	gen, closeGen := newGenerator(ctx, cfg)
	defer closeGen()

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintJobRequirements(job)
		printer.PrintResumeSummary(record.Summary())
	}
	fmt.Fprintf(out, "%s\n\n", sess.History()[0].Content)

	if len(chatMessages) > 0 {
		for _, msg := range chatMessages {
			reply := sess.Chat(ctx, gen, msg)
			fmt.Fprintf(out, "> %s\n%s\n\n", msg, reply.Content)
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}
		if isQuit(msg) {
			break
		}
		reply := sess.Chat(ctx, gen, msg)
		fmt.Fprintf(out, "%s\n\n", reply.Content)
	}
	return scanner.Err()
}

func isQuit(msg string) bool {
	switch strings.ToLower(msg) {
	case "exit", "quit", "bye":
		return true
	}
	return false
}
