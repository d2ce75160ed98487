package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-advisor/internal/jobs"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [job title]",
	Short: "List job templates or show the template for a title",
	Long:  "Without arguments, list every role template. With a job title, show the template it resolves to (or the generic fallback).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplates,
}

var templatesJSON bool

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(templatesCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runTemplates(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		tmpl, matched := jobs.Resolve(args[0])
		if templatesJSON {
			return writeJSON(cmd, map[string]any{"title": args[0], "matched": matched, "template": tmpl})
		}
		if matched {
			fmt.Fprintf(out, "%q matches template %q\n", args[0], tmpl.Key)
		} else {
			fmt.Fprintf(out, "%q matches no template, using the generic fallback\n", args[0])
		}
		fmt.Fprintf(out, "Description: %s\n", tmpl.Description)
		fmt.Fprintf(out, "Skills: %s\n", strings.Join(tmpl.Skills, ", "))
		return nil
	}

	all := jobs.Templates()
	if templatesJSON {
		return writeJSON(cmd, all)
	}
	for _, tmpl := range all {
		fmt.Fprintf(out, "%-20s %s\n", tmpl.Key, strings.Join(tmpl.Skills, ", "))
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
