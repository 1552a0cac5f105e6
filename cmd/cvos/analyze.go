package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cvos-backend/internal/ats"
	"cvos-backend/internal/extract"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Score PDF CVs with the ATS heuristics",
	Long:  "Extract the text of each PDF and print its ATS report as JSON. Files are processed concurrently; output keeps argument order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeConcurrency int
	analyzePretty      bool
)

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeConcurrency, "concurrency", "c", 4, "Maximum number of files analyzed at once")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Indent JSON output")

	rootCmd.AddCommand(analyzeCmd)
}

type fileReport struct {
	File   string      `json:"file"`
	Report *ats.Report `json:"report,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	results, failed := analyzeFiles(cmd, args, analyzeConcurrency)
	if err := writeJSON(cmd.OutOrStdout(), results, analyzePretty); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be analyzed", failed, len(args))
	}
	return nil
}

func analyzeFiles(cmd *cobra.Command, paths []string, concurrency int) ([]fileReport, int) {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]fileReport, len(paths))

	g, gCtx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			doc, err := extract.FromFile(gCtx, path)
			if err != nil {
				// One unreadable file must not cancel the others.
				results[i] = fileReport{File: path, Error: err.Error()}
				return nil
			}
			report := ats.AnalyzeDocument(doc.Text, doc.Pages)
			results[i] = fileReport{File: path, Report: &report}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	return results, failed
}
