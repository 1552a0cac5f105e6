// Package main provides the cvos command line: local CV analysis, rendering and the API server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cvos-backend/internal/shared/config"
	"cvos-backend/internal/shared/telemetry"
)

var rootCmd = &cobra.Command{
	Use:     "cvos",
	Short:   "cvOS CV analysis and generation tools",
	Long:    "cvos scores CVs against ATS heuristics, asks an AI model for a qualitative report, renders résumé PDFs and runs the HTTP API.",
	Version: config.ServiceVersion,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Keep stdout for command output.
		telemetry.SetOutput(cmd.ErrOrStderr())
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
