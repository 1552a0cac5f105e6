package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cvos-backend/internal/aireport"
	"cvos-backend/internal/bootstrap"
	"cvos-backend/internal/extract"
	"cvos-backend/internal/shared/config"
)

var aiCmd = &cobra.Command{
	Use:   "ai FILE",
	Short: "Ask the configured AI provider for a qualitative CV report",
	Long:  "Extract the PDF text and print the AI report, the unstructured fallback, or {\"error\": ...} as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAI,
}

var (
	aiProvider string
	aiModel    string
	aiPretty   bool
)

func init() {
	aiCmd.Flags().StringVar(&aiProvider, "provider", "", "LLM provider: gemini or openai (overrides LLM_PROVIDER)")
	aiCmd.Flags().StringVar(&aiModel, "model", "", "Model name (overrides LLM_MODEL)")
	aiCmd.Flags().BoolVar(&aiPretty, "pretty", false, "Indent JSON output")

	rootCmd.AddCommand(aiCmd)
}

func runAI(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if p := strings.TrimSpace(aiProvider); p != "" {
		cfg.LLMProvider = strings.ToLower(p)
		if aiModel == "" {
			cfg.LLMModel = config.DefaultModel(cfg.LLMProvider)
		}
	}
	if aiModel != "" {
		cfg.LLMModel = aiModel
	}

	ctx := cmd.Context()
	doc, err := extract.FromFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("extract %s: %w", args[0], err)
	}

	reporter := aireport.New(bootstrap.BuildLLM(ctx, cfg), cfg.AIMaxChars)
	res := reporter.Analyze(ctx, doc.Text)
	return writeJSON(cmd.OutOrStdout(), res.Payload(), aiPretty)
}
