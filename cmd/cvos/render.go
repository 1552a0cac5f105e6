package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cvos-backend/internal/render"
	"cvos-backend/internal/shared/config"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render résumé form data to a PDF",
	Long:  "Read résumé form data as JSON (a file or - for stdin) and write the PDF produced by the chosen template.",
	RunE:  runRender,
}

var (
	renderDataFile string
	renderTemplate string
	renderEngine   string
	renderOutFile  string
	renderTimeout  time.Duration
)

func init() {
	renderCmd.Flags().StringVarP(&renderDataFile, "data", "d", "", "Path to form data JSON, or - for stdin (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", render.DefaultTemplateID, "Template id")
	renderCmd.Flags().StringVar(&renderEngine, "engine", "", "PDF engine: builtin or chrome (overrides PDF_ENGINE)")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "", "Output path (default: cv_<name>.pdf)")
	renderCmd.Flags().DurationVar(&renderTimeout, "timeout", 0, "Chrome render timeout (overrides PDF_RENDER_TIMEOUT_SECONDS)")
	_ = renderCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	data, err := readFormData(cmd, renderDataFile)
	if err != nil {
		return err
	}

	cfg := config.Load()
	engine := cfg.PDFEngine
	if renderEngine != "" {
		engine = renderEngine
	}
	timeout := time.Duration(cfg.RenderTimeoutSecs) * time.Second
	if renderTimeout > 0 {
		timeout = renderTimeout
	}

	out, err := render.NewService(render.NewEngine(engine, timeout)).Render(cmd.Context(), data, renderTemplate)
	if err != nil {
		return err
	}

	path := renderOutFile
	if path == "" {
		path = out.FileName
	}
	if err := os.WriteFile(path, out.Bytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %s (template %s, %d bytes)\n", path, out.Template.ID, len(out.Bytes))
	return nil
}

func readFormData(cmd *cobra.Command, path string) (render.FormData, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return render.FormData{}, fmt.Errorf("read form data: %w", err)
	}

	var data render.FormData
	if err := json.Unmarshal(raw, &data); err != nil {
		return render.FormData{}, fmt.Errorf("parse form data: %w", err)
	}
	return data, nil
}
