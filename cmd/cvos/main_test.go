package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/spf13/cobra"
)

func writePDF(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 11)
	doc.AddPage()
	for _, line := range lines {
		doc.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	path := filepath.Join(dir, name)
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	return path
}

func TestAnalyzeFilesKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := writePDF(t, dir, "a.pdf", "Experience", "Education")
	missing := filepath.Join(dir, "missing.pdf")
	last := writePDF(t, dir, "c.pdf", "Skills")

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	results, failed := analyzeFiles(cmd, []string{first, missing, last}, 2)

	if failed != 1 {
		t.Fatalf("expected 1 failure, got %d", failed)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].File != first || results[0].Report == nil {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].File != missing || results[1].Error == "" {
		t.Fatalf("expected error for missing file, got %+v", results[1])
	}
	if results[2].File != last || results[2].Report == nil {
		t.Fatalf("unexpected last result: %+v", results[2])
	}
}

func TestTemplatesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runTemplates(cmd, nil); err != nil {
		t.Fatalf("templates: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 templates, got %q", out.String())
	}
	if !strings.HasPrefix(lines[1], "classic") || !strings.HasSuffix(lines[1], "yes") {
		t.Fatalf("expected classic as default first row, got %q", lines[1])
	}
}

func TestReadFormDataFromStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(`{"fullName": "Test User", "skills": ["Go"]}`))

	data, err := readFormData(cmd, "-")
	if err != nil {
		t.Fatalf("read form data: %v", err)
	}
	if data.FullName != "Test User" || len(data.Skills) != 1 {
		t.Fatalf("unexpected form data: %+v", data)
	}

	if _, err := readFormData(cmd, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
