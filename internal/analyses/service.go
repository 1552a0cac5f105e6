// Package analyses serves heuristic and AI-assisted CV analyses over uploaded PDFs.
package analyses

import (
	"context"
	"fmt"
	"time"

	"cvos-backend/internal/aireport"
	"cvos-backend/internal/ats"
	"cvos-backend/internal/documents"
	"cvos-backend/internal/extract"
	"cvos-backend/internal/shared/metrics"
	"cvos-backend/internal/shared/telemetry"
)

// Service contains business logic for analyses.
type Service struct {
	Docs     *documents.Service
	Reporter *aireport.Reporter
}

// Ingest extracts the staged document once; both the heuristic and the AI
// analysis consume its result.
func (s *Service) Ingest(ctx context.Context, doc documents.Document) (extract.Document, error) {
	text, err := s.Docs.Text(ctx, doc)
	if err != nil {
		metrics.IncAnalysisFailed()
		return extract.Document{}, fmt.Errorf("ingest %s: %w", doc.FileName, err)
	}
	return text, nil
}

// Score runs the heuristic scorer over extracted text.
func (s *Service) Score(text extract.Document) ats.Report {
	start := time.Now()
	report := ats.AnalyzeDocument(text.Text, text.Pages)
	metrics.ObserveAnalysisDurationMs(metrics.SinceMillis(start))
	metrics.IncAnalysisCompleted(string(report.Band()))
	return report
}

// Report asks the AI reporter about extracted text. It never fails; the
// outcome is carried in the result.
func (s *Service) Report(ctx context.Context, text extract.Document) aireport.Result {
	reporter := s.Reporter
	if reporter == nil {
		reporter = aireport.New(nil, 0)
	}
	res := reporter.Analyze(ctx, text.Text)
	if res.Outcome() == aireport.OutcomeError {
		telemetry.Warn("analysis.ai_failed", map[string]any{
			"error": res.Err,
		})
	}
	return res
}
