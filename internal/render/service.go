// Package render turns résumé form data into PDF documents through a fixed
// registry of HTML templates.
package render

import (
	"context"
	"fmt"
	"time"

	"cvos-backend/internal/shared/metrics"
	"cvos-backend/internal/shared/telemetry"
	"cvos-backend/internal/shared/util"
)

// Output is a rendered document.
type Output struct {
	Bytes    []byte
	Template Template
	FileName string
}

// Service renders FormData with a PDF engine.
type Service struct {
	engine Engine
}

// NewService returns a Service. A nil engine selects BuiltinEngine.
func NewService(engine Engine) *Service {
	if engine == nil {
		engine = BuiltinEngine{}
	}
	return &Service{engine: engine}
}

// Render validates data, fills the template named by templateID (falling back to
// the default template) and converts it to PDF.
func (s *Service) Render(ctx context.Context, data FormData, templateID string) (Output, error) {
	data = data.Normalize()
	if err := data.Validate(); err != nil {
		return Output{}, err
	}

	tpl, ok := Lookup(templateID)
	if !ok && templateID != "" {
		telemetry.Info("render.template_fallback", map[string]any{
			"requested": templateID,
			"template":  tpl.ID,
		})
	}

	html, err := RenderHTML(tpl, data)
	if err != nil {
		metrics.IncRenderFailed()
		return Output{}, err
	}

	start := time.Now()
	pdf, err := s.engine.RenderHTMLToPDF(ctx, html)
	metrics.ObserveRenderDurationMs(metrics.SinceMillis(start))
	if err != nil {
		metrics.IncRenderFailed()
		return Output{}, fmt.Errorf("render %s: %w", tpl.ID, err)
	}
	metrics.IncRenderCompleted()

	return Output{
		Bytes:    pdf,
		Template: tpl,
		FileName: FileName(data.FullName),
	}, nil
}

// FileName returns the download name for a résumé owner, e.g. "cv_jane_doe.pdf".
func FileName(fullName string) string {
	return "cv_" + util.Slug(fullName, "resume") + ".pdf"
}
