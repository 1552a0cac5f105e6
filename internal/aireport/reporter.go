// Package aireport asks a language model for a qualitative CV report and degrades
// gracefully when the reply is unusable.
package aireport

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"cvos-backend/internal/ats"
	"cvos-backend/internal/llm"
	"cvos-backend/internal/shared/metrics"
	"cvos-backend/internal/shared/telemetry"
)

// DefaultMaxChars bounds how much CV text is sent upstream.
const DefaultMaxChars = 8000

// FallbackSummary accompanies replies that are not valid JSON.
const FallbackSummary = "The AI produced an unstructured report."

//go:embed prompt.tmpl report.schema.json
var assets embed.FS

var (
	promptTemplate = template.Must(template.ParseFS(assets, "prompt.tmpl"))
	reportSchema   = mustLoadSchema()
)

func mustLoadSchema() *gojsonschema.Schema {
	raw, err := assets.ReadFile("report.schema.json")
	if err != nil {
		panic(fmt.Sprintf("aireport: read schema: %v", err))
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("aireport: compile schema: %v", err))
	}
	return schema
}

// Outcome classifies a Result.
type Outcome string

const (
	OutcomeReport   Outcome = "report"
	OutcomeFallback Outcome = "fallback"
	OutcomeError    Outcome = "error"
)

// Fallback wraps an unstructured model reply together with the heuristic score.
type Fallback struct {
	Score       int    `json:"score"`
	Summary     string `json:"summary"`
	RawAnalysis string `json:"raw_analysis"`
}

// Result holds exactly one of Report, Fallback or Err.
type Result struct {
	Report   json.RawMessage
	Fallback *Fallback
	Err      error
	// SchemaWarnings lists where a structured Report departs from the expected shape.
	SchemaWarnings []string
}

// Outcome reports which field of r is populated.
func (r Result) Outcome() Outcome {
	switch {
	case r.Err != nil:
		return OutcomeError
	case r.Fallback != nil:
		return OutcomeFallback
	default:
		return OutcomeReport
	}
}

// Payload returns the JSON value callers should send: the model's report unchanged,
// the fallback object, or {"error": message}.
func (r Result) Payload() any {
	switch r.Outcome() {
	case OutcomeError:
		return map[string]string{"error": r.Err.Error()}
	case OutcomeFallback:
		return r.Fallback
	default:
		return r.Report
	}
}

// Reporter builds prompts, calls the model and interprets its reply.
type Reporter struct {
	Client   llm.Client
	MaxChars int
}

// New returns a Reporter. maxChars <= 0 selects DefaultMaxChars.
func New(client llm.Client, maxChars int) *Reporter {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Reporter{Client: client, MaxChars: maxChars}
}

// Analyze never returns a Go error; upstream failures are carried in Result.Err.
func (r *Reporter) Analyze(ctx context.Context, text string) Result {
	client := r.Client
	if client == nil {
		client = llm.PlaceholderClient{}
	}

	prompt, err := BuildPrompt(Truncate(text, r.maxChars()))
	if err != nil {
		metrics.IncAIReportFailed()
		return Result{Err: err}
	}

	start := time.Now()
	reply, err := client.Complete(ctx, prompt)
	metrics.ObserveAIDurationMs(metrics.SinceMillis(start))
	if err != nil {
		metrics.IncAIReportFailed()
		return Result{Err: err}
	}

	return Interpret(reply, text)
}

// Interpret turns a raw model reply into a Result. text is the CV text the reply is about;
// it is scored heuristically only when the reply is not valid JSON.
func Interpret(reply, text string) Result {
	cleaned := CleanJSONBlock(reply)
	if !json.Valid([]byte(cleaned)) {
		metrics.IncAIReportFallback()
		return Result{Fallback: &Fallback{
			Score:       ats.Analyze(text).Score,
			Summary:     FallbackSummary,
			RawAnalysis: StripFences(reply),
		}}
	}

	metrics.IncAIReport()
	res := Result{Report: json.RawMessage(cleaned)}
	res.SchemaWarnings = checkShape(res.Report)
	if len(res.SchemaWarnings) > 0 {
		telemetry.Warn("ai_report.schema_mismatch", map[string]any{
			"warnings": res.SchemaWarnings,
		})
	}
	return res
}

// BuildPrompt renders the report prompt around text.
func BuildPrompt(text string) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, struct{ Text string }{Text: text}); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

// Truncate keeps the first max runes of text.
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	count := 0
	for i := range text {
		if count == max {
			return text[:i]
		}
		count++
	}
	return text
}

func (r *Reporter) maxChars() int {
	if r.MaxChars <= 0 {
		return DefaultMaxChars
	}
	return r.MaxChars
}

func checkShape(report json.RawMessage) []string {
	result, err := reportSchema.Validate(gojsonschema.NewBytesLoader(report))
	if err != nil {
		return []string{err.Error()}
	}
	if result.Valid() {
		return nil
	}
	out := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		out = append(out, field+": "+desc.Description())
	}
	return out
}
