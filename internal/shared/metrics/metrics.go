package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	analysisCompletedTotal atomic.Uint64
	analysisFailedTotal    atomic.Uint64

	aiReportsTotal         atomic.Uint64
	aiReportFallbacksTotal atomic.Uint64
	aiReportFailedTotal    atomic.Uint64

	renderCompletedTotal atomic.Uint64
	renderFailedTotal    atomic.Uint64

	scoreBuckets = newLabeledCounter()

	analysisDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500})
	aiDuration       = newHistogram([]float64{500, 1000, 2000, 5000, 10000, 30000, 60000})
	renderDuration   = newHistogram([]float64{50, 100, 250, 500, 1000, 2500, 5000, 10000})
)

// IncAnalysisCompleted increments the completed counter and records the score band.
func IncAnalysisCompleted(band string) {
	analysisCompletedTotal.Add(1)
	if band != "" {
		scoreBuckets.Inc(band)
	}
}

// IncAnalysisFailed increments the failed counter.
func IncAnalysisFailed() {
	analysisFailedTotal.Add(1)
}

// ObserveAnalysisDurationMs records a heuristic analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	analysisDuration.Observe(clamp(value))
}

// IncAIReport counts a structured AI report.
func IncAIReport() {
	aiReportsTotal.Add(1)
}

// IncAIReportFallback counts an AI reply that could not be parsed as JSON.
func IncAIReportFallback() {
	aiReportFallbacksTotal.Add(1)
}

// IncAIReportFailed counts a failed AI call.
func IncAIReportFailed() {
	aiReportFailedTotal.Add(1)
}

// ObserveAIDurationMs records an AI call duration in milliseconds.
func ObserveAIDurationMs(value float64) {
	aiDuration.Observe(clamp(value))
}

// IncRenderCompleted increments the rendered PDF counter.
func IncRenderCompleted() {
	renderCompletedTotal.Add(1)
}

// IncRenderFailed increments the failed render counter.
func IncRenderFailed() {
	renderFailedTotal.Add(1)
}

// ObserveRenderDurationMs records a render duration in milliseconds.
func ObserveRenderDurationMs(value float64) {
	renderDuration.Observe(clamp(value))
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analysis_completed_total", "Total ATS analyses completed", analysisCompletedTotal.Load())
	writeCounter(&buf, "analysis_failed_total", "Total ATS analyses failed", analysisFailedTotal.Load())
	writeLabeledCounter(&buf, "analysis_score_band_total", "ATS analyses by score band", "band", scoreBuckets.Snapshot())
	writeHistogram(&buf, "analysis_duration_ms", "ATS analysis duration in milliseconds", analysisDuration.Snapshot())
	writeCounter(&buf, "ai_report_total", "Structured AI reports returned", aiReportsTotal.Load())
	writeCounter(&buf, "ai_report_fallback_total", "Unstructured AI replies wrapped in a fallback", aiReportFallbacksTotal.Load())
	writeCounter(&buf, "ai_report_failed_total", "AI report calls that failed", aiReportFailedTotal.Load())
	writeHistogram(&buf, "ai_report_duration_ms", "AI report duration in milliseconds", aiDuration.Snapshot())
	writeCounter(&buf, "render_completed_total", "PDFs rendered", renderCompletedTotal.Load())
	writeCounter(&buf, "render_failed_total", "PDF renders failed", renderFailedTotal.Load())
	writeHistogram(&buf, "render_duration_ms", "PDF render duration in milliseconds", renderDuration.Snapshot())
	return buf.String()
}

type labeledCounter struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func newLabeledCounter() *labeledCounter {
	return &labeledCounter{counts: map[string]uint64{}}
}

func (l *labeledCounter) Inc(label string) {
	l.mu.Lock()
	l.counts[label]++
	l.mu.Unlock()
}

func (l *labeledCounter) Snapshot() map[string]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]uint64, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe stores the value in its first matching bucket; writeHistogram accumulates.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeLabeledCounter(buf *bytes.Buffer, name, help, label string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s=%q} %d\n", name, label, k, values[k])
	}
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

// SinceMillis returns the milliseconds elapsed since start.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
