package analyses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvos-backend/internal/documents"
	"cvos-backend/internal/extract"
	"cvos-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc  *Service
	Docs *documents.Handler
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docs *documents.Handler) *Handler {
	return &Handler{Svc: svc, Docs: docs}
}

// RegisterRoutes attaches the heuristic analysis route.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/analyze", h.analyze)
}

// RegisterAIRoutes attaches the AI analysis route, usually behind a stricter limiter.
func (h *Handler) RegisterAIRoutes(rg gin.IRoutes) {
	rg.POST("/analyze-with-ai", h.analyzeWithAI)
}

func (h *Handler) analyze(c *gin.Context) {
	text, ok := h.ingest(c)
	if !ok {
		return
	}

	report := h.Svc.Score(text)
	c.Set("score", report.Score)
	respond.OK(c, report)
}

func (h *Handler) analyzeWithAI(c *gin.Context) {
	text, ok := h.ingest(c)
	if !ok {
		return
	}

	res := h.Svc.Report(c.Request.Context(), text)
	c.Set("ai_outcome", string(res.Outcome()))
	// Upstream failures are reported in the body; the request itself succeeded.
	respond.OK(c, res.Payload())
}

// ingest stages the upload, extracts it and removes the staged copy on every path.
func (h *Handler) ingest(c *gin.Context) (extract.Document, bool) {
	doc, ok := h.Docs.Stage(c)
	if !ok {
		return extract.Document{}, false
	}
	defer h.Docs.Svc.Discard(c.Request.Context(), doc)

	text, err := h.Svc.Ingest(c.Request.Context(), doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeExtraction, "could not read text from the PDF", gin.H{"cause": err.Error()})
		return extract.Document{}, false
	}
	c.Set("page_count", text.Pages)
	return text, true
}
