// Package resumes serves PDF résumé generation from form data.
package resumes

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cvos-backend/internal/render"
	"cvos-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the renderer.
type Handler struct {
	Renderer *render.Service
}

// NewHandler constructs a Handler.
func NewHandler(renderer *render.Service) *Handler {
	return &Handler{Renderer: renderer}
}

// RegisterRoutes attaches résumé routes.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/generate-pdf", h.generate)
	rg.GET("/templates", h.templates)
}

type generateRequest struct {
	render.FormData
	Template string `json:"template"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", gin.H{"cause": err.Error()})
		return
	}

	templateID := strings.TrimSpace(req.Template)
	if templateID == "" {
		templateID = strings.TrimSpace(c.Query("template"))
	}

	out, err := h.Renderer.Render(c.Request.Context(), req.FormData, templateID)
	if err != nil {
		var verr *render.ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Error(), verr.Fields)
		case errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusGatewayTimeout, "render_timeout", "PDF rendering timed out", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to generate PDF", gin.H{"cause": err.Error()})
		}
		return
	}

	c.Set("template", out.Template.ID)
	respond.PDF(c, out.FileName, out.Bytes)
}

func (h *Handler) templates(c *gin.Context) {
	respond.OK(c, render.Templates())
}
