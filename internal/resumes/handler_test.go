package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cvos-backend/internal/render"
	"cvos-backend/internal/shared/telemetry"
)

type stubEngine struct {
	html string
	err  error
}

func (s *stubEngine) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	s.html = html
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.4 stub"), nil
}

func newRouter(t *testing.T, engine render.Engine) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	restore := telemetry.SetOutput(io.Discard)
	t.Cleanup(restore)

	r := gin.New()
	NewHandler(render.NewService(engine)).RegisterRoutes(r)
	return r
}

func post(r *gin.Engine, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGeneratePDF(t *testing.T) {
	engine := &stubEngine{}
	r := newRouter(t, engine)

	resp := post(r, "/generate-pdf", `{"fullName": "Ana María López", "skills": "Go, SQL", "certifications": ["CKA"], "template": "modern"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="cv_ana_maria_lopez.pdf"` {
		t.Fatalf("unexpected Content-Disposition %q", cd)
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected pdf bytes")
	}
	if !strings.Contains(engine.html, "data-accent=\"#0f766e\"") {
		t.Fatalf("expected modern template to be rendered")
	}
}

func TestGeneratePDFTemplateSelection(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		marker string
	}{
		{name: "query param", target: "/generate-pdf?template=executive", body: `{"fullName": "Jane", "summary": "x"}`, marker: "Executive Summary"},
		{name: "body wins over query", target: "/generate-pdf?template=executive", body: `{"fullName": "Jane", "summary": "x", "template": "minimal"}`, marker: "data-accent=\"#555555\""},
		{name: "unknown falls back", target: "/generate-pdf", body: `{"fullName": "Jane", "summary": "x", "template": "neon"}`, marker: "Professional Summary"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			engine := &stubEngine{}
			r := newRouter(t, engine)
			resp := post(r, tt.target, tt.body)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
			}
			if !strings.Contains(engine.html, tt.marker) {
				t.Fatalf("expected rendered html to contain %q", tt.marker)
			}
		})
	}
}

func TestGeneratePDFValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "malformed json", body: `{"fullName":`},
		{name: "missing name", body: `{"email": "jane@example.com"}`, field: "fullName"},
		{name: "bad email", body: `{"fullName": "Jane", "email": "nope"}`, field: "email"},
		{name: "bad skills shape", body: `{"fullName": "Jane", "skills": {"a": 1}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, &stubEngine{})
			resp := post(r, "/generate-pdf", tt.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
			}
			var payload struct {
				Error struct {
					Code    string         `json:"code"`
					Details map[string]any `json:"details"`
				} `json:"error"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if payload.Error.Code != "validation_error" {
				t.Fatalf("expected validation_error, got %s", payload.Error.Code)
			}
			if tt.field != "" {
				if _, ok := payload.Error.Details[tt.field]; !ok {
					t.Fatalf("expected details to name %s, got %v", tt.field, payload.Error.Details)
				}
			}
		})
	}
}

func TestGeneratePDFEngineErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "failure", err: errors.New("boom"), status: http.StatusInternalServerError},
		{name: "timeout", err: context.DeadlineExceeded, status: http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, &stubEngine{err: tt.err})
			resp := post(r, "/generate-pdf", `{"fullName": "Jane"}`)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestTemplates(t *testing.T) {
	r := newRouter(t, &stubEngine{})
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var list []struct {
		ID      string `json:"id"`
		Tier    string `json:"tier"`
		Default bool   `json:"default"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 4 || list[0].ID != "classic" || !list[0].Default || list[0].Tier != "free" {
		t.Fatalf("unexpected registry listing: %+v", list)
	}
}
