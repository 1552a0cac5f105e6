package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"join":        joinNonEmpty,
	"contactLine": contactLine,
}).ParseFS(templateFS, "templates/*.html"))

// RenderHTML fills the template's HTML resource with data.
func RenderHTML(t Template, data FormData) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, path.Base(t.File), data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", t.ID, err)
	}
	return buf.String(), nil
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func contactLine(data FormData) string {
	return joinNonEmpty(" | ", data.Email, data.Phone, data.Location, data.LinkedIn, data.Website)
}
