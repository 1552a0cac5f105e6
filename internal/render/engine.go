package render

import (
	"context"
	"time"
)

// Engine converts a rendered HTML document to PDF bytes.
type Engine interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

const (
	EngineBuiltin = "builtin"
	EngineChrome  = "chrome"
)

// NewEngine returns the engine registered under name, defaulting to the builtin one.
// timeout bounds a single chrome conversion.
func NewEngine(name string, timeout time.Duration) Engine {
	if name == EngineChrome {
		return &ChromeEngine{Timeout: timeout}
	}
	return BuiltinEngine{}
}
