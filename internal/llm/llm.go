// Package llm abstracts the text-completion providers used for qualitative CV reports.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client completes a prompt and returns the raw model text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned when no provider credentials are available.
var ErrNotConfigured = errors.New("AI service not configured")

// PlaceholderClient stands in for a provider whose credentials are missing.
type PlaceholderClient struct {
	Reason string
}

// Complete always fails with ErrNotConfigured.
func (p PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	if p.Reason == "" {
		return "", ErrNotConfigured
	}
	return "", fmt.Errorf("%w: %s", ErrNotConfigured, p.Reason)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f ClientFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
