// Package provider selects and builds the configured llm.Client.
package provider

import (
	"context"
	"strings"
	"time"

	"cvos-backend/internal/llm"
	"cvos-backend/internal/llm/gemini"
	"cvos-backend/internal/llm/openai"
	"cvos-backend/internal/shared/telemetry"
)

// Options selects a provider and carries its credentials.
type Options struct {
	Provider     string
	Model        string
	GoogleAPIKey string
	OpenAIAPIKey string
	Timeout      time.Duration
}

// New returns a retrying client for the configured provider. Missing credentials or a
// provider that fails to initialise yield a placeholder that reports llm.ErrNotConfigured.
func New(ctx context.Context, opts Options) llm.Client {
	var (
		client llm.Client
		err    error
	)
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "openai":
		if strings.TrimSpace(opts.OpenAIAPIKey) == "" {
			return placeholder("openai", "OPENAI_API_KEY not set")
		}
		client, err = openai.NewClient(opts.OpenAIAPIKey, opts.Model, opts.Timeout)
	default:
		if strings.TrimSpace(opts.GoogleAPIKey) == "" {
			return placeholder("gemini", "GOOGLE_API_KEY not set")
		}
		client, err = gemini.NewClient(ctx, gemini.Options{
			APIKey:      opts.GoogleAPIKey,
			Model:       opts.Model,
			Temperature: 0.1,
			Timeout:     opts.Timeout,
		})
	}
	if err != nil {
		return placeholder(opts.Provider, err.Error())
	}
	return llm.WithRetry(client, llm.DefaultRetryDelay)
}

func placeholder(provider, reason string) llm.Client {
	telemetry.Warn("llm.disabled", map[string]any{
		"provider": provider,
		"reason":   reason,
	})
	return llm.PlaceholderClient{Reason: reason}
}
