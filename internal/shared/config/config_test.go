package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LLM_PROVIDER", "LLM_MODEL", "PDF_ENGINE", "AI_MAX_CHARS", "OBJECT_STORE", "MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected env dev, got %q", cfg.Env)
	}
	if cfg.LLMProvider != "gemini" || cfg.LLMModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected llm defaults: %q %q", cfg.LLMProvider, cfg.LLMModel)
	}
	if cfg.AIMaxChars != 8000 {
		t.Fatalf("expected AI_MAX_CHARS 8000, got %d", cfg.AIMaxChars)
	}
	if cfg.PDFEngine != "builtin" {
		t.Fatalf("expected builtin engine, got %q", cfg.PDFEngine)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected local store, got %q", cfg.ObjectStoreType)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected 10MB upload limit, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadS3WithoutBucketFallsBackToLocal(t *testing.T) {
	t.Setenv("OBJECT_STORE", "s3")
	t.Setenv("S3_BUCKET", "")

	cfg := Load()
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected local fallback, got %q", cfg.ObjectStoreType)
	}
}

func TestNormalizers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{name: "env prod", fn: normalizeEnv, in: " PROD ", want: "production"},
		{name: "env unknown", fn: normalizeEnv, in: "qa", want: "dev"},
		{name: "provider openai", fn: normalizeProvider, in: "OpenAI", want: "openai"},
		{name: "provider unknown", fn: normalizeProvider, in: "claude", want: "gemini"},
		{name: "engine chromium", fn: normalizeEngine, in: "chromium", want: "chrome"},
		{name: "engine empty", fn: normalizeEngine, in: "", want: "builtin"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("AI_MAX_CHARS", "lots")
	if got := getEnvInt("AI_MAX_CHARS", 8000); got != 8000 {
		t.Fatalf("expected default for invalid value, got %d", got)
	}
}
