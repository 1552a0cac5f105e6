package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	ServiceName    = "cvOS Backend"
	ServiceVersion = "1.0.0"
)

// Config holds application configuration.
type Config struct {
	Port              string
	Env               string
	CORSAllowOrigin   []string
	ObjectStoreType   string
	LocalStoreDir     string
	AWSRegion         string
	S3Bucket          string
	S3Prefix          string
	SSEKMSKeyID       string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretKey       string
	LLMProvider       string
	LLMModel          string
	GoogleAPIKey      string
	OpenAIAPIKey      string
	AIMaxChars        int
	AITimeoutSeconds  int
	PDFEngine         string
	RenderTimeoutSecs int
	MaxUploadBytes    int64
	RateLimitRPS      float64
	RateLimitBurst    int
	AIRateLimitRPS    float64
	AIRateLimitBurst  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	provider := normalizeProvider(getEnv("LLM_PROVIDER", "gemini"))

	cfg := Config{
		Port:              getEnv("PORT", "8000"),
		Env:               env,
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,https://cv.raido.com.co,https://cv-raido.com.co")),
		ObjectStoreType:   normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:     getEnv("LOCAL_STORE_DIR", filepath.Join(os.TempDir(), "cvos-uploads")),
		AWSRegion:         getEnv("AWS_REGION", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Prefix:          getEnv("S3_PREFIX", "uploads/"),
		SSEKMSKeyID:       getEnv("SSE_KMS_KEY_ID", ""),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:       getEnv("S3_SECRET_ACCESS_KEY", ""),
		LLMProvider:       provider,
		LLMModel:          getEnv("LLM_MODEL", DefaultModel(provider)),
		GoogleAPIKey:      getEnv("GOOGLE_API_KEY", ""),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		AIMaxChars:        getEnvInt("AI_MAX_CHARS", 8000),
		AITimeoutSeconds:  getEnvInt("AI_TIMEOUT_SECONDS", 60),
		PDFEngine:         normalizeEngine(getEnv("PDF_ENGINE", "builtin")),
		RenderTimeoutSecs: getEnvInt("PDF_RENDER_TIMEOUT_SECONDS", 30),
		MaxUploadBytes:    int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 20),
		AIRateLimitRPS:    getEnvFloat("AI_RATE_LIMIT_RPS", 0.2),
		AIRateLimitBurst:  getEnvInt("AI_RATE_LIMIT_BURST", 3),
	}

	if cfg.ObjectStoreType == "s3" && cfg.S3Bucket == "" {
		log.Printf("OBJECT_STORE=s3 requires S3_BUCKET; falling back to local staging")
		cfg.ObjectStoreType = "local"
	}

	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		log.Printf("ignoring invalid %s=%q", key, raw)
		return def
	}
	return parsed
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		log.Printf("ignoring invalid %s=%q", key, raw)
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	default:
		return "gemini"
	}
}

func normalizeEngine(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "chrome", "chromium":
		return "chrome"
	default:
		return "builtin"
	}
}

// DefaultModel is the model used when LLM_MODEL is unset.
func DefaultModel(provider string) string {
	if provider == "gemini" {
		return "gemini-2.5-flash"
	}
	// OpenAI has no implicit default; the client refuses to start without LLM_MODEL.
	return ""
}
