package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"cvos-backend/internal/analyses"
	"cvos-backend/internal/resumes"
	"cvos-backend/internal/services/health"
	"cvos-backend/internal/shared/config"
	"cvos-backend/internal/shared/metrics"
	"cvos-backend/internal/shared/server/middleware"
	"cvos-backend/internal/shared/server/respond"
)

const (
	rateGroupDefault = "DEFAULT"
	rateGroupAI      = "AI"
	rateGroupNone    = "NONE"
)

// RouterDeps holds handlers required by the router.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	ResumeHandler   *resumes.Handler
	Health          *health.Service
	// Limiter is shared across rebuilds in tests; nil creates a fresh one.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.ClientKey(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
			Limiter:      deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				rateGroupDefault: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
				rateGroupAI:      {Rate: cfg.AIRateLimitRPS, Burst: cfg.AIRateLimitBurst},
			},
		}),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(config.ServiceName, config.ServiceVersion)
	}
	r.GET("/", func(c *gin.Context) {
		respond.OK(c, healthSvc.Root())
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(r)
		deps.AnalysisHandler.RegisterAIRoutes(r)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(r)
	}

	return r
}

func rateGroupFor(c *gin.Context) string {
	switch c.FullPath() {
	case "/analyze-with-ai":
		return rateGroupAI
	case "/", "/health", "/metrics":
		return rateGroupNone
	default:
		return rateGroupDefault
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
