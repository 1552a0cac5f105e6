package bootstrap

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cvos-backend/internal/aireport"
	"cvos-backend/internal/analyses"
	"cvos-backend/internal/documents"
	"cvos-backend/internal/llm"
	"cvos-backend/internal/llm/provider"
	"cvos-backend/internal/render"
	"cvos-backend/internal/resumes"
	"cvos-backend/internal/services/health"
	"cvos-backend/internal/shared/config"
	"cvos-backend/internal/shared/server"
	"cvos-backend/internal/shared/storage/object"
	localstore "cvos-backend/internal/shared/storage/object/local"
	s3store "cvos-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Store            object.ObjectStore
	LLM              llm.Client
	Reporter         *aireport.Reporter
	Renderer         *render.Service
	DocumentsService *documents.Service
	AnalysesService  *analyses.Service
	DocumentsHandler *documents.Handler
	AnalysisHandler  *analyses.Handler
	ResumeHandler    *resumes.Handler
	Health           *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		Store:  store,
		LLM:    BuildLLM(ctx, cfg),
		Health: health.NewService(config.ServiceName, config.ServiceVersion),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		ResumeHandler:   app.ResumeHandler,
		Health:          app.Health,
	})

	return app, nil
}

// BuildLLM returns the configured provider client; without credentials it is a
// placeholder that reports the AI service as not configured.
func BuildLLM(ctx context.Context, cfg config.Config) llm.Client {
	return provider.New(ctx, provider.Options{
		Provider:     cfg.LLMProvider,
		Model:        cfg.LLMModel,
		GoogleAPIKey: cfg.GoogleAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		Timeout:      seconds(cfg.AITimeoutSeconds),
	})
}

// BuildRenderer returns a render service backed by the configured PDF engine.
func BuildRenderer(cfg config.Config) *render.Service {
	return render.NewService(render.NewEngine(cfg.PDFEngine, seconds(cfg.RenderTimeoutSecs)))
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, s3store.Options{
			Region:          cfg.AWSRegion,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			KMSKeyID:        cfg.SSEKMSKeyID,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
		})
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) error {
	docSvc := &documents.Service{Store: app.Store}
	reporter := aireport.New(app.LLM, app.Config.AIMaxChars)
	analysisSvc := &analyses.Service{Docs: docSvc, Reporter: reporter}
	renderer := BuildRenderer(app.Config)

	app.Reporter = reporter
	app.Renderer = renderer
	app.DocumentsService = docSvc
	app.AnalysesService = analysisSvc
	app.DocumentsHandler = documents.NewHandler(docSvc, app.Config.MaxUploadBytes)
	app.AnalysisHandler = analyses.NewHandler(analysisSvc, app.DocumentsHandler)
	app.ResumeHandler = resumes.NewHandler(renderer)

	if app.DocumentsHandler == nil || app.AnalysisHandler == nil || app.ResumeHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	log.Printf("bootstrap: store=%s llm=%s pdf_engine=%s", app.Config.ObjectStoreType, app.Config.LLMProvider, app.Config.PDFEngine)
	return nil
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
