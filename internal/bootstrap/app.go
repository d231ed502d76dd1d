package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/catalog"
	"compliance-backend/internal/certificates"
	"compliance-backend/internal/insights"
	openaiinsights "compliance-backend/internal/insights/openai"
	"compliance-backend/internal/recommendations"
	"compliance-backend/internal/shared/config"
	"compliance-backend/internal/shared/server"
	"compliance-backend/internal/shared/storage/db"
	"compliance-backend/internal/trainings"
	"compliance-backend/internal/workforce"
)

// App holds shared dependencies.
type App struct {
	Config                config.Config
	Router                *gin.Engine
	DB                    *sql.DB
	WorkforceRepo         workforce.Repo
	CertificatesRepo      certificates.Repo
	SessionsRepo          trainings.SessionsRepo
	ProcessedDocsRepo     trainings.ProcessedDocsRepo
	Catalog               catalog.Catalog
	NarrativeProvider     insights.Provider
	RecommendationService *recommendations.Service
	RecommendationHandler *recommendations.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if sqlDB != nil {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Catalog: catalog.Default(),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                app.Config,
		RecommendationHandler: app.RecommendationHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.WorkforceRepo = &workforce.PGRepo{DB: app.DB}
		app.CertificatesRepo = &certificates.PGRepo{DB: app.DB}
		app.SessionsRepo = &trainings.PGSessionsRepo{DB: app.DB}
		app.ProcessedDocsRepo = &trainings.PGProcessedDocsRepo{DB: app.DB}
	} else {
		app.WorkforceRepo = workforce.NewMemoryRepo()
		app.CertificatesRepo = certificates.NewMemoryRepo()
		app.SessionsRepo = trainings.NewMemorySessionsRepo()
		app.ProcessedDocsRepo = trainings.NewMemoryProcessedDocsRepo()
	}

	timeout := time.Duration(app.Config.InsightsTimeoutSeconds) * time.Second

	provider := insights.Provider(insights.NoopProvider{})
	if app.Config.LLMProvider == "openai" {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if strings.TrimSpace(apiKey) != "" && strings.TrimSpace(app.Config.LLMModel) != "" {
			client, err := openaiinsights.NewClient(apiKey, app.Config.LLMModel, timeout)
			if err != nil {
				return err
			}
			provider = client
		} else {
			log.Printf("bootstrap: OpenAI narrative provider not configured; using fallback narrative")
		}
	}

	app.NarrativeProvider = provider
	app.RecommendationService = &recommendations.Service{
		Members:          app.WorkforceRepo,
		Certificates:     app.CertificatesRepo,
		Sessions:         app.SessionsRepo,
		Documents:        app.ProcessedDocsRepo,
		Catalog:          app.Catalog,
		Narrative:        provider,
		NarrativeTimeout: timeout,
	}
	app.RecommendationHandler = recommendations.NewHandler(app.RecommendationService)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
