package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/enhance"
	"resume-editor/internal/health"
	"resume-editor/internal/resumes"
	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/server"
	"resume-editor/internal/shared/server/middleware"
	"resume-editor/internal/shared/storage/db"
	localstore "resume-editor/internal/shared/storage/object/local"
	s3store "resume-editor/internal/shared/storage/object/s3"
	"resume-editor/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Durable        resumes.Durable
	Store          *resumes.Store
	EnhanceService *enhance.Service
	EnhanceHandler *enhance.Handler
	ResumeHandler  *resumes.Handler
	HealthHandler  *health.Handler
}

// Build validates cfg and wires the durable backend, services, handlers and router.
func Build(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx := context.Background()

	app := &App{Config: cfg}
	durable, err := buildDurable(ctx, app)
	if err != nil {
		return nil, err
	}
	app.Durable = durable

	app.EnhanceService = BuildEnhanceService(cfg)
	app.Store = resumes.NewStore(durable)
	app.EnhanceHandler = enhance.NewHandler(app.EnhanceService)
	app.ResumeHandler = resumes.NewHandler(app.Store)
	app.HealthHandler = health.NewHandler(health.NewService(app.Store))

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		EnhanceHandler: app.EnhanceHandler,
		ResumeHandler:  app.ResumeHandler,
		HealthHandler:  app.HealthHandler,
		EnhanceLimiter: middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// BuildEnhanceService picks a seeded chooser when ENHANCE_SEED is set.
func BuildEnhanceService(cfg config.Config) *enhance.Service {
	chooser := enhance.DefaultChooser
	if cfg.EnhanceSeed != 0 {
		chooser = enhance.NewRandChooser(cfg.EnhanceSeed)
	}
	return enhance.NewService(chooser, cfg.EnhanceDelay)
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDurable(ctx context.Context, app *App) (resumes.Durable, error) {
	cfg := app.Config
	switch cfg.DurableStore {
	case config.DurableS3:
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: s3 store: %w", err)
		}
		telemetry.Info("bootstrap.durable", map[string]any{"backend": cfg.DurableStore, "bucket": cfg.S3Bucket})
		return resumes.NewObjectDurable(store), nil
	case config.DurablePostgres:
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		app.DB = sqlDB
		telemetry.Info("bootstrap.durable", map[string]any{"backend": cfg.DurableStore})
		return &resumes.PGDurable{DB: sqlDB}, nil
	case config.DurableMemory:
		telemetry.Warn("bootstrap.durable", map[string]any{"backend": cfg.DurableStore, "note": "saved resumes are not persisted"})
		return resumes.NopDurable{}, nil
	default:
		telemetry.Info("bootstrap.durable", map[string]any{"backend": config.DurableLocal, "dir": cfg.LocalStoreDir})
		return resumes.NewObjectDurable(localstore.New(cfg.LocalStoreDir)), nil
	}
}
