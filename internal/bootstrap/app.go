package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"cv-builder/internal/cvs"
	"cv-builder/internal/render"
	"cv-builder/internal/shared/config"
	"cv-builder/internal/shared/server"
	"cv-builder/internal/shared/session"
	"cv-builder/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Sessions      session.Store
	Repo          cvs.Repo
	Engine        render.Engine
	Renderer      *render.Renderer
	CVService     *cvs.Service
	CVHandler     *cvs.Handler
	RenderHandler *render.Handler
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

	sessions, err := buildSessions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Sessions: sessions,
		Engine:   buildEngine(cfg),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		CVHandler:     app.CVHandler,
		RenderHandler: app.RenderHandler,
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildSessions(ctx context.Context, cfg config.Config) (session.Store, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		if !isDevLike(cfg.Env) {
			log.Printf("bootstrap: REDIS_URL empty; drafts are process-local")
		}
		return session.NewMemoryStore(cfg.DraftTTL), nil
	}
	store, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.DraftTTL)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: redis connect failed; using in-memory session store: %v", err)
			return session.NewMemoryStore(cfg.DraftTTL), nil
		}
		return nil, err
	}
	return store, nil
}

func buildEngine(cfg config.Config) render.Engine {
	switch cfg.RenderEngine {
	case "html":
		return render.HTMLEngine{}
	default:
		return render.NewChromeEngine(cfg.ChromePath)
	}
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.Repo = &cvs.PGRepo{DB: app.DB}
	} else {
		app.Repo = cvs.NewMemoryRepo()
	}

	app.CVService = &cvs.Service{
		Repo:   app.Repo,
		Drafts: cvs.NewDraftStore(app.Sessions),
	}

	renderer, err := render.NewRenderer(app.Engine)
	if err != nil {
		return err
	}
	app.Renderer = renderer

	app.CVHandler = cvs.NewHandler(app.CVService)
	app.RenderHandler = render.NewHandler(app.CVService, renderer)
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
