package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/data/db"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type App struct {
	Log    *logger.Logger
	DB     *gorm.DB
	Router *gin.Engine
	Cfg    Config
	Repos  Repos
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	// Memory mode keeps readings in process and backs the registry with
	// in-process sqlite, so development runs need no postgres instance.
	var theDB *gorm.DB
	if cfg.ReadingBackend == "memory" {
		sq, err := db.NewSqliteService(log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
		if err := sq.AutoMigrateAll(); err != nil {
			log.Sync()
			return nil, fmt.Errorf("sqlite automigrate: %w", err)
		}
		theDB = sq.DB()
	} else {
		pg, err := db.NewPostgresService(log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		if err := pg.AutoMigrateAll(); err != nil {
			log.Sync()
			return nil, fmt.Errorf("postgres automigrate: %w", err)
		}
		theDB = pg.DB()
	}

	reposet := wireRepos(theDB, log, cfg)
	handlerset := wireHandlers(log, reposet)
	mw := wireMiddleware(log)
	router := wireRouter(cfg, handlerset, mw)

	return &App{
		Log:    log,
		DB:     theDB,
		Router: router,
		Cfg:    cfg,
		Repos:  reposet,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
