package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"eventbook/internal/config"
	"eventbook/internal/platform/sqlite"
)

// App owns the process-wide resources: configuration, the store handle and
// the logger. Constructed once in main and injected downward; nothing else
// reaches for globals.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Logger zerolog.Logger

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger := newLogger(cfg)

	db, err := sqlite.New(ctx, cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate failed: %w", err)
	}
	logger.Info().Str("path", cfg.SQLite.Path).Msg("database ready")

	return &App{
		Config:    cfg,
		DB:        db,
		Logger:    logger,
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newLogger(cfg *config.Config) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.App.Env == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.With().Timestamp().Str("app", cfg.App.Name).Logger()
}
