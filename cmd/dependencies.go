package cmd

import (
	"context"

	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/pkg/cache"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"
	"github.com/arnav-sinha2713/trading-journal/pkg/postgres"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AppDependency struct {
	db           *postgres.DB
	cfg          *config.Config
	log          *logger.Logger
	validator    *goValidator.Validate
	echo         *echo.Echo
	sessionCache cache.Cache
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	db, err := postgres.NewDB(cfg.DB, log)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true

	return &AppDependency{
		cfg:          cfg,
		log:          log,
		validator:    goValidator.New(),
		db:           db,
		echo:         e,
		sessionCache: cache.NewCache(cfg.Auth.SessionTTL, cfg.Auth.CleanupInterval),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
