package repository

import (
	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/pkg/cache"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	WorksheetStore TableStore
	LedgerRepo     LedgerRepository
	ChartRepo      ChartRepository
	AuthRepo       AuthRepository
}

func NewRepository(cfg *config.Config, sessionCache cache.Cache, db *gorm.DB, log *logger.Logger) *Repository {
	store := NewWorksheetStore(db, log)

	return &Repository{
		WorksheetStore: store,
		LedgerRepo:     NewLedgerRepository(store, cfg, log),
		ChartRepo:      NewChartRepository(cfg, log),
		AuthRepo:       NewAuthRepository(cfg, sessionCache, log),
	}
}
