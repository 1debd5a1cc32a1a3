package service

import (
	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/internal/repository"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"
)

type Service struct {
	JournalService JournalService
}

func NewService(cfg *config.Config, log *logger.Logger, repo *repository.Repository) *Service {
	return &Service{
		JournalService: NewJournalService(cfg, log, repo.LedgerRepo, repo.ChartRepo),
	}
}
