package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/internal/dto"
	"github.com/arnav-sinha2713/trading-journal/internal/model"
	"github.com/arnav-sinha2713/trading-journal/internal/repository"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"
)

type JournalService interface {
	SubmitTrade(ctx context.Context, identity string, req dto.SubmitTradeRequest, chart *dto.ChartUpload) (*dto.SubmitTradeResponse, error)
	GetJournal(ctx context.Context, identity string) (*dto.JournalResponse, error)
}

type journalService struct {
	cfg        *config.Config
	log        *logger.Logger
	ledgerRepo repository.LedgerRepository
	chartRepo  repository.ChartRepository
}

func NewJournalService(cfg *config.Config, log *logger.Logger, ledgerRepo repository.LedgerRepository, chartRepo repository.ChartRepository) JournalService {
	return &journalService{
		cfg:        cfg,
		log:        log,
		ledgerRepo: ledgerRepo,
		chartRepo:  chartRepo,
	}
}

// SubmitTrade runs one read-compute-write cycle: validate the submission,
// persist the optional chart, compute derived fields and append the record.
// Validation happens before any side effect so a rejected submission leaves
// nothing behind.
func (s *journalService) SubmitTrade(ctx context.Context, identity string, req dto.SubmitTradeRequest, chart *dto.ChartUpload) (*dto.SubmitTradeResponse, error) {
	input := model.TradeInput{
		Date:       req.Date,
		Symbol:     req.Symbol,
		Side:       model.TradeSide(req.Side),
		Confidence: req.Confidence,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		Quantity:   req.Quantity,
		StopLoss:   req.StopLoss,
		Target:     req.Target,
		Notes:      req.Notes,
	}

	// Dry-run validation; the record is rebuilt below once the chart path
	// is known.
	record, err := model.NewTradeRecord(input)
	if err != nil {
		return nil, err
	}

	if chart != nil && len(chart.Content) > 0 {
		chartPath, err := s.chartRepo.Save(ctx, identity, record.Symbol, record.Date, chart.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to store chart: %w", err)
		}
		input.ChartPath = chartPath
		record, err = model.NewTradeRecord(input)
		if err != nil {
			return nil, err
		}
	}

	ledger, err := s.ledgerRepo.Append(ctx, identity, record)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Trade appended to journal",
		logger.StringField("symbol", record.Symbol),
		logger.StringField("status", string(record.Status)),
		logger.Float64Field("net_pnl", record.NetPnl),
		logger.IntField("ledger_size", len(ledger)),
	)

	return &dto.SubmitTradeResponse{
		Trade:   record,
		Trades:  newestFirst(ledger),
		Summary: Summarize(ledger),
	}, nil
}

// GetJournal loads the ledger fresh on every call; there is no cache to go
// stale between a read and the next append.
func (s *journalService) GetJournal(ctx context.Context, identity string) (*dto.JournalResponse, error) {
	ledger, err := s.ledgerRepo.Read(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &dto.JournalResponse{
		Trades:  newestFirst(ledger),
		Summary: Summarize(ledger),
	}, nil
}

// newestFirst returns a display-ordered copy, dates descending and the most
// recently appended record first within a date. The stored ledger stays in
// insertion order.
func newestFirst(ledger model.Ledger) []model.TradeRecord {
	out := make([]model.TradeRecord, len(ledger))
	for i, rec := range ledger {
		out[len(ledger)-1-i] = rec
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
