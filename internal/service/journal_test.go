package service

import (
	"context"
	"errors"
	"testing"

	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/internal/dto"
	"github.com/arnav-sinha2713/trading-journal/internal/model"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedgerRepo struct {
	ledgers map[string]model.Ledger
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{ledgers: make(map[string]model.Ledger)}
}

func (f *fakeLedgerRepo) Read(ctx context.Context, identity string) (model.Ledger, error) {
	return append(model.Ledger{}, f.ledgers[identity]...), nil
}

func (f *fakeLedgerRepo) Append(ctx context.Context, identity string, record model.TradeRecord) (model.Ledger, error) {
	f.ledgers[identity] = append(f.ledgers[identity], record)
	return append(model.Ledger{}, f.ledgers[identity]...), nil
}

func (f *fakeLedgerRepo) EnsureCreated(ctx context.Context, identity string) error {
	return nil
}

type fakeChartRepo struct {
	saved    int
	lastPath string
	err      error
}

func (f *fakeChartRepo) Save(ctx context.Context, identity, symbol, date string, blob []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved++
	f.lastPath = "charts_" + identity + "/" + symbol + "_" + date + "_120000.png"
	return f.lastPath, nil
}

func (f *fakeChartRepo) BaseDir() string {
	return "charts"
}

func newTestJournalService(t *testing.T, ledgerRepo *fakeLedgerRepo, chartRepo *fakeChartRepo) JournalService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewJournalService(&config.Config{}, log, ledgerRepo, chartRepo)
}

func validRequest() dto.SubmitTradeRequest {
	return dto.SubmitTradeRequest{
		Date:       "2024-01-05",
		Symbol:     "aapl",
		Side:       "LONG",
		Confidence: 80,
		EntryPrice: 100,
		ExitPrice:  120,
		Quantity:   10,
		StopLoss:   95,
		Target:     130,
		Notes:      "breakout",
	}
}

func TestJournalService_SubmitTrade(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	svc := newTestJournalService(t, ledgerRepo, &fakeChartRepo{})

	result, err := svc.SubmitTrade(context.Background(), "trader@example.com", validRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", result.Trade.Symbol)
	assert.Equal(t, 200.0, result.Trade.NetPnl)
	assert.Equal(t, 20.0, result.Trade.ReturnPct)
	assert.Equal(t, model.StatusClosed, result.Trade.Status)
	assert.Len(t, result.Trades, 1)
	assert.Equal(t, 200.0, result.Summary.NetProfit)
}

func TestJournalService_SubmitTradeRejectionHasNoSideEffects(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	chartRepo := &fakeChartRepo{}
	svc := newTestJournalService(t, ledgerRepo, chartRepo)

	req := validRequest()
	req.Symbol = ""

	_, err := svc.SubmitTrade(context.Background(), "trader@example.com", req, &dto.ChartUpload{
		Filename: "chart.png",
		Content:  []byte("fake image"),
	})
	require.Error(t, err)

	var vErr *model.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, 0, chartRepo.saved, "rejected submission must not write a chart")
	assert.Empty(t, ledgerRepo.ledgers["trader@example.com"], "rejected submission must not append")
}

func TestJournalService_SubmitTradeStampsChartPath(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	chartRepo := &fakeChartRepo{}
	svc := newTestJournalService(t, ledgerRepo, chartRepo)

	result, err := svc.SubmitTrade(context.Background(), "trader@example.com", validRequest(), &dto.ChartUpload{
		Filename: "chart.png",
		Content:  []byte("fake image"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, chartRepo.saved)
	assert.Equal(t, chartRepo.lastPath, result.Trade.ChartPath)
}

func TestJournalService_SubmitTradeFailsWhenChartCannotBeStored(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	chartRepo := &fakeChartRepo{err: errors.New("disk full")}
	svc := newTestJournalService(t, ledgerRepo, chartRepo)

	_, err := svc.SubmitTrade(context.Background(), "trader@example.com", validRequest(), &dto.ChartUpload{
		Filename: "chart.png",
		Content:  []byte("fake image"),
	})
	require.Error(t, err)
	assert.Empty(t, ledgerRepo.ledgers["trader@example.com"], "failed chart store must abort the append")
}

func TestJournalService_GetJournalNewestFirst(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	svc := newTestJournalService(t, ledgerRepo, &fakeChartRepo{})
	ctx := context.Background()

	dates := []string{"2024-01-01", "2024-01-03", "2024-01-02"}
	for _, date := range dates {
		req := validRequest()
		req.Date = date
		_, err := svc.SubmitTrade(ctx, "trader@example.com", req, nil)
		require.NoError(t, err)
	}

	result, err := svc.GetJournal(ctx, "trader@example.com")
	require.NoError(t, err)
	require.Len(t, result.Trades, 3)

	assert.Equal(t, "2024-01-03", result.Trades[0].Date)
	assert.Equal(t, "2024-01-02", result.Trades[1].Date)
	assert.Equal(t, "2024-01-01", result.Trades[2].Date)
}
