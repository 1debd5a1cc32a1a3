package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTradeRecord_DerivedFields(t *testing.T) {
	tests := []struct {
		name          string
		input         TradeInput
		wantNetPnl    float64
		wantReturnPct float64
		wantStatus    TradeStatus
	}{
		{
			name: "long closed in profit",
			input: TradeInput{
				Date: "2024-01-05", Symbol: "AAPL", Side: SideLong,
				EntryPrice: 100, ExitPrice: 120, Quantity: 10, Confidence: 80,
			},
			wantNetPnl:    200.00,
			wantReturnPct: 20.00,
			wantStatus:    StatusClosed,
		},
		{
			name: "short closed in profit",
			input: TradeInput{
				Date: "2024-01-05", Symbol: "TSLA", Side: SideShort,
				EntryPrice: 50, ExitPrice: 40, Quantity: 5, Confidence: 60,
			},
			wantNetPnl:    50.00,
			wantReturnPct: 20.00,
			wantStatus:    StatusClosed,
		},
		{
			name: "open position has zero derived values",
			input: TradeInput{
				Date: "2024-01-05", Symbol: "MSFT", Side: SideLong,
				EntryPrice: 10, ExitPrice: 0, Quantity: 3, Confidence: 50,
			},
			wantNetPnl:    0.00,
			wantReturnPct: 0.00,
			wantStatus:    StatusOpen,
		},
		{
			name: "long closed at a loss",
			input: TradeInput{
				Date: "2024-01-05", Symbol: "NVDA", Side: SideLong,
				EntryPrice: 200, ExitPrice: 150, Quantity: 2, Confidence: 90,
			},
			wantNetPnl:    -100.00,
			wantReturnPct: -25.00,
			wantStatus:    StatusClosed,
		},
		{
			name: "short closed at a loss",
			input: TradeInput{
				Date: "2024-01-05", Symbol: "AMD", Side: SideShort,
				EntryPrice: 80, ExitPrice: 100, Quantity: 1, Confidence: 40,
			},
			wantNetPnl:    -20.00,
			wantReturnPct: -25.00,
			wantStatus:    StatusClosed,
		},
		{
			name: "return percentage rounds half up",
			input: TradeInput{
				Date: "2024-01-05", Symbol: "IBM", Side: SideLong,
				EntryPrice: 8, ExitPrice: 8.01, Quantity: 3, Confidence: 70,
			},
			wantNetPnl:    0.03,
			wantReturnPct: 0.13, // exact value 0.125
			wantStatus:    StatusClosed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTradeRecord(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNetPnl, got.NetPnl, "NetPnl mismatch")
			assert.Equal(t, tt.wantReturnPct, got.ReturnPct, "ReturnPct mismatch")
			assert.Equal(t, tt.wantStatus, got.Status, "Status mismatch")
		})
	}
}

func TestNewTradeRecord_ProfitSignProperties(t *testing.T) {
	long, err := NewTradeRecord(TradeInput{
		Date: "2024-02-01", Symbol: "A", Side: SideLong,
		EntryPrice: 99.37, ExitPrice: 101.12, Quantity: 7,
	})
	require.NoError(t, err)
	assert.Greater(t, long.NetPnl, 0.0, "long with exit above entry must profit")

	short, err := NewTradeRecord(TradeInput{
		Date: "2024-02-01", Symbol: "B", Side: SideShort,
		EntryPrice: 42.5, ExitPrice: 41.9, Quantity: 11,
	})
	require.NoError(t, err)
	assert.Greater(t, short.NetPnl, 0.0, "short with exit below entry must profit")
}

func TestNewTradeRecord_Validation(t *testing.T) {
	valid := TradeInput{
		Date: "2024-01-05", Symbol: "AAPL", Side: SideLong,
		EntryPrice: 100, ExitPrice: 0, Quantity: 1, Confidence: 50,
	}

	tests := []struct {
		name      string
		mutate    func(in *TradeInput)
		wantField string
	}{
		{"empty symbol", func(in *TradeInput) { in.Symbol = "  " }, "symbol"},
		{"bad date", func(in *TradeInput) { in.Date = "05-01-2024" }, "date"},
		{"unknown side", func(in *TradeInput) { in.Side = "HOLD" }, "side"},
		{"zero entry price", func(in *TradeInput) { in.EntryPrice = 0 }, "entry_price"},
		{"negative exit price", func(in *TradeInput) { in.ExitPrice = -1 }, "exit_price"},
		{"zero quantity", func(in *TradeInput) { in.Quantity = 0 }, "quantity"},
		{"confidence above 100", func(in *TradeInput) { in.Confidence = 101 }, "confidence"},
		{"negative stop loss", func(in *TradeInput) { in.StopLoss = -0.5 }, "stop_loss"},
		{"negative target", func(in *TradeInput) { in.Target = -2 }, "target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := NewTradeRecord(input)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestNewTradeRecord_UppercasesSymbol(t *testing.T) {
	got, err := NewTradeRecord(TradeInput{
		Date: "2024-01-05", Symbol: " aapl ", Side: SideLong,
		EntryPrice: 10, Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Symbol)
}

func TestRecordFromRow_CoercesMalformedNumbers(t *testing.T) {
	row := []string{
		"2024-01-05", "AAPL", "LONG", "80", "100", "120", "not-a-number",
		"95", "130", "stray text", "", "Closed", "some notes", "",
	}

	got := RecordFromRow(row)
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, 0.0, got.NetPnl)
	assert.Equal(t, 0.0, got.ReturnPct)
	assert.Equal(t, 100.0, got.EntryPrice)
	assert.Equal(t, StatusClosed, got.Status)
}

func TestToRowRoundTrip(t *testing.T) {
	rec, err := NewTradeRecord(TradeInput{
		Date: "2024-03-01", Symbol: "GOOG", Side: SideShort,
		EntryPrice: 150.5, ExitPrice: 140.25, Quantity: 4,
		Confidence: 65, StopLoss: 155, Target: 138,
		Notes: "gap fill", ChartPath: "charts_x/GOOG_2024-03-01_101500.png",
	})
	require.NoError(t, err)

	row := rec.ToRow()
	require.Len(t, row, len(Header()))

	got := RecordFromRow(row)
	assert.Equal(t, rec, got)
}
