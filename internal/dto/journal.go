package dto

import "github.com/arnav-sinha2713/trading-journal/internal/model"

// SubmitTradeRequest is the journal entry form. Field names follow the
// multipart form the web UI posts.
type SubmitTradeRequest struct {
	Date       string  `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Symbol     string  `form:"symbol" json:"symbol" validate:"required"`
	Side       string  `form:"side" json:"side" validate:"required,oneof=LONG SHORT"`
	Confidence int     `form:"confidence" json:"confidence" validate:"gte=0,lte=100"`
	EntryPrice float64 `form:"entry_price" json:"entry_price" validate:"gt=0"`
	ExitPrice  float64 `form:"exit_price" json:"exit_price" validate:"gte=0"`
	Quantity   int     `form:"quantity" json:"quantity" validate:"gte=1"`
	StopLoss   float64 `form:"stop_loss" json:"stop_loss" validate:"gte=0"`
	Target     float64 `form:"target" json:"target" validate:"gte=0"`
	Notes      string  `form:"notes" json:"notes"`
}

// ChartUpload is an optional screenshot attached to a submission.
type ChartUpload struct {
	Filename string
	Content  []byte
}

type SubmitTradeResponse struct {
	Trade   model.TradeRecord   `json:"trade"`
	Trades  []model.TradeRecord `json:"trades"`
	Summary JournalSummary      `json:"summary"`
}

type JournalResponse struct {
	Trades  []model.TradeRecord `json:"trades"`
	Summary JournalSummary      `json:"summary"`
}

// CumulativePnlPoint is one step of the equity curve: closed trades sorted
// by date, PnL accumulated in that order.
type CumulativePnlPoint struct {
	Date          string  `json:"date"`
	NetPnl        float64 `json:"net_pnl"`
	CumulativePnl float64 `json:"cumulative_pnl"`
}

// ConfidenceReturnPoint is one raw (confidence, return %) pair, open and
// closed trades alike, for the scatter view.
type ConfidenceReturnPoint struct {
	Confidence int     `json:"confidence"`
	ReturnPct  float64 `json:"return_pct"`
}

type JournalSummary struct {
	NetProfit          float64                 `json:"net_profit"`
	WinRate            float64                 `json:"win_rate"`
	AvgReturn          float64                 `json:"avg_return"`
	ActiveTrades       int                     `json:"active_trades"`
	ClosedTrades       int                     `json:"closed_trades"`
	CumulativePnl      []CumulativePnlPoint    `json:"cumulative_pnl"`
	ReturnByConfidence []ConfidenceReturnPoint `json:"return_by_confidence"`
}
