package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TradeSide string

const (
	SideLong  TradeSide = "LONG"
	SideShort TradeSide = "SHORT"
)

type TradeStatus string

const (
	StatusOpen   TradeStatus = "Open"
	StatusClosed TradeStatus = "Closed"
)

const DateLayout = "2006-01-02"

// TradeRecord is one row of a user's journal worksheet. Records are
// immutable once written; append is the only mutation on a ledger.
type TradeRecord struct {
	Date       string      `json:"date"`
	Symbol     string      `json:"symbol"`
	Side       TradeSide   `json:"side"`
	Confidence int         `json:"confidence"`
	EntryPrice float64     `json:"entry_price"`
	ExitPrice  float64     `json:"exit_price"`
	Quantity   int         `json:"quantity"`
	StopLoss   float64     `json:"stop_loss"`
	Target     float64     `json:"target"`
	NetPnl     float64     `json:"net_pnl"`
	ReturnPct  float64     `json:"return_pct"`
	Status     TradeStatus `json:"status"`
	Notes      string      `json:"notes"`
	ChartPath  string      `json:"chart_path"`
}

// Ledger is the full ordered trade history of one identity.
type Ledger []TradeRecord

// TradeInput carries the raw submission before derived fields exist.
type TradeInput struct {
	Date       string
	Symbol     string
	Side       TradeSide
	Confidence int
	EntryPrice float64
	ExitPrice  float64
	Quantity   int
	StopLoss   float64
	Target     float64
	Notes      string
	ChartPath  string
}

// ValidationError rejects a submission before any side effect happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Header returns the canonical 14-column worksheet schema, matching the
// original journal sheet layout.
func Header() []string {
	return []string{
		"Date", "Symbol", "Type", "Confidence", "Entry", "Exit", "Qty",
		"StopLoss", "Target", "Net_PnL", "Return_Pct", "Status", "Notes", "Chart_Path",
	}
}

// NewTradeRecord validates the raw input and computes the derived fields.
// The input bounds are re-checked here regardless of what the HTTP layer
// already validated; the form boundary is untrusted.
func NewTradeRecord(in TradeInput) (TradeRecord, error) {
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol == "" {
		return TradeRecord{}, &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return TradeRecord{}, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if in.Side != SideLong && in.Side != SideShort {
		return TradeRecord{}, &ValidationError{Field: "side", Reason: "must be LONG or SHORT"}
	}
	if in.EntryPrice <= 0 {
		return TradeRecord{}, &ValidationError{Field: "entry_price", Reason: "must be greater than zero"}
	}
	if in.ExitPrice < 0 {
		return TradeRecord{}, &ValidationError{Field: "exit_price", Reason: "must not be negative"}
	}
	if in.Quantity < 1 {
		return TradeRecord{}, &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if in.Confidence < 0 || in.Confidence > 100 {
		return TradeRecord{}, &ValidationError{Field: "confidence", Reason: "must be between 0 and 100"}
	}
	if in.StopLoss < 0 {
		return TradeRecord{}, &ValidationError{Field: "stop_loss", Reason: "must not be negative"}
	}
	if in.Target < 0 {
		return TradeRecord{}, &ValidationError{Field: "target", Reason: "must not be negative"}
	}

	netPnl, returnPct, status := deriveTradeResult(in.Side, in.EntryPrice, in.ExitPrice, in.Quantity)

	return TradeRecord{
		Date:       in.Date,
		Symbol:     symbol,
		Side:       in.Side,
		Confidence: in.Confidence,
		EntryPrice: in.EntryPrice,
		ExitPrice:  in.ExitPrice,
		Quantity:   in.Quantity,
		StopLoss:   in.StopLoss,
		Target:     in.Target,
		NetPnl:     netPnl,
		ReturnPct:  returnPct,
		Status:     status,
		Notes:      in.Notes,
		ChartPath:  in.ChartPath,
	}, nil
}

// deriveTradeResult computes net PnL and return percentage, rounded half-up
// to 2 decimal places. An exit price of zero means the position is still
// open and both derived values stay zero.
func deriveTradeResult(side TradeSide, entry, exit float64, qty int) (netPnl, returnPct float64, status TradeStatus) {
	if exit == 0 {
		return 0, 0, StatusOpen
	}

	e := decimal.NewFromFloat(entry)
	x := decimal.NewFromFloat(exit)
	q := decimal.NewFromInt(int64(qty))

	var pnl decimal.Decimal
	if side == SideShort {
		pnl = e.Sub(x).Mul(q)
	} else {
		pnl = x.Sub(e).Mul(q)
	}

	ret := pnl.Div(e.Mul(q)).Mul(decimal.NewFromInt(100))

	netPnl, _ = pnl.Round(2).Float64()
	returnPct, _ = ret.Round(2).Float64()
	return netPnl, returnPct, StatusClosed
}

// ToRow serializes the record into the canonical column order.
func (r TradeRecord) ToRow() []string {
	return []string{
		r.Date,
		r.Symbol,
		string(r.Side),
		strconv.Itoa(r.Confidence),
		formatPrice(r.EntryPrice),
		formatPrice(r.ExitPrice),
		strconv.Itoa(r.Quantity),
		formatPrice(r.StopLoss),
		formatPrice(r.Target),
		strconv.FormatFloat(r.NetPnl, 'f', 2, 64),
		strconv.FormatFloat(r.ReturnPct, 'f', 2, 64),
		string(r.Status),
		r.Notes,
		r.ChartPath,
	}
}

// RecordFromRow deserializes a worksheet row. Cells that fail numeric
// parsing coerce to zero so that blank or hand-edited spreadsheet cells
// never poison a read. Short rows pad out with empty cells.
func RecordFromRow(cells []string) TradeRecord {
	cols := len(Header())
	if len(cells) < cols {
		padded := make([]string, cols)
		copy(padded, cells)
		cells = padded
	}

	return TradeRecord{
		Date:       cells[0],
		Symbol:     cells[1],
		Side:       TradeSide(cells[2]),
		Confidence: int(floatOrZero(cells[3])),
		EntryPrice: floatOrZero(cells[4]),
		ExitPrice:  floatOrZero(cells[5]),
		Quantity:   int(floatOrZero(cells[6])),
		StopLoss:   floatOrZero(cells[7]),
		Target:     floatOrZero(cells[8]),
		NetPnl:     floatOrZero(cells[9]),
		ReturnPct:  floatOrZero(cells[10]),
		Status:     TradeStatus(cells[11]),
		Notes:      cells[12],
		ChartPath:  cells[13],
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
