package service

import (
	"sort"

	"github.com/arnav-sinha2713/trading-journal/internal/dto"
	"github.com/arnav-sinha2713/trading-journal/internal/model"

	"github.com/shopspring/decimal"
)

// Summarize derives the dashboard metrics from a ledger. Pure function, no
// side effects; the ledger itself is never modified.
func Summarize(ledger model.Ledger) dto.JournalSummary {
	summary := dto.JournalSummary{
		CumulativePnl:      []dto.CumulativePnlPoint{},
		ReturnByConfidence: make([]dto.ConfidenceReturnPoint, 0, len(ledger)),
	}

	var closed model.Ledger
	netProfit := decimal.Zero
	returnSum := decimal.Zero
	wins := 0

	for _, rec := range ledger {
		summary.ReturnByConfidence = append(summary.ReturnByConfidence, dto.ConfidenceReturnPoint{
			Confidence: rec.Confidence,
			ReturnPct:  rec.ReturnPct,
		})

		if rec.Status != model.StatusClosed {
			summary.ActiveTrades++
			continue
		}

		closed = append(closed, rec)
		netProfit = netProfit.Add(decimal.NewFromFloat(rec.NetPnl))
		returnSum = returnSum.Add(decimal.NewFromFloat(rec.ReturnPct))
		if rec.NetPnl > 0 {
			wins++
		}
	}

	summary.ClosedTrades = len(closed)
	summary.NetProfit, _ = netProfit.Round(2).Float64()

	// Win rate and average return stay zero on an empty closed set.
	if len(closed) > 0 {
		count := decimal.NewFromInt(int64(len(closed)))
		winRate := decimal.NewFromInt(int64(wins)).Div(count).Mul(decimal.NewFromInt(100))
		summary.WinRate, _ = winRate.Round(2).Float64()
		avgReturn := returnSum.Div(count)
		summary.AvgReturn, _ = avgReturn.Round(2).Float64()
	}

	summary.CumulativePnl = cumulativePnl(closed)

	return summary
}

// cumulativePnl sorts closed trades ascending by date, keeping insertion
// order for equal dates, and accumulates PnL in that order.
func cumulativePnl(closed model.Ledger) []dto.CumulativePnlPoint {
	sorted := make(model.Ledger, len(closed))
	copy(sorted, closed)
	sort.SliceStable(sorted, func(i, j int) bool {
		// ISO dates compare correctly as strings.
		return sorted[i].Date < sorted[j].Date
	})

	points := make([]dto.CumulativePnlPoint, 0, len(sorted))
	running := decimal.Zero
	for _, rec := range sorted {
		running = running.Add(decimal.NewFromFloat(rec.NetPnl))
		cum, _ := running.Round(2).Float64()
		points = append(points, dto.CumulativePnlPoint{
			Date:          rec.Date,
			NetPnl:        rec.NetPnl,
			CumulativePnl: cum,
		})
	}
	return points
}
