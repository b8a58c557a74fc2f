package metrics

import (
	"tradelog/internal/models"
)

// Outcome classification thresholds, as percentage of entry value.
const (
	bigWinPct  = 20.0
	bigLossPct = -10.0
)

// ClassifyOutcome maps a trade's total P&L percentage to its outcome
// bucket. Open trades are pending.
func ClassifyOutcome(t *models.Trade, pos Position) models.Outcome {
	if t.Status != models.TradeClosed {
		return models.OutcomePending
	}

	switch {
	case pos.TotalPct >= bigWinPct:
		return models.OutcomeBigWin
	case pos.TotalPct > 0:
		return models.OutcomeWin
	case pos.TotalPct == 0:
		return models.OutcomeBreakEven
	case pos.TotalPct <= bigLossPct:
		return models.OutcomeBigLoss
	default:
		return models.OutcomeLoss
	}
}

// Summary aggregates position figures across a set of trades.
type Summary struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64
	RealizedPnL   float64
	UnrealizedPnL float64
	TotalPnL      float64
	BestSymbol    string
	BestPnL       float64
	WorstSymbol   string
	WorstPnL      float64
}

// Summarize computes journal-wide statistics. Each trade's position is
// recomputed from its current data.
func Summarize(trades []models.Trade) Summary {
	s := Summary{TotalTrades: len(trades)}

	for i := range trades {
		t := &trades[i]
		pos := Compute(t)

		s.RealizedPnL += pos.RealizedPnL
		s.UnrealizedPnL += pos.UnrealizedPnL
		s.TotalPnL += pos.TotalPnL

		if pos.TotalPnL > 0 {
			s.WinningTrades++
		} else if pos.TotalPnL < 0 {
			s.LosingTrades++
		}

		if i == 0 || pos.TotalPnL > s.BestPnL {
			s.BestSymbol, s.BestPnL = t.Symbol, pos.TotalPnL
		}
		if i == 0 || pos.TotalPnL < s.WorstPnL {
			s.WorstSymbol, s.WorstPnL = t.Symbol, pos.TotalPnL
		}
	}

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	}
	return s
}
