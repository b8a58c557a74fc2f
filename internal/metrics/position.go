// Package metrics computes display-ready position and P&L figures for a
// trade from its scale plans and executions. All functions are pure:
// they never mutate their input and hold no state between calls, so
// callers recompute whenever the underlying trade data changes.
package metrics

import (
	"tradelog/internal/models"
)

// Position is a read-only numeric view of a trade's position.
type Position struct {
	EntryPriceAvg   float64
	EntryQty        float64
	StopLoss        float64
	Direction       models.Direction
	SoldShares      float64
	RemainingShares float64
	RealizedPnL     float64
	RealizedPct     float64
	UnrealizedPnL   float64
	UnrealizedPct   float64
	TotalPnL        float64
	TotalPct        float64
}

// entryState captures the resolved entry plan figures.
type entryState struct {
	priceAvg  float64
	qty       float64
	stopLoss  float64
	direction models.Direction
}

// Compute derives the full position view for a trade.
func Compute(t *models.Trade) Position {
	entry := resolveEntry(t)
	sells := targetExecutions(t)

	var soldShares float64
	for _, e := range sells {
		soldShares += e.Qty
	}

	var commissions, grossPnL float64
	for _, e := range sells {
		commissions += e.Commission
		grossPnL += (e.Price - entry.priceAvg) * e.Qty
	}
	realizedPnL := grossPnL - commissions

	var realizedPct float64
	if realizedPnL != 0 && soldShares != 0 {
		realizedPct = realizedPnL / (entry.priceAvg * soldShares) * 100
	}

	remaining := entry.qty - soldShares
	if remaining < 0 {
		remaining = 0
	}

	var unrealizedPnL, unrealizedPct float64
	if remaining > 0 {
		unrealizedPnL = (t.CurrentPrice - entry.priceAvg) * remaining
		unrealizedPct = unrealizedPnL / (entry.priceAvg * remaining) * 100
	}

	totalPnL := realizedPnL + unrealizedPnL
	var totalPct float64
	if entry.qty != 0 {
		totalPct = totalPnL / (entry.priceAvg * entry.qty) * 100
	}

	return Position{
		EntryPriceAvg:   entry.priceAvg,
		EntryQty:        entry.qty,
		StopLoss:        entry.stopLoss,
		Direction:       entry.direction,
		SoldShares:      soldShares,
		RemainingShares: remaining,
		RealizedPnL:     realizedPnL,
		RealizedPct:     realizedPct,
		UnrealizedPnL:   unrealizedPnL,
		UnrealizedPct:   unrealizedPct,
		TotalPnL:        totalPnL,
		TotalPct:        totalPct,
	}
}

// WeightedAvgPrice returns the execution-quantity-weighted average price,
// or 0 when there are no fills or the total quantity is zero.
func WeightedAvgPrice(execs []models.Execution) float64 {
	if len(execs) == 0 {
		return 0
	}

	var totalQty, totalValue float64
	for _, e := range execs {
		totalQty += e.Qty
		totalValue += e.Price * e.Qty
	}
	if totalQty == 0 {
		return 0
	}
	return totalValue / totalQty
}

// targetExecutions flattens the fills of all TARGET-type plans.
func targetExecutions(t *models.Trade) []models.Execution {
	var execs []models.Execution
	for i := range t.ScalePlans {
		if t.ScalePlans[i].PlanType == models.PlanTarget {
			execs = append(execs, t.ScalePlans[i].Executions...)
		}
	}
	return execs
}

// latestStopLoss returns the stop price of the first non-cancelled
// STOP_LOSS plan, or 0 when none exists.
func latestStopLoss(t *models.Trade) float64 {
	for i := range t.ScalePlans {
		p := &t.ScalePlans[i]
		if p.PlanType == models.PlanStopLoss && p.Status != models.PlanCancelled && p.StopPrice != nil {
			return *p.StopPrice
		}
	}
	return 0
}

// resolveEntry selects the entry plan (FILLED or PLANNED) and derives
// the average entry price, quantity and stop loss. A planned entry uses
// its limit price and quantity directly; a filled entry averages its
// fills. With no entry plan or no fills, price and quantity are zero and
// the stop loss falls back to the latest non-cancelled stop plan.
func resolveEntry(t *models.Trade) entryState {
	var plan *models.ScalePlan
	for i := range t.ScalePlans {
		p := &t.ScalePlans[i]
		if p.PlanType == models.PlanEntry &&
			(p.Status == models.PlanFilled || p.Status == models.PlanPlanned) {
			plan = p
			break
		}
	}

	fallbackStop := latestStopLoss(t)
	direction := models.Long
	if plan != nil && plan.TradeType != "" {
		direction = plan.TradeType
	}

	if plan != nil && plan.Status == models.PlanPlanned {
		var limit, stop float64
		if plan.LimitPrice != nil {
			limit = *plan.LimitPrice
		}
		if plan.StopPrice != nil {
			stop = *plan.StopPrice
		}
		return entryState{priceAvg: limit, qty: plan.Qty, stopLoss: stop, direction: direction}
	}

	if plan == nil || len(plan.Executions) == 0 {
		return entryState{stopLoss: fallbackStop, direction: direction}
	}

	var totalQty float64
	for _, e := range plan.Executions {
		totalQty += e.Qty
	}

	stop := fallbackStop
	if stop == 0 && plan.StopPrice != nil {
		stop = *plan.StopPrice
	}

	return entryState{
		priceAvg:  WeightedAvgPrice(plan.Executions),
		qty:       totalQty,
		stopLoss:  stop,
		direction: direction,
	}
}
