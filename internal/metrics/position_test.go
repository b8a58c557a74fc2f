package metrics

import (
	"math"
	"testing"
	"time"

	"tradelog/internal/models"
)

func f64(v float64) *float64 { return &v }

func fill(side models.ExecutionSide, price, qty, commission float64) models.Execution {
	return models.Execution{
		Price:      price,
		Qty:        qty,
		Commission: commission,
		Side:       side,
		Source:     models.SourceManual,
		ExecutedAt: time.Now(),
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputePartialExit(t *testing.T) {
	// Two entry fills of 50 shares at 10 and 12 average to 11. Selling
	// 50 at 15 with a 1.00 commission realizes 199. The remaining 50
	// marked at 14 carry 150 unrealized, 349 total.
	trade := &models.Trade{
		Symbol:       "AAPL",
		Status:       models.TradeOpen,
		CurrentPrice: 14,
		ScalePlans: []models.ScalePlan{
			{
				PlanType:  models.PlanEntry,
				Status:    models.PlanFilled,
				TradeType: models.Long,
				StopPrice: f64(9),
				Executions: []models.Execution{
					fill(models.SideBuy, 10, 50, 0),
					fill(models.SideBuy, 12, 50, 0),
				},
			},
			{
				PlanType:    models.PlanTarget,
				Status:      models.PlanFilled,
				TradeType:   models.Long,
				TargetPrice: f64(15),
				Executions: []models.Execution{
					fill(models.SideSell, 15, 50, 1),
				},
			},
		},
	}

	pos := Compute(trade)

	if !approxEqual(pos.EntryPriceAvg, 11) {
		t.Errorf("EntryPriceAvg = %v, want 11", pos.EntryPriceAvg)
	}
	if !approxEqual(pos.EntryQty, 100) {
		t.Errorf("EntryQty = %v, want 100", pos.EntryQty)
	}
	if !approxEqual(pos.SoldShares, 50) {
		t.Errorf("SoldShares = %v, want 50", pos.SoldShares)
	}
	if !approxEqual(pos.RemainingShares, 50) {
		t.Errorf("RemainingShares = %v, want 50", pos.RemainingShares)
	}
	if !approxEqual(pos.RealizedPnL, 199) {
		t.Errorf("RealizedPnL = %v, want 199", pos.RealizedPnL)
	}
	if !approxEqual(pos.UnrealizedPnL, 150) {
		t.Errorf("UnrealizedPnL = %v, want 150", pos.UnrealizedPnL)
	}
	if !approxEqual(pos.TotalPnL, 349) {
		t.Errorf("TotalPnL = %v, want 349", pos.TotalPnL)
	}
	wantTotalPct := 349.0 / 1100.0 * 100
	if !approxEqual(pos.TotalPct, wantTotalPct) {
		t.Errorf("TotalPct = %v, want %v", pos.TotalPct, wantTotalPct)
	}
	if pos.Direction != models.Long {
		t.Errorf("Direction = %v, want long", pos.Direction)
	}
	if !approxEqual(pos.StopLoss, 9) {
		t.Errorf("StopLoss = %v, want 9", pos.StopLoss)
	}
}

func TestComputePlannedEntry(t *testing.T) {
	// A planned entry uses its limit price and quantity directly even
	// though nothing has filled.
	trade := &models.Trade{
		Symbol:       "NVDA",
		Status:       models.TradeWatching,
		CurrentPrice: 130,
		ScalePlans: []models.ScalePlan{
			{
				PlanType:   models.PlanEntry,
				Status:     models.PlanPlanned,
				TradeType:  models.Long,
				Qty:        40,
				LimitPrice: f64(120),
				StopPrice:  f64(112),
			},
		},
	}

	pos := Compute(trade)

	if !approxEqual(pos.EntryPriceAvg, 120) {
		t.Errorf("EntryPriceAvg = %v, want 120", pos.EntryPriceAvg)
	}
	if !approxEqual(pos.EntryQty, 40) {
		t.Errorf("EntryQty = %v, want 40", pos.EntryQty)
	}
	if !approxEqual(pos.StopLoss, 112) {
		t.Errorf("StopLoss = %v, want 112", pos.StopLoss)
	}
	if !approxEqual(pos.UnrealizedPnL, (130-120)*40) {
		t.Errorf("UnrealizedPnL = %v, want 400", pos.UnrealizedPnL)
	}
}

func TestComputeFilledEntryWithoutFills(t *testing.T) {
	// A FILLED entry plan with no executions contributes nothing; the
	// stop still resolves from the stop plan.
	trade := &models.Trade{
		Symbol:       "TSLA",
		CurrentPrice: 250,
		ScalePlans: []models.ScalePlan{
			{
				PlanType:  models.PlanEntry,
				Status:    models.PlanFilled,
				TradeType: models.Long,
				Qty:       100,
			},
			{
				PlanType:  models.PlanStopLoss,
				Status:    models.PlanPlanned,
				StopPrice: f64(230),
			},
		},
	}

	pos := Compute(trade)

	if pos.EntryPriceAvg != 0 || pos.EntryQty != 0 {
		t.Errorf("entry = (%v, %v), want zero", pos.EntryPriceAvg, pos.EntryQty)
	}
	if !approxEqual(pos.StopLoss, 230) {
		t.Errorf("StopLoss = %v, want 230", pos.StopLoss)
	}
	if pos.UnrealizedPnL != 0 || pos.TotalPct != 0 {
		t.Errorf("P&L = (%v, %v%%), want zero", pos.UnrealizedPnL, pos.TotalPct)
	}
}

func TestComputeNoEntryPlan(t *testing.T) {
	trade := &models.Trade{Symbol: "SPY", CurrentPrice: 500}
	pos := Compute(trade)

	if pos != (Position{Direction: models.Long}) {
		t.Errorf("Compute on empty trade = %+v, want zero position", pos)
	}
}

func TestComputeStopFallbackPrefersStopPlan(t *testing.T) {
	// A cancelled stop plan is skipped; the entry plan's own stop price
	// is the fallback when no live stop plan exists.
	trade := &models.Trade{
		Symbol: "AMD",
		ScalePlans: []models.ScalePlan{
			{
				PlanType:  models.PlanStopLoss,
				Status:    models.PlanCancelled,
				StopPrice: f64(90),
			},
			{
				PlanType:  models.PlanEntry,
				Status:    models.PlanFilled,
				TradeType: models.Long,
				StopPrice: f64(95),
				Executions: []models.Execution{
					fill(models.SideBuy, 100, 10, 0),
				},
			},
		},
	}

	pos := Compute(trade)
	if !approxEqual(pos.StopLoss, 95) {
		t.Errorf("StopLoss = %v, want 95 (entry plan fallback)", pos.StopLoss)
	}
}

func TestComputeOversoldClampsRemaining(t *testing.T) {
	trade := &models.Trade{
		Symbol:       "MSFT",
		CurrentPrice: 420,
		ScalePlans: []models.ScalePlan{
			{
				PlanType:  models.PlanEntry,
				Status:    models.PlanFilled,
				TradeType: models.Long,
				Executions: []models.Execution{
					fill(models.SideBuy, 400, 10, 0),
				},
			},
			{
				PlanType:    models.PlanTarget,
				Status:      models.PlanFilled,
				TargetPrice: f64(410),
				Executions: []models.Execution{
					fill(models.SideSell, 410, 15, 0),
				},
			},
		},
	}

	pos := Compute(trade)
	if pos.RemainingShares != 0 {
		t.Errorf("RemainingShares = %v, want 0", pos.RemainingShares)
	}
	if pos.UnrealizedPnL != 0 {
		t.Errorf("UnrealizedPnL = %v, want 0 for a fully exited position", pos.UnrealizedPnL)
	}
}

func TestWeightedAvgPrice(t *testing.T) {
	tests := []struct {
		name  string
		execs []models.Execution
		want  float64
	}{
		{"no fills", nil, 0},
		{"single fill", []models.Execution{fill(models.SideBuy, 100, 10, 0)}, 100},
		{"uneven weights", []models.Execution{
			fill(models.SideBuy, 10, 75, 0),
			fill(models.SideBuy, 20, 25, 0),
		}, 12.5},
		{"zero quantity", []models.Execution{fill(models.SideBuy, 10, 0, 0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightedAvgPrice(tt.execs); !approxEqual(got, tt.want) {
				t.Errorf("WeightedAvgPrice = %v, want %v", got, tt.want)
			}
		})
	}
}
