package metrics

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"tradelog/internal/models"
)

// Property: the weighted average price always lies within the range of
// the fill prices, and scaling every quantity by the same factor leaves
// the average unchanged.
func TestProperty_WeightedAvgPriceBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	priceGen := gen.Float64Range(1.0, 5000.0)
	qtyGen := gen.Float64Range(1.0, 10000.0)
	countGen := gen.IntRange(1, 20)

	properties.Property("weighted average stays within fill price bounds", prop.ForAll(
		func(count int, basePrice, baseQty float64) bool {
			execs := make([]models.Execution, count)
			minPrice, maxPrice := math.Inf(1), math.Inf(-1)
			for i := range execs {
				price := basePrice * (1 + float64(i)*0.01)
				qty := baseQty + float64(i)
				execs[i] = models.Execution{Price: price, Qty: qty, Side: models.SideBuy}
				if price < minPrice {
					minPrice = price
				}
				if price > maxPrice {
					maxPrice = price
				}
			}

			avg := WeightedAvgPrice(execs)
			return avg >= minPrice-1e-6 && avg <= maxPrice+1e-6
		},
		countGen, priceGen, qtyGen,
	))

	properties.Property("scaling quantities preserves the average", prop.ForAll(
		func(count int, basePrice, baseQty, factor float64) bool {
			execs := make([]models.Execution, count)
			scaled := make([]models.Execution, count)
			for i := range execs {
				price := basePrice * (1 + float64(i)*0.01)
				qty := baseQty + float64(i)
				execs[i] = models.Execution{Price: price, Qty: qty}
				scaled[i] = models.Execution{Price: price, Qty: qty * factor}
			}

			a, b := WeightedAvgPrice(execs), WeightedAvgPrice(scaled)
			return math.Abs(a-b) < 1e-6*math.Max(1, math.Abs(a))
		},
		countGen, priceGen, qtyGen, gen.Float64Range(0.5, 10.0),
	))

	properties.TestingRun(t)
}

// Property: for any trade, total P&L equals realized plus unrealized,
// remaining shares never go negative, and a position with no remaining
// shares carries no unrealized P&L.
func TestProperty_PositionInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("total equals realized plus unrealized", prop.ForAll(
		func(entryPrice, currentPrice, entryQty, soldFraction, commission float64) bool {
			trade := syntheticTrade(entryPrice, currentPrice, entryQty, soldFraction, commission)
			pos := Compute(trade)

			if math.Abs(pos.TotalPnL-(pos.RealizedPnL+pos.UnrealizedPnL)) > 1e-6 {
				return false
			}
			if pos.RemainingShares < 0 {
				return false
			}
			if pos.RemainingShares == 0 && pos.UnrealizedPnL != 0 {
				return false
			}
			return true
		},
		gen.Float64Range(1.0, 1000.0),
		gen.Float64Range(1.0, 1000.0),
		gen.Float64Range(1.0, 10000.0),
		gen.Float64Range(0.0, 1.0),
		gen.Float64Range(0.0, 10.0),
	))

	properties.Property("entry quantity is conserved", prop.ForAll(
		func(entryPrice, currentPrice, entryQty, soldFraction float64) bool {
			trade := syntheticTrade(entryPrice, currentPrice, entryQty, soldFraction, 0)
			pos := Compute(trade)
			return math.Abs(pos.SoldShares+pos.RemainingShares-pos.EntryQty) < 1e-6
		},
		gen.Float64Range(1.0, 1000.0),
		gen.Float64Range(1.0, 1000.0),
		gen.Float64Range(1.0, 10000.0),
		gen.Float64Range(0.0, 1.0),
	))

	properties.TestingRun(t)
}

// syntheticTrade builds a filled long trade with one entry fill and a
// partial exit at 5% above entry.
func syntheticTrade(entryPrice, currentPrice, entryQty, soldFraction, commission float64) *models.Trade {
	exitPrice := entryPrice * 1.05
	soldQty := entryQty * soldFraction

	plans := []models.ScalePlan{
		{
			PlanType:  models.PlanEntry,
			Status:    models.PlanFilled,
			TradeType: models.Long,
			Executions: []models.Execution{
				{Price: entryPrice, Qty: entryQty, Side: models.SideBuy},
			},
		},
	}
	if soldQty > 0 {
		plans = append(plans, models.ScalePlan{
			PlanType: models.PlanTarget,
			Status:   models.PlanFilled,
			Executions: []models.Execution{
				{Price: exitPrice, Qty: soldQty, Commission: commission, Side: models.SideSell},
			},
		})
	}

	return &models.Trade{
		Symbol:       "SYN",
		Status:       models.TradeOpen,
		CurrentPrice: currentPrice,
		ScalePlans:   plans,
	}
}
