package validate

import (
	"fmt"

	"tradelog/internal/models"
)

// Messages for the terminal entry-plan-count failures.
const (
	MsgEntryPlanRequired = "one entry plan is required"
	MsgEntryPlanSingle   = "only one entry plan is allowed"
)

// Trade validates a full trade submission, scale plans included.
func Trade(sub *models.TradeCreate) Issues {
	var issues Issues

	if sub.Symbol == "" {
		issues = append(issues, Issue{Path: "symbol", Message: "symbol is required"})
	}
	if sub.Setup == "" {
		issues = append(issues, Issue{Path: "setup", Message: "setup is required"})
	}
	if sub.Rating < 1 {
		issues = append(issues, Issue{Path: "rating", Message: "rating is required"})
	}

	entryIdx := -1
	entryCount := 0
	for i := range sub.ScalePlans {
		if sub.ScalePlans[i].PlanType == models.PlanEntry {
			entryCount++
			entryIdx = i
		}
	}

	// Terminal check: without exactly one entry plan the price
	// comparisons below have no reference point.
	switch {
	case entryCount == 0:
		return append(issues, Issue{Path: "scalePlans", Message: MsgEntryPlanRequired})
	case entryCount > 1:
		return append(issues, Issue{Path: "scalePlans", Message: MsgEntryPlanSingle})
	}

	entry := &sub.ScalePlans[entryIdx]
	issues = append(issues, checkEntryPrices(entry, entryIdx)...)
	issues = append(issues, checkTargets(sub.ScalePlans, entry, entryIdx)...)

	return issues
}

// checkEntryPrices enforces the limit/stop price direction on the entry
// plan: long entries must have the limit above the stop, short entries
// the inverse. Skipped unless both prices are present.
func checkEntryPrices(entry *models.ScalePlanCreate, idx int) Issues {
	if entry.LimitPrice == nil || entry.StopPrice == nil {
		return nil
	}

	limit, stop := *entry.LimitPrice, *entry.StopPrice
	if entry.TradeType == models.Short {
		if limit >= stop {
			return Issues{{
				Path:    planPath(idx, "limitPrice"),
				Message: fmt.Sprintf("limit price (%.2f) must be below stop price (%.2f) for short trades", limit, stop),
			}}
		}
		return nil
	}

	if limit <= stop {
		return Issues{{
			Path:    planPath(idx, "limitPrice"),
			Message: fmt.Sprintf("limit price (%.2f) must exceed stop price (%.2f) for long trades", limit, stop),
		}}
	}
	return nil
}

// checkTargets validates every TARGET plan: the target price must be
// present and on the profitable side of the entry price, and the
// cumulative target quantity must not exceed the entry quantity.
func checkTargets(plans []models.ScalePlanCreate, entry *models.ScalePlanCreate, entryIdx int) Issues {
	var issues Issues
	var cumQty float64

	for i := range plans {
		p := &plans[i]
		if p.PlanType != models.PlanTarget {
			continue
		}

		if p.TargetPrice == nil {
			issues = append(issues, Issue{
				Path:    planPath(i, "targetPrice"),
				Message: "target price is required",
			})
		}

		cumQty += p.Qty
		if cumQty > entry.Qty {
			issues = append(issues, Issue{
				Path:    planPath(i, "qty"),
				Message: fmt.Sprintf("total target quantity (%.2f) exceeds entry quantity (%.2f)", cumQty, entry.Qty),
			})
		}

		if p.TargetPrice != nil && entry.LimitPrice != nil {
			issues = append(issues, checkTargetPrice(p, i, entry)...)
		}
	}

	return issues
}

func checkTargetPrice(p *models.ScalePlanCreate, idx int, entry *models.ScalePlanCreate) Issues {
	target, entryPrice := *p.TargetPrice, *entry.LimitPrice

	if entry.TradeType == models.Short {
		if target > entryPrice {
			return Issues{{
				Path:    planPath(idx, "targetPrice"),
				Message: fmt.Sprintf("target price must be at or below the entry price (%.2f) for short trades", entryPrice),
			}}
		}
		return nil
	}

	if target < entryPrice {
		return Issues{{
			Path:    planPath(idx, "targetPrice"),
			Message: fmt.Sprintf("target price must be at or above the entry price (%.2f)", entryPrice),
		}}
	}
	return nil
}
