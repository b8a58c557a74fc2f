// Package models defines the journal's domain entities and their wire format.
package models

import "time"

// TradeStatus represents the lifecycle state of a trade.
type TradeStatus string

const (
	TradeOpen        TradeStatus = "open"
	TradeWatching    TradeStatus = "watching"
	TradeClosed      TradeStatus = "closed"
	TradeInvalidated TradeStatus = "invalidated"
)

// Outcome classifies the realized result of a closed trade.
type Outcome string

const (
	OutcomeBigWin    Outcome = "big_win"
	OutcomeWin       Outcome = "win"
	OutcomeBreakEven Outcome = "break_even"
	OutcomeLoss      Outcome = "loss"
	OutcomeBigLoss   Outcome = "big_loss"
	OutcomePending   Outcome = "pending"
)

// Trade represents a live trade with its scale plans, executions and notes.
// The backend is the source of truth; the client never re-parents the
// owned records.
type Trade struct {
	ID          string       `json:"id"`
	Symbol      string       `json:"symbol"`
	Setup       string       `json:"setup"`
	Rating      float64      `json:"rating"`
	Status      TradeStatus  `json:"status"`
	Outcome     Outcome      `json:"outcome,omitempty"`
	IdeaDate    time.Time    `json:"ideaDate"`
	EnterDate   *time.Time   `json:"enterDate,omitempty"`
	ExitDate    *time.Time   `json:"exitDate,omitempty"`
	ScalePlans  []ScalePlan  `json:"scalePlans"`
	Annotations []Annotation `json:"annotations"`

	// Current market data for display
	CurrentPrice  float64 `json:"currentPrice"`
	PriceChange   float64 `json:"priceChange,omitempty"`
	PercentChange float64 `json:"percentChange,omitempty"`
}

// Direction reports the trade direction taken from its entry plan.
// Trades without an entry plan default to long.
func (t *Trade) Direction() Direction {
	for i := range t.ScalePlans {
		if t.ScalePlans[i].PlanType == PlanEntry {
			return t.ScalePlans[i].TradeType
		}
	}
	return Long
}

// TradeCreate is the payload for creating a trade, scale plans included.
type TradeCreate struct {
	Symbol     string            `json:"symbol"`
	Setup      string            `json:"setup"`
	Rating     float64           `json:"rating"`
	EnterDate  *time.Time        `json:"enterDate,omitempty"`
	ScalePlans []ScalePlanCreate `json:"scalePlans"`
}

// TradeUpdate is a partial update; nil fields are left untouched.
type TradeUpdate struct {
	Symbol    *string      `json:"symbol,omitempty"`
	Setup     *string      `json:"setup,omitempty"`
	Rating    *float64     `json:"rating,omitempty"`
	Status    *TradeStatus `json:"status,omitempty"`
	Outcome   *Outcome     `json:"outcome,omitempty"`
	EnterDate *time.Time   `json:"enterDate,omitempty"`
	ExitDate  *time.Time   `json:"exitDate,omitempty"`
	IdeaDate  *time.Time   `json:"ideaDate,omitempty"`
}
