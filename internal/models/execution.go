package models

import "time"

// ExecutionSide is the side of a fill.
type ExecutionSide string

const (
	SideBuy  ExecutionSide = "buy"
	SideSell ExecutionSide = "sell"
)

// ExecutionSource records how a fill entered the journal.
type ExecutionSource string

const (
	SourceManual    ExecutionSource = "MANUAL"
	SourceAutomated ExecutionSource = "AUTOMATED"
	SourceImport    ExecutionSource = "IMPORT"
)

// Execution is an immutable fill against a scale plan. Once settled it
// is only ever referenced, never mutated by the client.
type Execution struct {
	ID          string          `json:"id"`
	TradeID     string          `json:"tradeId"`
	ScalePlanID string          `json:"scalePlanId"`
	Price       float64         `json:"price"`
	Qty         float64         `json:"qty"`
	Commission  float64         `json:"commission"`
	Side        ExecutionSide   `json:"side"`
	Source      ExecutionSource `json:"source"`
	Notes       string          `json:"notes,omitempty"`
	ExecutedAt  time.Time       `json:"executedAt"`
}

// ExecutionCreate is the payload for recording a fill; the backend
// assigns the id and timestamp.
type ExecutionCreate struct {
	TradeID     string          `json:"tradeId"`
	ScalePlanID string          `json:"scalePlanId"`
	Price       float64         `json:"price"`
	Qty         float64         `json:"qty"`
	Commission  float64         `json:"commission"`
	Side        ExecutionSide   `json:"side"`
	Source      ExecutionSource `json:"source"`
	Notes       string          `json:"notes,omitempty"`
}

// ExecutionUpdate is a partial update; nil fields are left untouched.
type ExecutionUpdate struct {
	Price      *float64         `json:"price,omitempty"`
	Qty        *float64         `json:"qty,omitempty"`
	Commission *float64         `json:"commission,omitempty"`
	Side       *ExecutionSide   `json:"side,omitempty"`
	Source     *ExecutionSource `json:"source,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}
