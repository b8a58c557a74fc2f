package models

import "time"

// PlanType categorizes a scale plan within a trade.
type PlanType string

const (
	PlanEntry    PlanType = "entry"
	PlanTarget   PlanType = "target"
	PlanStopLoss PlanType = "stop_loss"
)

// OrderType is the broker order type behind a scale plan.
type OrderType string

const (
	OrderMarket    OrderType = "market"
	OrderLimit     OrderType = "limit"
	OrderStop      OrderType = "stop"
	OrderStopLimit OrderType = "stop_limit"
)

// PlanStatus represents the fill state of a scale plan.
type PlanStatus string

const (
	PlanPlanned         PlanStatus = "planned"
	PlanCancelled       PlanStatus = "cancelled"
	PlanFilled          PlanStatus = "filled"
	PlanPartiallyFilled PlanStatus = "filled_partial"
	PlanTriggered       PlanStatus = "triggered"
)

// Direction is the side of the market a trade is taken on.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// ScalePlan is a planned order (entry, profit target or stop loss)
// belonging to exactly one trade. Price fields are pointers because
// which of them are set depends on the order type.
type ScalePlan struct {
	ID           string      `json:"id"`
	TradeID      string      `json:"tradeId"`
	Label        string      `json:"label"`
	PlanType     PlanType    `json:"planType"`
	OrderType    OrderType   `json:"orderType"`
	Status       PlanStatus  `json:"status"`
	TradeType    Direction   `json:"tradeType"`
	Qty          float64     `json:"qty"`
	TargetPrice  *float64    `json:"targetPrice,omitempty"`
	LimitPrice   *float64    `json:"limitPrice,omitempty"`
	StopPrice    *float64    `json:"stopPrice,omitempty"`
	GoodTillDate *time.Time  `json:"goodTillDate,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Executions   []Execution `json:"executions"`
}

// ScalePlanCreate is the payload for creating a scale plan. When created
// standalone (outside a trade submission) the owning trade is set via
// LiveTradeID.
type ScalePlanCreate struct {
	LiveTradeID  string     `json:"liveTradeId,omitempty"`
	Label        string     `json:"label"`
	PlanType     PlanType   `json:"planType"`
	OrderType    OrderType  `json:"orderType"`
	TradeType    Direction  `json:"tradeType"`
	Qty          float64    `json:"qty"`
	TargetPrice  *float64   `json:"targetPrice,omitempty"`
	LimitPrice   *float64   `json:"limitPrice,omitempty"`
	StopPrice    *float64   `json:"stopPrice,omitempty"`
	GoodTillDate *time.Time `json:"goodTillDate,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// ScalePlanUpdate is a partial update; nil fields are left untouched.
type ScalePlanUpdate struct {
	Label        *string     `json:"label,omitempty"`
	PlanType     *PlanType   `json:"planType,omitempty"`
	OrderType    *OrderType  `json:"orderType,omitempty"`
	Status       *PlanStatus `json:"status,omitempty"`
	Qty          *float64    `json:"qty,omitempty"`
	TargetPrice  *float64    `json:"targetPrice,omitempty"`
	LimitPrice   *float64    `json:"limitPrice,omitempty"`
	StopPrice    *float64    `json:"stopPrice,omitempty"`
	GoodTillDate *time.Time  `json:"goodTillDate,omitempty"`
	Notes        *string     `json:"notes,omitempty"`
}
