package models

import "time"

// IdeaStatus represents the lifecycle state of a trade idea.
type IdeaStatus string

const (
	IdeaWatching    IdeaStatus = "watching"
	IdeaInProgress  IdeaStatus = "in-progress"
	IdeaInvalidated IdeaStatus = "invalidated"
	IdeaLive        IdeaStatus = "live"
	IdeaClosed      IdeaStatus = "closed"
)

// TradeIdea is a pre-trade watchlist candidate. Once promoted into a
// live trade it only ever changes through status transitions.
type TradeIdea struct {
	ID           string     `json:"id"`
	Symbol       string     `json:"symbol"`
	Setup        string     `json:"setup"`
	Rating       int        `json:"rating"`
	Status       IdeaStatus `json:"status"`
	EntryMin     float64    `json:"entryMin"`
	EntryMax     *float64   `json:"entryMax,omitempty"`
	Stop         *float64   `json:"stop,omitempty"`
	TargetPrices []float64  `json:"targetPrices"`
	RRRatio      *float64   `json:"rrRatio,omitempty"`
	Catalysts    string     `json:"catalysts,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	IdeaDate     time.Time  `json:"ideaDate"`
}

// TradeIdeaCreate is the payload for creating a trade idea.
type TradeIdeaCreate struct {
	Symbol       string    `json:"symbol"`
	Setup        string    `json:"setup"`
	Rating       int       `json:"rating"`
	EntryMin     float64   `json:"entryMin"`
	EntryMax     *float64  `json:"entryMax,omitempty"`
	Stop         *float64  `json:"stop,omitempty"`
	TargetPrices []float64 `json:"targetPrices"`
	RRRatio      *float64  `json:"rrRatio,omitempty"`
	Catalysts    string    `json:"catalysts,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	IdeaDate     time.Time `json:"ideaDate"`
}

// TradeIdeaUpdate is a partial update; nil fields are left untouched.
type TradeIdeaUpdate struct {
	Symbol       *string     `json:"symbol,omitempty"`
	Setup        *string     `json:"setup,omitempty"`
	Rating       *int        `json:"rating,omitempty"`
	Status       *IdeaStatus `json:"status,omitempty"`
	EntryMin     *float64    `json:"entryMin,omitempty"`
	EntryMax     *float64    `json:"entryMax,omitempty"`
	Stop         *float64    `json:"stop,omitempty"`
	TargetPrices []float64   `json:"targetPrices,omitempty"`
	RRRatio      *float64    `json:"rrRatio,omitempty"`
	Catalysts    *string     `json:"catalysts,omitempty"`
	Notes        *string     `json:"notes,omitempty"`
}
