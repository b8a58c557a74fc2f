// Package store provides local persistence of the last-known journal
// state so the CLI can render trades and ideas while offline.
package store

import (
	"context"
	"time"

	"tradelog/internal/models"
)

// SnapshotStore persists the most recent successful query results. The
// backend stays the source of truth; the snapshot is display-only.
type SnapshotStore interface {
	SaveTrades(ctx context.Context, trades []models.Trade) error
	LoadTrades(ctx context.Context) ([]models.Trade, error)
	SaveTradeIdeas(ctx context.Context, ideas []models.TradeIdea) error
	LoadTradeIdeas(ctx context.Context) ([]models.TradeIdea, error)
	LastSaved(entity string) time.Time
	Close() error
}

// Snapshot entity names used for freshness tracking.
const (
	EntityTrades     = "trades"
	EntityTradeIdeas = "trade_ideas"
)
