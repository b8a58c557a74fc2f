package journal

import (
	"context"

	"tradelog/internal/models"
)

// UndoFunc reverses a completed action by issuing a compensating
// update. It is only valid until the next mutation touches the same
// trade.
type UndoFunc func(ctx context.Context) error

// InvalidateTrade marks a trade invalidated and returns an undo handle
// that restores the trade's previous status. This is the one reversible
// mutation; everything else requires an explicit resubmission.
func (m *Mutations) InvalidateTrade(ctx context.Context, trade *models.Trade) (UndoFunc, error) {
	previous := trade.Status

	if _, err := m.client.InvalidateTrade(ctx, trade.ID); err != nil {
		m.handleError(ctx, err, "invalidate", "trade")
		return nil, err
	}

	m.handleSuccess(ctx, "Trade invalidated", KeyTrades, KeyLiveTrades)

	id := trade.ID
	undo := func(ctx context.Context) error {
		restored := previous
		_, err := m.updateTrade(ctx, id, &models.TradeUpdate{Status: &restored}, "Trade restored")
		return err
	}
	return undo, nil
}
