package api

import (
	"context"
	"net/http"

	"tradelog/internal/models"
)

// Legacy alias routes kept for older backend deployments; same payloads
// as /trades.
const liveTradesPath = "/live-trades"

// ListLiveTrades fetches trades through the legacy alias.
func (c *Client) ListLiveTrades(ctx context.Context) ([]models.Trade, error) {
	var trades []models.Trade
	if err := c.do(ctx, http.MethodGet, liveTradesPath, nil, nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// CreateLiveTrade creates a trade through the legacy alias.
func (c *Client) CreateLiveTrade(ctx context.Context, payload *models.TradeCreate) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodPost, liveTradesPath, nil, payload, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// UpdateLiveTrade applies a partial update through the legacy alias.
func (c *Client) UpdateLiveTrade(ctx context.Context, id string, payload *models.TradeUpdate) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodPatch, idPath(liveTradesPath, id), nil, payload, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// DeleteLiveTrade deletes a trade through the legacy alias.
func (c *Client) DeleteLiveTrade(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath(liveTradesPath, id), nil, nil, nil)
}
