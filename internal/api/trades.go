package api

import (
	"context"
	"net/http"

	"tradelog/internal/models"
)

const tradesPath = "/trades"

// ListTrades fetches all trades with their scale plans and executions.
func (c *Client) ListTrades(ctx context.Context) ([]models.Trade, error) {
	var trades []models.Trade
	if err := c.do(ctx, http.MethodGet, tradesPath, nil, nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// CreateTrade creates a trade together with its scale plans.
func (c *Client) CreateTrade(ctx context.Context, payload *models.TradeCreate) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodPost, tradesPath, nil, payload, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// ReplaceTrade performs a full replace (PUT) of a trade.
func (c *Client) ReplaceTrade(ctx context.Context, id string, payload *models.TradeCreate) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodPut, idPath(tradesPath, id), nil, payload, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// UpdateTrade applies a partial update (PATCH) to a trade.
func (c *Client) UpdateTrade(ctx context.Context, id string, payload *models.TradeUpdate) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodPatch, idPath(tradesPath, id), nil, payload, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// DeleteTrade deletes a trade; the backend cascades to its scale plans
// and executions.
func (c *Client) DeleteTrade(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath(tradesPath, id), nil, nil, nil)
}

// InvalidateTrade marks a trade invalidated.
func (c *Client) InvalidateTrade(ctx context.Context, id string) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodPost, idPath(tradesPath, id)+"/invalidate", nil, nil, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}
