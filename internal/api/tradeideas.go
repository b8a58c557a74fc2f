package api

import (
	"context"
	"net/http"

	"tradelog/internal/models"
)

const tradeIdeasPath = "/trade-ideas"

// ListTradeIdeas fetches the watchlist of trade ideas.
func (c *Client) ListTradeIdeas(ctx context.Context) ([]models.TradeIdea, error) {
	var ideas []models.TradeIdea
	if err := c.do(ctx, http.MethodGet, tradeIdeasPath, nil, nil, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// CreateTradeIdea creates a trade idea.
func (c *Client) CreateTradeIdea(ctx context.Context, payload *models.TradeIdeaCreate) (*models.TradeIdea, error) {
	var idea models.TradeIdea
	if err := c.do(ctx, http.MethodPost, tradeIdeasPath, nil, payload, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

// UpdateTradeIdea applies a partial update to a trade idea.
func (c *Client) UpdateTradeIdea(ctx context.Context, id string, payload *models.TradeIdeaUpdate) (*models.TradeIdea, error) {
	var idea models.TradeIdea
	if err := c.do(ctx, http.MethodPatch, idPath(tradeIdeasPath, id), nil, payload, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

// DeleteTradeIdea deletes a trade idea.
func (c *Client) DeleteTradeIdea(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath(tradeIdeasPath, id), nil, nil, nil)
}
