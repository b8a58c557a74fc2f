package api

import (
	"context"
	"net/http"

	"tradelog/internal/models"
)

const scalePlansPath = "/scale-plans"

// CreateScalePlan creates a scale plan on an existing trade; the owning
// trade travels in the payload's liveTradeId field.
func (c *Client) CreateScalePlan(ctx context.Context, payload *models.ScalePlanCreate) (*models.ScalePlan, error) {
	var plan models.ScalePlan
	if err := c.do(ctx, http.MethodPost, scalePlansPath, nil, payload, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateScalePlan applies a partial update to a scale plan.
func (c *Client) UpdateScalePlan(ctx context.Context, id string, payload *models.ScalePlanUpdate) (*models.ScalePlan, error) {
	var plan models.ScalePlan
	if err := c.do(ctx, http.MethodPatch, idPath(scalePlansPath, id), nil, payload, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeleteScalePlan deletes a scale plan.
func (c *Client) DeleteScalePlan(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath(scalePlansPath, id), nil, nil, nil)
}
