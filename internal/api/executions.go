package api

import (
	"context"
	"net/http"
	"net/url"

	"tradelog/internal/models"
)

const executionsPath = "/executions"

// ListExecutions fetches executions, optionally filtered to one trade.
func (c *Client) ListExecutions(ctx context.Context, tradeID string) ([]models.Execution, error) {
	var query url.Values
	if tradeID != "" {
		query = url.Values{"tradeId": {tradeID}}
	}

	var execs []models.Execution
	if err := c.do(ctx, http.MethodGet, executionsPath, query, nil, &execs); err != nil {
		return nil, err
	}
	return execs, nil
}

// GetExecution fetches a single execution by id.
func (c *Client) GetExecution(ctx context.Context, id string) (*models.Execution, error) {
	var exec models.Execution
	if err := c.do(ctx, http.MethodGet, idPath(executionsPath, id), nil, nil, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

// CreateExecution records a fill.
func (c *Client) CreateExecution(ctx context.Context, payload *models.ExecutionCreate) (*models.Execution, error) {
	var exec models.Execution
	if err := c.do(ctx, http.MethodPost, executionsPath, nil, payload, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

// ExecutePlan records a fill through the settlement endpoint, which
// also advances the owning scale plan's status.
func (c *Client) ExecutePlan(ctx context.Context, payload *models.ExecutionCreate) (*models.Execution, error) {
	var exec models.Execution
	if err := c.do(ctx, http.MethodPost, executionsPath+"/execute", nil, payload, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

// UpdateExecution applies a partial update to an execution record.
func (c *Client) UpdateExecution(ctx context.Context, id string, payload *models.ExecutionUpdate) (*models.Execution, error) {
	var exec models.Execution
	if err := c.do(ctx, http.MethodPatch, idPath(executionsPath, id), nil, payload, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

// DeleteExecution deletes an execution record.
func (c *Client) DeleteExecution(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, idPath(executionsPath, id), nil, nil, nil)
}
