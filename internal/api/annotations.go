package api

import (
	"context"
	"net/http"

	"tradelog/internal/models"
)

const annotationsPath = "/annotations"

// CreateAnnotation appends a note or catalyst entry to a trade.
func (c *Client) CreateAnnotation(ctx context.Context, payload *models.AnnotationCreate) (*models.Annotation, error) {
	var a models.Annotation
	if err := c.do(ctx, http.MethodPost, annotationsPath, nil, payload, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
