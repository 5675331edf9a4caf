package rynko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Generate submits a single-document generation request and returns the job
// payload verbatim, including id, status, computed filename, and timestamps.
func (c *Client) Generate(ctx context.Context, req GenerationRequest) (*DocumentJob, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var job DocumentJob
	endpoint := c.cfg.DocumentsEndpoint() + "/generate"
	if err := c.do(ctx, http.MethodPost, endpoint, nil, req, &job); err != nil {
		return nil, fmt.Errorf("document generation failed: %w", err)
	}
	return &job, nil
}

// GenerateBatch submits a batch generation request.
func (c *Client) GenerateBatch(ctx context.Context, req BatchRequest) (*BatchJob, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var batch BatchJob
	endpoint := c.cfg.DocumentsEndpoint() + "/generate"
	if err := c.do(ctx, http.MethodPost, endpoint, nil, req, &batch); err != nil {
		return nil, fmt.Errorf("batch generation failed: %w", err)
	}
	return &batch, nil
}

// GetDocument fetches one document job by id.
func (c *Client) GetDocument(ctx context.Context, jobID string) (*DocumentJob, error) {
	var job DocumentJob
	endpoint := c.cfg.DocumentsEndpoint() + "/" + url.PathEscape(jobID)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &job); err != nil {
		return nil, fmt.Errorf("failed to get document job %s: %w", jobID, err)
	}
	return &job, nil
}

// ListDocuments lists document jobs matching the query.
func (c *Client) ListDocuments(ctx context.Context, q DocumentQuery) ([]DocumentJob, error) {
	query := url.Values{}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	if q.TemplateID != "" {
		query.Set("templateId", q.TemplateID)
	}
	if q.Format != "" {
		query.Set("format", q.Format)
	}
	if q.DateFrom != "" {
		query.Set("dateFrom", q.DateFrom)
	}
	if q.DateTo != "" {
		query.Set("dateTo", q.DateTo)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		query.Set("sort", q.Sort)
	}
	if q.Order != "" {
		query.Set("order", q.Order)
	}

	var out listEnvelope[DocumentJob]
	if err := c.do(ctx, http.MethodGet, c.cfg.DocumentsEndpoint(), query, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list document jobs: %w", err)
	}
	return out.Data, nil
}
