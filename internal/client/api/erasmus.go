package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mkresic/karijera/internal/client/models"
)

func (c *HTTPClient) ErasmusProjects(ctx context.Context, filter ErasmusFilter) ([]models.ErasmusProject, error) {
	q := url.Values{}
	if filter.Faculty != "" {
		q.Set("faculty", filter.Faculty)
	}
	if filter.FieldOfStudy != "" {
		q.Set("fieldOfStudy", filter.FieldOfStudy)
	}
	resp, err := doJSON[models.ListResponse[models.ErasmusProject]](ctx, c, http.MethodGet, "/api/erasmus", q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) ErasmusProject(ctx context.Context, id int64) (*models.ErasmusProject, error) {
	resp, err := doJSON[models.ItemResponse[models.ErasmusProject]](ctx, c, http.MethodGet, fmt.Sprintf("/api/erasmus/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// CreateErasmusProject publishes an exchange project. Faculty accounts only.
func (c *HTTPClient) CreateErasmusProject(ctx context.Context, draft ErasmusDraft) (*models.ErasmusProject, error) {
	resp, err := doJSON[models.ItemResponse[models.ErasmusProject]](ctx, c, http.MethodPost, "/api/erasmus", nil, draft)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (c *HTTPClient) UpdateErasmusProject(ctx context.Context, id int64, draft ErasmusDraft) (*models.ErasmusProject, error) {
	resp, err := doJSON[models.ItemResponse[models.ErasmusProject]](ctx, c, http.MethodPut, fmt.Sprintf("/api/erasmus/%d", id), nil, draft)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (c *HTTPClient) DeleteErasmusProject(ctx context.Context, id int64) error {
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodDelete, fmt.Sprintf("/api/erasmus/%d", id), nil, nil)
	return err
}
