package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mkresic/karijera/internal/client/models"
)

// Faculties lists faculties, optionally filtered by a search query.
func (c *HTTPClient) Faculties(ctx context.Context, query string) ([]models.Faculty, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	resp, err := doJSON[models.ListResponse[models.Faculty]](ctx, c, http.MethodGet, "/api/faculties", q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) Faculty(ctx context.Context, slug string) (*models.Faculty, error) {
	resp, err := doJSON[models.ItemResponse[models.Faculty]](ctx, c, http.MethodGet, "/api/faculties/"+url.PathEscape(slug), nil, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// Associations lists associations filtered by faculty and/or query.
func (c *HTTPClient) Associations(ctx context.Context, filter AssociationFilter) ([]models.Association, error) {
	q := url.Values{}
	if filter.Faculty != "" {
		q.Set("faculty", filter.Faculty)
	}
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	resp, err := doJSON[models.ListResponse[models.Association]](ctx, c, http.MethodGet, "/api/associations", q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) Association(ctx context.Context, slug string) (*models.Association, error) {
	resp, err := doJSON[models.ItemResponse[models.Association]](ctx, c, http.MethodGet, "/api/associations/"+url.PathEscape(slug), nil, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// Search runs the cross-resource search over associations and faculties.
func (c *HTTPClient) Search(ctx context.Context, query, faculty string) (*models.SearchResults, error) {
	q := url.Values{}
	q.Set("q", query)
	if faculty != "" {
		q.Set("faculty", faculty)
	}
	return doJSON[models.SearchResults](ctx, c, http.MethodGet, "/api/search", q, nil)
}
