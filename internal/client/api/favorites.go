package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mkresic/karijera/internal/client/models"
)

func (c *HTTPClient) AddFavoriteFaculty(ctx context.Context, slug string) (*models.FavoriteFaculty, error) {
	body := map[string]string{"facultySlug": slug}
	resp, err := doJSON[models.ItemResponse[models.FavoriteFaculty]](ctx, c, http.MethodPost, "/api/favorites/faculties", nil, body)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (c *HTTPClient) FavoriteFaculties(ctx context.Context) ([]models.FavoriteFaculty, error) {
	resp, err := doJSON[models.ListResponse[models.FavoriteFaculty]](ctx, c, http.MethodGet, "/api/favorites/faculties", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) RemoveFavoriteFaculty(ctx context.Context, slug string) error {
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodDelete, "/api/favorites/faculties/"+url.PathEscape(slug), nil, nil)
	return err
}

// IsFavoriteFaculty reports whether the faculty is already bookmarked.
func (c *HTTPClient) IsFavoriteFaculty(ctx context.Context, slug string) (bool, error) {
	type checkResponse struct {
		Success    bool `json:"success"`
		IsFavorite bool `json:"isFavorite"`
	}
	resp, err := doJSON[checkResponse](ctx, c, http.MethodGet, "/api/favorites/faculties/"+url.PathEscape(slug)+"/check", nil, nil)
	if err != nil {
		return false, err
	}
	return resp.IsFavorite, nil
}
