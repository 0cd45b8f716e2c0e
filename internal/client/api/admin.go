package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mkresic/karijera/internal/client/models"
)

// Admin faculty/association management. The backend rejects non-admin
// tokens; the client sends the calls as-is.

func (c *HTTPClient) AdminFaculties(ctx context.Context) ([]models.Faculty, error) {
	resp, err := doJSON[models.ListResponse[models.Faculty]](ctx, c, http.MethodGet, "/api/admin/faculties", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) AdminCreateFaculty(ctx context.Context, draft FacultyDraft) (*models.Faculty, error) {
	resp, err := doJSON[models.ItemResponse[models.Faculty]](ctx, c, http.MethodPost, "/api/admin/faculties", nil, draft)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (c *HTTPClient) AdminUpdateFaculty(ctx context.Context, slug string, draft FacultyDraft) (*models.Faculty, error) {
	resp, err := doJSON[models.ItemResponse[models.Faculty]](ctx, c, http.MethodPut, "/api/admin/faculties/"+url.PathEscape(slug), nil, draft)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (c *HTTPClient) AdminDeleteFaculty(ctx context.Context, slug string) error {
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodDelete, "/api/admin/faculties/"+url.PathEscape(slug), nil, nil)
	return err
}

func (c *HTTPClient) AdminAssociations(ctx context.Context) ([]models.Association, error) {
	resp, err := doJSON[models.ListResponse[models.Association]](ctx, c, http.MethodGet, "/api/admin/associations", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) AdminUpdateAssociation(ctx context.Context, id int64, draft AssociationDraft) (*models.Association, error) {
	resp, err := doJSON[models.ItemResponse[models.Association]](ctx, c, http.MethodPut, fmt.Sprintf("/api/admin/associations/%d", id), nil, draft)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (c *HTTPClient) AdminDeleteAssociation(ctx context.Context, id int64) error {
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodDelete, fmt.Sprintf("/api/admin/associations/%d", id), nil, nil)
	return err
}

// CreateAssociation is the faculty-facing create; admins use the update and
// delete variants above for maintenance.
func (c *HTTPClient) CreateAssociation(ctx context.Context, draft AssociationDraft) (*models.Association, error) {
	resp, err := doJSON[models.ItemResponse[models.Association]](ctx, c, http.MethodPost, "/api/associations", nil, draft)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}
