package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mkresic/karijera/internal/client/models"
)

// SendInquiry delivers a contact-form message to a faculty. Works without a
// session; sender identity is part of the draft.
func (c *HTTPClient) SendInquiry(ctx context.Context, draft InquiryDraft) (*models.Inquiry, error) {
	resp, err := doJSON[models.ItemResponse[models.Inquiry]](ctx, c, http.MethodPost, "/api/inquiries/faculties", nil, draft)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// MyInquiries lists the inquiries the logged-in user has sent.
func (c *HTTPClient) MyInquiries(ctx context.Context) ([]models.Inquiry, error) {
	resp, err := doJSON[models.ListResponse[models.Inquiry]](ctx, c, http.MethodGet, "/api/inquiries/my", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// FacultyInquiries lists inquiries addressed to a faculty, optionally
// filtered by status (pending, read, replied). Faculty accounts only.
func (c *HTTPClient) FacultyInquiries(ctx context.Context, slug, status string) ([]models.Inquiry, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	resp, err := doJSON[models.ListResponse[models.Inquiry]](ctx, c, http.MethodGet, "/api/inquiries/faculties/"+url.PathEscape(slug), q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) MarkInquiryRead(ctx context.Context, id int64) error {
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodPut, fmt.Sprintf("/api/inquiries/%d/read", id), nil, nil)
	return err
}

func (c *HTTPClient) ReplyToInquiry(ctx context.Context, id int64, message string) error {
	body := map[string]string{"message": message}
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodPost, fmt.Sprintf("/api/inquiries/%d/reply", id), nil, body)
	return err
}
