package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mkresic/karijera/internal/client/models"
)

// Jobs lists postings filtered by type and/or query.
func (c *HTTPClient) Jobs(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("type", string(filter.Type))
	}
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	resp, err := doJSON[models.ListResponse[models.Job]](ctx, c, http.MethodGet, "/api/jobs", q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) Job(ctx context.Context, id int64) (*models.Job, error) {
	resp, err := doJSON[models.ItemResponse[models.Job]](ctx, c, http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// CreateJob publishes a posting. Employer accounts only; the backend
// enforces the role.
func (c *HTTPClient) CreateJob(ctx context.Context, draft JobDraft) (*models.Job, error) {
	resp, err := doJSON[models.ItemResponse[models.Job]](ctx, c, http.MethodPost, "/api/jobs", nil, draft)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// Apply submits an application with an optional message to the employer.
func (c *HTTPClient) Apply(ctx context.Context, jobID int64, message string) (*models.JobApplication, error) {
	body := map[string]string{"message": message}
	resp, err := doJSON[models.ItemResponse[models.JobApplication]](ctx, c, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), nil, body)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// Applications lists applications. With jobID > 0 it returns the applicants
// of that posting (employer view); otherwise the caller's own applications.
func (c *HTTPClient) Applications(ctx context.Context, jobID int64) ([]models.JobApplication, error) {
	endpoint := "/api/jobs/applications"
	if jobID > 0 {
		endpoint = fmt.Sprintf("/api/jobs/%d/applications", jobID)
	}
	resp, err := doJSON[models.ListResponse[models.JobApplication]](ctx, c, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) UpdateApplicationStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	body := map[string]models.ApplicationStatus{"status": status}
	resp, err := doJSON[models.ItemResponse[models.JobApplication]](ctx, c, http.MethodPut, fmt.Sprintf("/api/jobs/applications/%d/status", applicationID), nil, body)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// EmailApplicant sends a message to an applicant through the backend's mail
// relay, so employer and applicant addresses never meet directly.
func (c *HTTPClient) EmailApplicant(ctx context.Context, applicationID int64, subject, message string) error {
	body := map[string]string{"subject": subject, "message": message}
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodPost, fmt.Sprintf("/api/jobs/applications/%d/send-email", applicationID), nil, body)
	return err
}
