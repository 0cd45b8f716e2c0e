package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mkresic/karijera/internal/client/models"
)

func (c *HTTPClient) CreateChatSession(ctx context.Context) (*models.ChatSession, error) {
	return doJSON[models.ChatSession](ctx, c, http.MethodPost, "/api/chatbot/session", nil, nil)
}

func (c *HTTPClient) DeleteChatSession(ctx context.Context, sessionID string) error {
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodDelete, "/api/chatbot/session/"+url.PathEscape(sessionID), nil, nil)
	return err
}

// SendChatMessage sends one message. With an empty sessionID the backend
// opens a new conversation and echoes its id in the reply.
func (c *HTTPClient) SendChatMessage(ctx context.Context, sessionID, message string) (*models.ChatReply, error) {
	body := map[string]string{"message": message}
	if sessionID != "" {
		body["session_id"] = sessionID
	}
	return doJSON[models.ChatReply](ctx, c, http.MethodPost, "/api/chatbot/send", nil, body)
}

func (c *HTTPClient) ChatHistory(ctx context.Context, sessionID string) (*models.ChatHistory, error) {
	q := url.Values{}
	if sessionID != "" {
		q.Set("session_id", sessionID)
	}
	return doJSON[models.ChatHistory](ctx, c, http.MethodGet, "/api/chatbot/history", q, nil)
}
