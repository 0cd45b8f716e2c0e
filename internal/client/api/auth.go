package api

import (
	"context"
	"net/http"

	"github.com/mkresic/karijera/internal/client/models"
)

// authEnvelope mirrors the backend auth response.
type authEnvelope struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Token       string       `json:"token"`
	User        *models.User `json:"user"`
	RequiresAAI bool         `json:"requires_aai"`
	AAILoginURL string       `json:"aai_login_url"`
}

func resultFromEnvelope(env *authEnvelope, fallback string) (*LoginResult, error) {
	if env.RequiresAAI && !env.Success {
		return &LoginResult{Outcome: LoginAAIRedirect, AAILoginURL: env.AAILoginURL}, nil
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return nil, &Error{StatusCode: http.StatusOK, Message: msg}
	}
	if env.Token == "" || env.User == nil {
		return nil, &Error{StatusCode: http.StatusOK, Message: fallback + ": response missing token or user"}
	}
	return &LoginResult{Outcome: LoginOK, Token: env.Token, User: env.User}, nil
}

// Login authenticates with e-mail and password. The result is three-way:
// a token+user pair, an AAI redirect the caller must follow in a browser,
// or an error carrying the backend's message.
func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	env, err := doJSON[authEnvelope](ctx, c, http.MethodPost, "/api/auth/login", nil, creds)
	if err != nil {
		return nil, err
	}
	return resultFromEnvelope(env, "login failed")
}

// Register creates an account and, like Login, yields an authenticated
// session in one round trip.
func (c *HTTPClient) Register(ctx context.Context, reg Registration) (*LoginResult, error) {
	env, err := doJSON[authEnvelope](ctx, c, http.MethodPost, "/api/auth/register", nil, reg)
	if err != nil {
		return nil, err
	}
	return resultFromEnvelope(env, "registration failed")
}

// CurrentUser validates the stored token and returns the fresh identity.
// The backend answers with the bare user object, not the usual envelope.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	return doJSON[models.User](ctx, c, http.MethodGet, "/api/auth/me", nil, nil)
}

// Logout tells the backend the session is over. Local cleanup is the session
// store's job; callers there treat any error here as advisory.
func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := doJSON[models.StatusResponse](ctx, c, http.MethodPost, "/api/auth/logout", nil, nil)
	return err
}

// GoogleLoginURL is the browser entry point for the Google OAuth flow. The
// eventual callback carries a token and an URL-encoded user back to us.
func (c *HTTPClient) GoogleLoginURL() string {
	return c.baseURL + "/api/oauth/login/google"
}
