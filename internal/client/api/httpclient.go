package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mkresic/karijera/internal/logging"
)

// TokenProvider yields the bearer token to attach to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// HTTPClient is the concrete Client talking JSON over HTTP. The base URL is
// resolved once at startup and stays fixed for the process lifetime.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenProvider
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL. httpc may be nil, in
// which case a default client with no timeout is used (a hung request then
// blocks only its caller). tokens may be nil for a client that never
// authenticates.
func NewHTTPClient(baseURL string, httpc *http.Client, tokens TokenProvider, log logging.Logger) *HTTPClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		tokens:  tokens,
		log:     log,
	}
}

// envelopeProbe is the minimal decode used to classify any response before
// the caller-specific payload is unmarshalled.
type envelopeProbe struct {
	Success     *bool  `json:"success"`
	Message     string `json:"message"`
	ErrText     string `json:"error"`
	RequiresAAI bool   `json:"requires_aai"`
}

func (c *HTTPClient) newRequest(ctx context.Context, method, endpoint string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		switch {
		case err != nil:
			// A broken local store must not block the request;
			// it just goes out unauthenticated.
			if c.log != nil {
				c.log.Warn(ctx, "token read failed", "error", err)
			}
		case token != "":
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// doRaw performs the request and applies the shared response policy:
// transport failures and non-JSON bodies become ErrUnavailable, the AAI
// carve-out passes through untouched, and non-2xx statuses become *Error
// carrying the backend's message.
func (c *HTTPClient) doRaw(ctx context.Context, method, endpoint string, query url.Values, body any) ([]byte, error) {
	req, err := c.newRequest(ctx, method, endpoint, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, msg)
	}

	var p envelopeProbe
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	// Login may answer HTTP 200 with success=false plus requires_aai=true.
	// That is a "continue at the identity provider" signal, not a failure,
	// and must be handed back before any status check.
	if p.RequiresAAI && p.Success != nil && !*p.Success {
		return raw, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := p.Message
		if msg == "" {
			msg = p.ErrText
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	return raw, nil
}

// doJSON runs a request and unmarshals the response into T. It is a free
// function because methods cannot introduce type parameters.
func doJSON[T any](ctx context.Context, c *HTTPClient, method, endpoint string, query url.Values, body any) (*T, error) {
	raw, err := c.doRaw(ctx, method, endpoint, query, body)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	return out, nil
}
