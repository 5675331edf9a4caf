package rynko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/rynko-dev/zapier/internal/config"
)

// TokenSource returns the current access token for outbound requests. The
// host owns credential persistence; the client only reads through this
// accessor and never caches the value across calls, so a concurrent refresh
// is picked up on the next request.
type TokenSource func() string

// Client talks to the Rynko API. All dependencies are injected; there is no
// process-wide state.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     hclog.Logger
	token      TokenSource
	maxRetries uint64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The default client has
// no timeout of its own; cancellation is expected to arrive through the
// request context from the host.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the client logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) { c.logger = logger.Named("rynko") }
}

// WithMaxRetries bounds the retry budget for server errors and transport
// failures. Zero disables retries.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// New creates a Client. The token source may be nil for the token endpoint
// calls that precede any credentials.
func New(cfg *config.Config, token TokenSource, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     hclog.NewNullLogger(),
		token:      token,
		maxRetries: 2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config exposes the client configuration to the integration layer.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// do executes one bearer-authenticated JSON request against the API.
//
// Response classification: 401 becomes *RefreshError so the host can run its
// refresh-and-retry-once flow; other non-2xx become *APIError with the richest
// message the body offers. Server errors (5xx) and transport failures are
// retried with exponential backoff up to the configured budget; everything
// else is permanent.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	operation := func() error {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		c.decorate(req, payload != nil)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if err := classifyResponse(resp.StatusCode, respBody); err != nil {
			if resp.StatusCode >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}

		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
			}
		}

		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)

	if err := backoff.Retry(operation, bo); err != nil {
		return err
	}

	return nil
}

// decorate applies the standard outbound headers, including the bearer token
// read through the injected accessor.
func (c *Client) decorate(req *http.Request, hasBody bool) {
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
}

// classifyResponse maps a non-2xx status to the error taxonomy.
func classifyResponse(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	if status == http.StatusUnauthorized {
		return &RefreshError{Message: "Session expired. Please reconnect your Rynko account."}
	}

	return &APIError{StatusCode: status, Message: extractErrorMessage(body)}
}

// extractErrorMessage pulls the most specific message available from an
// error response body.
func extractErrorMessage(body []byte) string {
	var parsed struct {
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			return parsed.Message
		case parsed.ErrorDescription != "":
			return parsed.ErrorDescription
		case parsed.Error != "":
			return parsed.Error
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return "unknown error"
}
