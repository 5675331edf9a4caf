package rynko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Credentials is the OAuth token pair for one connected account. Only the
// functions in this file mutate or produce Credentials; everything else reads
// the access token through a TokenSource. The caller is responsible for
// persisting returned pairs.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	ObtainedAt   time.Time `json:"obtained_at,omitempty"`
}

// AuthHeader returns the Authorization header value for these credentials.
func (c Credentials) AuthHeader() string {
	return "Bearer " + c.AccessToken
}

// StaticTokenSource adapts stored credentials into a TokenSource.
func StaticTokenSource(creds Credentials) TokenSource {
	return func() string { return creds.AccessToken }
}

// GenerateVerifier produces a new PKCE code verifier for the authorization
// flow.
func GenerateVerifier() string {
	return oauth2.GenerateVerifier()
}

// AuthCodeURL builds the user-facing authorization URL with the PKCE
// challenge derived from verifier.
func (c *Client) AuthCodeURL(state, redirectURI, verifier string) string {
	conf := &oauth2.Config{
		ClientID:    c.cfg.ClientID,
		RedirectURL: redirectURI,
		Scopes:      c.cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.cfg.AuthorizeURL(),
			TokenURL: c.cfg.TokenURL(),
		},
	}
	return conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

// tokenResponse is the /oauth/token wire shape. Rynko follows the OAuth 2.0
// convention of returning some failures as HTTP 200 with an error body, so
// the error fields must be checked even on success statuses.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Authorize exchanges an authorization code (with its PKCE verifier) for a
// token pair. Failures are *AuthError: non-200 status, an OAuth error body,
// or a nominally successful body missing access_token.
func (c *Client) Authorize(ctx context.Context, code, redirectURI, verifier string) (*Credentials, error) {
	body := map[string]string{
		"grant_type":    "authorization_code",
		"code":          code,
		"redirect_uri":  redirectURI,
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"code_verifier": verifier,
	}

	status, tok, raw, err := c.postToken(ctx, body)
	if err != nil {
		return nil, &AuthError{StatusCode: 0, Message: err.Error()}
	}

	if status != http.StatusOK {
		return nil, &AuthError{StatusCode: status, Message: "unable to fetch access token: " + string(raw)}
	}
	if tok.Error != "" {
		msg := tok.ErrorDescription
		if msg == "" {
			msg = tok.Error
		}
		return nil, &AuthError{StatusCode: http.StatusBadRequest, Message: msg}
	}
	if tok.AccessToken == "" {
		return nil, &AuthError{
			StatusCode: http.StatusInternalServerError,
			Message:    "invalid token response: access_token not found",
		}
	}

	return &Credentials{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    tok.ExpiresIn,
		ObtainedAt:   time.Now().UTC(),
	}, nil
}

// Refresh exchanges a refresh token for a new pair. Any failure is a
// *RefreshError with a reconnect message; the host treats that kind as
// "re-authenticate" and everything else as an operational failure. When the
// server does not rotate the refresh token the prior value is carried over.
//
// Refresh is stateless and safe to call redundantly: a concurrent refresh
// for the same account simply yields another valid pair.
func (c *Client) Refresh(ctx context.Context, prior Credentials) (*Credentials, error) {
	body := map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": prior.RefreshToken,
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
	}

	status, tok, _, err := c.postToken(ctx, body)
	if err != nil {
		return nil, &RefreshError{Message: "Session expired. Please reconnect your Rynko account."}
	}

	if status != http.StatusOK {
		return nil, &RefreshError{Message: "Session expired. Please reconnect your Rynko account."}
	}
	if tok.Error != "" {
		msg := tok.ErrorDescription
		if msg == "" {
			msg = "Session expired. Please reconnect your Rynko account."
		}
		return nil, &RefreshError{Message: msg}
	}
	if tok.AccessToken == "" {
		return nil, &RefreshError{Message: "Invalid token response. Please reconnect your Rynko account."}
	}

	refreshToken := tok.RefreshToken
	if refreshToken == "" {
		refreshToken = prior.RefreshToken
	}

	return &Credentials{
		AccessToken:  tok.AccessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    tok.ExpiresIn,
		ObtainedAt:   time.Now().UTC(),
	}, nil
}

// postToken posts to the token endpoint. The token endpoint is the one API
// surface that is not bearer-authenticated and must not run through the
// retry/classification path in do, because OAuth errors arrive in otherwise
// successful responses.
func (c *Client) postToken(ctx context.Context, form map[string]string) (int, *tokenResponse, []byte, error) {
	payload, err := json.Marshal(form)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL(), bytes.NewReader(payload))
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to read token response: %w", err)
	}

	tok := &tokenResponse{}
	// A non-JSON body is tolerated here; status and error fields drive
	// classification in the callers.
	_ = json.Unmarshal(raw, tok)

	return resp.StatusCode, tok, raw, nil
}

// Identity is the /auth/verify response used as the connection test and
// connection label source.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// VerifyAuth tests the stored credentials by fetching the current identity.
func (c *Client) VerifyAuth(ctx context.Context) (*Identity, error) {
	var identity Identity
	if err := c.do(ctx, http.MethodGet, c.cfg.VerifyURL(), nil, nil, &identity); err != nil {
		return nil, fmt.Errorf("authentication test failed: %w", err)
	}
	return &identity, nil
}
