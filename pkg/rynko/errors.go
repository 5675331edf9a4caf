package rynko

import "fmt"

// AuthError indicates that an OAuth token exchange failed. It is fatal to
// the current operation but does not invalidate the stored connection.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (status %d): %s", e.StatusCode, e.Message)
}

// RefreshError signals that the stored credentials are no longer usable and
// the host must force the user back through the OAuth flow. It is raised on
// refresh failures and on HTTP 401 responses from the API. The message is
// user-actionable rather than the raw upstream error.
type RefreshError struct {
	Message string
}

func (e *RefreshError) Error() string {
	return e.Message
}

// APIError carries an upstream non-2xx response with the best-effort message
// extracted from the body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rynko API error (status %d): %s", e.StatusCode, e.Message)
}

// ValidationError is a client-side input rejection. It must never reach the
// network; the message is shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
