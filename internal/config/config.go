package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
)

const (
	// DefaultAPIBaseURL is the production Rynko API host.
	DefaultAPIBaseURL = "https://api.rynko.dev/api"

	// DefaultWebAppURL is the Rynko web application, which hosts the OAuth
	// login and consent screens.
	DefaultWebAppURL = "https://app.rynko.dev"

	apiVersion = "v1"
)

// DefaultScopes are the OAuth scopes required for full integration
// functionality.
var DefaultScopes = []string{
	"documents:generate",
	"documents:read",
	"templates:read",
	"webhooks:read",
	"webhooks:write",
	"profile:read",
}

// Config contains the environment-supplied configuration for the Rynko
// integration. All values come from the process environment; an optional
// .env file is honored for local development.
type Config struct {
	// APIBaseURL is the base URL of the Rynko API.
	// Example: "https://api.rynko.dev/api"
	APIBaseURL string

	// WebAppURL is the base URL of the Rynko web application used for the
	// OAuth authorization redirect.
	WebAppURL string

	// ClientID is the OAuth client ID issued to this integration.
	ClientID string

	// ClientSecret is the OAuth client secret. Never logged or marshaled.
	ClientSecret string

	// Scopes requested during authorization.
	Scopes []string
}

// Load builds a Config from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load(logger hclog.Logger) (*Config, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded environment from .env file")
	}

	cfg := &Config{
		APIBaseURL:   envOr("RYNKO_API_BASE_URL", DefaultAPIBaseURL),
		WebAppURL:    envOr("RYNKO_WEBAPP_URL", DefaultWebAppURL),
		ClientID:     os.Getenv("RYNKO_CLIENT_ID"),
		ClientSecret: os.Getenv("RYNKO_CLIENT_SECRET"),
		Scopes:       DefaultScopes,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is complete enough to talk to the
// Rynko API.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.APIBaseURL, validation.Required),
		validation.Field(&c.WebAppURL, validation.Required),
		validation.Field(&c.ClientID, validation.Required),
		validation.Field(&c.ClientSecret, validation.Required),
	); err != nil {
		return err
	}

	for _, u := range []string{c.APIBaseURL, c.WebAppURL} {
		parsed, err := url.Parse(u)
		if err != nil {
			return fmt.Errorf("invalid URL %q: %w", u, err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("URL %q must use http or https scheme", u)
		}
	}

	return nil
}

// TokenURL is the OAuth token endpoint.
func (c *Config) TokenURL() string {
	return c.APIBaseURL + "/oauth/token"
}

// AuthorizeURL is the user-facing OAuth authorization endpoint on the web
// application.
func (c *Config) AuthorizeURL() string {
	return c.WebAppURL + "/oauth/authorize"
}

// VerifyURL is the connectivity/identity test endpoint.
func (c *Config) VerifyURL() string {
	return c.APIBaseURL + "/auth/verify"
}

// DocumentsEndpoint is the document job resource root.
func (c *Config) DocumentsEndpoint() string {
	return fmt.Sprintf("%s/%s/documents", c.APIBaseURL, apiVersion)
}

// TemplatesEndpoint is the template resource root.
func (c *Config) TemplatesEndpoint() string {
	return fmt.Sprintf("%s/%s/templates", c.APIBaseURL, apiVersion)
}

// IntegrationAPIEndpoint is the root for team/workspace/template listings
// with server-side filtering.
func (c *Config) IntegrationAPIEndpoint() string {
	return fmt.Sprintf("%s/%s/integration-api", c.APIBaseURL, apiVersion)
}

// WebhooksEndpoint is the webhook subscription resource root.
func (c *Config) WebhooksEndpoint() string {
	return fmt.Sprintf("%s/%s/webhook-subscriptions", c.APIBaseURL, apiVersion)
}

// ScopeString returns the space-delimited scope list for authorization
// requests.
func (c *Config) ScopeString() string {
	return strings.Join(c.Scopes, " ")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
