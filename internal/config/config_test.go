package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		APIBaseURL:   "https://api.rynko.dev/api",
		WebAppURL:    "https://app.rynko.dev",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Scopes:       DefaultScopes,
	}
}

func TestValidate(t *testing.T) {
	t.Run("complete config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing client credentials fail", func(t *testing.T) {
		cfg := validConfig()
		cfg.ClientID = ""
		assert.Error(t, cfg.Validate())

		cfg = validConfig()
		cfg.ClientSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-http URL fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.APIBaseURL = "ftp://api.rynko.dev"
		assert.Error(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when only credentials are set", func(t *testing.T) {
		t.Setenv("RYNKO_CLIENT_ID", "id")
		t.Setenv("RYNKO_CLIENT_SECRET", "secret")
		t.Setenv("RYNKO_API_BASE_URL", "")
		t.Setenv("RYNKO_WEBAPP_URL", "")

		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
		assert.Equal(t, DefaultWebAppURL, cfg.WebAppURL)
	})

	t.Run("missing credentials fail", func(t *testing.T) {
		t.Setenv("RYNKO_CLIENT_ID", "")
		t.Setenv("RYNKO_CLIENT_SECRET", "")

		_, err := Load(nil)
		require.Error(t, err)
	})
}

func TestEndpoints(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, "https://api.rynko.dev/api/oauth/token", cfg.TokenURL())
	assert.Equal(t, "https://app.rynko.dev/oauth/authorize", cfg.AuthorizeURL())
	assert.Equal(t, "https://api.rynko.dev/api/auth/verify", cfg.VerifyURL())
	assert.Equal(t, "https://api.rynko.dev/api/v1/documents", cfg.DocumentsEndpoint())
	assert.Equal(t, "https://api.rynko.dev/api/v1/templates", cfg.TemplatesEndpoint())
	assert.Equal(t, "https://api.rynko.dev/api/v1/integration-api", cfg.IntegrationAPIEndpoint())
	assert.Equal(t, "https://api.rynko.dev/api/v1/webhook-subscriptions", cfg.WebhooksEndpoint())
	assert.Equal(t, "documents:generate documents:read templates:read webhooks:read webhooks:write profile:read", cfg.ScopeString())
}
