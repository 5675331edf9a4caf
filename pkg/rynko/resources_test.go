package rynko

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFields(t *testing.T) {
	t.Run("fetches and decodes the field schema", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/templates/tmpl_1/zapier-fields", r.URL.Path)
			w.Write([]byte(`{"fields":[{"key":"amount","label":"Amount","type":"number","required":true}]}`))
		}))

		fields := client.TemplateFields(context.Background(), "tmpl_1")
		require.Len(t, fields, 1)
		assert.Equal(t, "amount", fields[0].Key)
		assert.True(t, fields[0].Required)
	})

	t.Run("empty template id short-circuits without a network call", func(t *testing.T) {
		calls := 0
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))

		assert.Empty(t, client.TemplateFields(context.Background(), ""))
		assert.Zero(t, calls)
	})

	t.Run("fetch failure degrades to an empty schema", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		assert.Empty(t, client.TemplateFields(context.Background(), "tmpl_broken"))
	})
}

func TestListTeams(t *testing.T) {
	t.Run("lists teams", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/integration-api/teams", r.URL.Path)
			w.Write([]byte(`[{"id":"team_1","name":"Acme","isPersonal":false}]`))
		}))

		teams := client.ListTeams(context.Background())
		require.Len(t, teams, 1)
		assert.Equal(t, "Acme", teams[0].Name)
	})

	t.Run("failure degrades to an empty list", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		assert.Empty(t, client.ListTeams(context.Background()))
	})
}

func TestListWorkspaces(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "team_1", r.URL.Query().Get("teamId"))
		w.Write([]byte(`[{"id":"ws_1","name":"Marketing","teamId":"team_1","teamName":"Acme"}]`))
	}))

	workspaces := client.ListWorkspaces(context.Background(), "team_1")
	require.Len(t, workspaces, 1)
	assert.Equal(t, "Marketing", workspaces[0].Name)
}

func TestListIntegrationTemplates(t *testing.T) {
	payload := `[
		{"shortId":"tpl_pdf","name":"Invoice","workspaceId":"ws_1","workspaceName":"Marketing","outputFormats":["pdf"]},
		{"shortId":"tpl_both","name":"Report","workspaceId":"ws_1","workspaceName":"Marketing","outputFormats":["pdf","excel"]},
		{"shortId":"tpl_xls","name":"Ledger","workspaceId":"ws_1","workspaceName":"Marketing","outputFormats":["excel"]}
	]`

	t.Run("passes team and workspace filters to the server", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ws_1", r.URL.Query().Get("workspaceId"))
			assert.Equal(t, "team_1", r.URL.Query().Get("teamId"))
			w.Write([]byte(payload))
		}))

		templates := client.ListIntegrationTemplates(context.Background(), TemplateFilter{
			TeamID:      "team_1",
			WorkspaceID: "ws_1",
		})
		assert.Len(t, templates, 3)
	})

	t.Run("format filter is applied client-side on outputFormats", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.Query().Get("format"))
			w.Write([]byte(payload))
		}))

		templates := client.ListIntegrationTemplates(context.Background(), TemplateFilter{Format: "excel"})
		require.Len(t, templates, 2)
		assert.Equal(t, "tpl_both", templates[0].ShortID)
		assert.Equal(t, "tpl_xls", templates[1].ShortID)
	})
}
