package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamList(t *testing.T) {
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/integration-api/teams", r.URL.Path)
		w.Write([]byte(`[
			{"id":"team_1","name":"Acme","slug":"acme","isPersonal":false,"role":"admin"},
			{"id":"team_2","name":"Jane","isPersonal":true,"role":"owner"}
		]`))
	}))

	teams := svc.TeamList(context.Background())
	require.Len(t, teams, 2)
	assert.Equal(t, "Acme", teams[0].Name)
	assert.Equal(t, "Jane (Personal)", teams[1].Name)
}

func TestWorkspaceList(t *testing.T) {
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "team_1", r.URL.Query().Get("teamId"))
		w.Write([]byte(`[{"id":"ws_1","name":"Marketing","teamId":"team_1","teamName":"Acme"}]`))
	}))

	workspaces := svc.WorkspaceList(context.Background(), &Bundle{
		InputData: map[string]any{"teamId": "team_1"},
	})
	require.Len(t, workspaces, 1)
	assert.Equal(t, "Marketing (Acme)", workspaces[0].Name)
}

func TestTemplateList(t *testing.T) {
	payload := `[
		{"shortId":"tpl_1","name":"Invoice","workspaceId":"ws_1","workspaceName":"Marketing","outputFormats":["pdf"]},
		{"shortId":"tpl_2","name":"Ledger","workspaceId":"ws_1","workspaceName":"Marketing","outputFormats":["excel"]}
	]`

	t.Run("lists templates labeled with their workspace", func(t *testing.T) {
		svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ws_1", r.URL.Query().Get("workspaceId"))
			w.Write([]byte(payload))
		}))

		templates := svc.TemplateList(context.Background(), &Bundle{
			InputData: map[string]any{"workspaceId": "ws_1"},
		}, "")
		require.Len(t, templates, 2)
		assert.Equal(t, "tpl_1", templates[0].ID)
		assert.Equal(t, "Invoice (Marketing)", templates[0].Name)
	})

	t.Run("pdf variant keeps only pdf-capable templates", func(t *testing.T) {
		svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))

		templates := svc.PDFTemplateList(context.Background(), &Bundle{InputData: map[string]any{}})
		require.Len(t, templates, 1)
		assert.Equal(t, "tpl_1", templates[0].ID)
	})

	t.Run("excel variant keeps only excel-capable templates", func(t *testing.T) {
		svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))

		templates := svc.ExcelTemplateList(context.Background(), &Bundle{InputData: map[string]any{}})
		require.Len(t, templates, 1)
		assert.Equal(t, "tpl_2", templates[0].ID)
	})
}

func TestFindDocumentJob(t *testing.T) {
	t.Run("job id wins over filters", func(t *testing.T) {
		svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/documents/job_7", r.URL.Path)
			w.Write([]byte(`{"id":"job_7","status":"completed"}`))
		}))

		jobs, err := svc.FindDocumentJob(context.Background(), &Bundle{
			InputData: map[string]any{"jobId": "job_7", "status": "failed"},
		})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "job_7", jobs[0].ID)
	})

	t.Run("filters return the most recent match only", func(t *testing.T) {
		svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "completed", q.Get("status"))
			assert.Equal(t, "1", q.Get("limit"))
			assert.Equal(t, "2025-01-15T00:00:00Z", q.Get("dateFrom"))
			w.Write([]byte(`{"data":[{"id":"job_1","status":"completed"}]}`))
		}))

		jobs, err := svc.FindDocumentJob(context.Background(), &Bundle{
			InputData: map[string]any{
				"status":   "completed",
				"dateFrom": "Jan 15, 2025",
			},
		})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
	})
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "", normalizeDate(""))
	assert.Equal(t, "2025-01-15T00:00:00Z", normalizeDate("2025-01-15"))
	assert.Equal(t, "2025-01-15T00:00:00Z", normalizeDate("Jan 15, 2025"))
	assert.Equal(t, "2025-01-15T10:30:00Z", normalizeDate("2025-01-15T10:30:00Z"))
	assert.Equal(t, "not a date", normalizeDate("not a date"))
}
