package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rynko-dev/zapier/pkg/forms"
	"github.com/rynko-dev/zapier/pkg/rynko"
	"github.com/rynko-dev/zapier/pkg/variables"
)

func TestBuildGenerationRequest(t *testing.T) {
	t.Run("compiled field through to the literal request body", func(t *testing.T) {
		schema := []forms.FieldSchema{
			{Key: "amount", Type: forms.FieldTypeNumber, Required: true},
		}
		compiled := forms.Compile(schema, variables.DefaultPrefix)
		require.Len(t, compiled, 1)
		assert.Equal(t, "var_amount", compiled[0].Key)
		assert.Equal(t, forms.FieldTypeNumber, compiled[0].Type)
		assert.True(t, compiled[0].Required)

		b := &Bundle{InputData: map[string]any{
			"templateId":  "t1",
			"teamId":      "team_1",
			"workspaceId": "ws_1",
			"var_amount":  "42",
		}}

		req, err := BuildGenerationRequest(b, "pdf")
		require.NoError(t, err)

		body, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"templateId":"t1","teamId":"team_1","workspaceId":"ws_1","format":"pdf","variables":{"amount":"42"}}`,
			string(body))
	})

	t.Run("pinned format wins over input format", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "teamId": "tm", "workspaceId": "ws", "format": "excel",
		}}

		req, err := BuildGenerationRequest(b, "pdf")
		require.NoError(t, err)
		assert.Equal(t, "pdf", req.Format)
	})

	t.Run("format comes from input when not pinned", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "teamId": "tm", "workspaceId": "ws", "format": "excel",
		}}

		req, err := BuildGenerationRequest(b, "")
		require.NoError(t, err)
		assert.Equal(t, "excel", req.Format)
	})

	t.Run("format stays empty when nobody supplies one", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "teamId": "tm", "workspaceId": "ws",
		}}

		req, err := BuildGenerationRequest(b, "")
		require.NoError(t, err)
		assert.Empty(t, req.Format)
	})

	t.Run("optional fields copied only when present", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "teamId": "tm", "workspaceId": "ws",
		}}

		req, err := BuildGenerationRequest(b, "")
		require.NoError(t, err)
		assert.Empty(t, req.Filename)
		assert.Nil(t, req.WaitForCompletion)
	})

	t.Run("host boolean strings coerce for waitForCompletion", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "teamId": "tm", "workspaceId": "ws",
			"fileName":          "Invoice-12345",
			"waitForCompletion": "true",
		}}

		req, err := BuildGenerationRequest(b, "")
		require.NoError(t, err)
		assert.Equal(t, "Invoice-12345", req.Filename)
		require.NotNil(t, req.WaitForCompletion)
		assert.True(t, *req.WaitForCompletion)
	})

	t.Run("legacy JSON merges under dynamic fields", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "teamId": "tm", "workspaceId": "ws",
			"variables": `{"a":"legacy","b":"keep"}`,
			"var_a":     "X",
		}}

		req, err := BuildGenerationRequest(b, "")
		require.NoError(t, err)
		assert.Equal(t, variables.Tree{"a": "X", "b": "keep"}, req.Variables)
	})
}

func TestBuildBatchRequest(t *testing.T) {
	t.Run("parses the documents array", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "teamId": "tm", "workspaceId": "ws",
			"format":    "pdf",
			"documents": `[{"variables":{"name":"John"},"fileName":"doc-1"},{"variables":{"name":"Jane"}}]`,
		}}

		req, err := BuildBatchRequest(b)
		require.NoError(t, err)
		require.Len(t, req.Documents, 2)
		assert.Equal(t, "doc-1", req.Documents[0].FileName)
		assert.Equal(t, "pdf", req.Format)
	})

	t.Run("invalid JSON fails fast with a user-facing message", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "format": "pdf", "documents": `not json at all`,
		}}

		_, err := BuildBatchRequest(b)
		var valErr *rynko.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Contains(t, valErr.Message, "valid JSON array")
	})

	t.Run("documents without variables are rejected together", func(t *testing.T) {
		b := &Bundle{InputData: map[string]any{
			"templateId": "t1", "format": "pdf",
			"documents": `[{"fileName":"doc-1"},{"variables":{"name":"Jane"}},{"fileName":"doc-3"}]`,
		}}

		_, err := BuildBatchRequest(b)
		var valErr *rynko.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Contains(t, valErr.Message, "document 1")
		assert.Contains(t, valErr.Message, "document 3")
	})
}
