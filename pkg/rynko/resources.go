package rynko

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rynko-dev/zapier/pkg/forms"
)

// Resource fetchers feed dynamic dropdowns and forms. They deliberately
// never propagate failures: a broken fetch must not prevent the host from
// rendering the static part of a form, so every error here degrades to an
// empty list and is logged.

// TemplateFields retrieves the variable field schema for a template. An
// empty template id short-circuits without a network call.
func (c *Client) TemplateFields(ctx context.Context, templateID string) []forms.FieldSchema {
	if templateID == "" {
		return nil
	}

	var out struct {
		Fields []forms.FieldSchema `json:"fields"`
	}
	endpoint := c.cfg.TemplatesEndpoint() + "/" + url.PathEscape(templateID) + "/zapier-fields"
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &out); err != nil {
		c.logger.Warn("failed to fetch template fields", "templateId", templateID, "error", err)
		return nil
	}
	return out.Fields
}

// ListTeams lists the teams visible to the connected account.
func (c *Client) ListTeams(ctx context.Context) []Team {
	var teams []Team
	endpoint := c.cfg.IntegrationAPIEndpoint() + "/teams"
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &teams); err != nil {
		c.logger.Warn("failed to list teams", "error", err)
		return nil
	}
	return teams
}

// ListWorkspaces lists workspaces, optionally narrowed to one team.
func (c *Client) ListWorkspaces(ctx context.Context, teamID string) []Workspace {
	query := url.Values{}
	if teamID != "" {
		query.Set("teamId", teamID)
	}

	var workspaces []Workspace
	endpoint := c.cfg.IntegrationAPIEndpoint() + "/workspaces"
	if err := c.do(ctx, http.MethodGet, endpoint, query, nil, &workspaces); err != nil {
		c.logger.Warn("failed to list workspaces", "teamId", teamID, "error", err)
		return nil
	}
	return workspaces
}

// ListIntegrationTemplates lists templates for dropdown population. Team and
// workspace filters go to the server; the format filter is applied here on
// each summary's outputFormats.
func (c *Client) ListIntegrationTemplates(ctx context.Context, filter TemplateFilter) []TemplateSummary {
	query := url.Values{}
	if filter.WorkspaceID != "" {
		query.Set("workspaceId", filter.WorkspaceID)
	}
	if filter.TeamID != "" {
		query.Set("teamId", filter.TeamID)
	}

	var templates []TemplateSummary
	endpoint := c.cfg.IntegrationAPIEndpoint() + "/templates"
	if err := c.do(ctx, http.MethodGet, endpoint, query, nil, &templates); err != nil {
		c.logger.Warn("failed to list templates", "error", err)
		return nil
	}

	if filter.Format == "" {
		return templates
	}

	filtered := templates[:0]
	for _, t := range templates {
		if t.SupportsFormat(filter.Format) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
