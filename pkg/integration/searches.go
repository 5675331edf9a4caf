package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/rynko-dev/zapier/pkg/rynko"
)

// Searches power the hidden dropdowns behind the selection cascade and the
// user-facing job lookup. Dropdown listings inherit the never-block policy
// of the client fetchers: failure means an empty dropdown, not a broken
// form.

// TeamOption is one dropdown entry of the team cascade.
type TeamOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug,omitempty"`
	IsPersonal bool   `json:"isPersonal,omitempty"`
	Role       string `json:"role,omitempty"`
}

// WorkspaceOption is one dropdown entry of the workspace cascade.
type WorkspaceOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TeamID      string `json:"teamId,omitempty"`
	TeamName    string `json:"teamName,omitempty"`
	Description string `json:"description"`
}

// TemplateOption is one dropdown entry of the template cascade. ID carries
// the template's short id.
type TemplateOption struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	WorkspaceID   string   `json:"workspaceId,omitempty"`
	WorkspaceName string   `json:"workspaceName,omitempty"`
	TeamID        string   `json:"teamId,omitempty"`
	Description   string   `json:"description"`
	OutputFormats []string `json:"outputFormats,omitempty"`
}

// TeamList lists teams for the first dropdown of the cascade. Personal
// teams are labeled as such.
func (s *Service) TeamList(ctx context.Context) []TeamOption {
	teams := s.client.ListTeams(ctx)

	options := make([]TeamOption, 0, len(teams))
	for _, team := range teams {
		name := team.Name
		if team.IsPersonal {
			name = fmt.Sprintf("%s (Personal)", team.Name)
		}
		options = append(options, TeamOption{
			ID:         team.ID,
			Name:       name,
			Slug:       team.Slug,
			IsPersonal: team.IsPersonal,
			Role:       team.Role,
		})
	}
	return options
}

// WorkspaceList lists workspaces narrowed by the selected team.
func (s *Service) WorkspaceList(ctx context.Context, b *Bundle) []WorkspaceOption {
	in, err := b.Control()
	if err != nil {
		s.logger.Warn("failed to decode input for workspace list", "error", err)
		return nil
	}

	workspaces := s.client.ListWorkspaces(ctx, in.TeamID)

	options := make([]WorkspaceOption, 0, len(workspaces))
	for _, ws := range workspaces {
		options = append(options, WorkspaceOption{
			ID:          ws.ID,
			Name:        fmt.Sprintf("%s (%s)", ws.Name, ws.TeamName),
			TeamID:      ws.TeamID,
			TeamName:    ws.TeamName,
			Description: ws.Description,
		})
	}
	return options
}

// TemplateList lists templates narrowed by the selected workspace (or team
// when no workspace is chosen) and, optionally, by supported output format.
func (s *Service) TemplateList(ctx context.Context, b *Bundle, format string) []TemplateOption {
	in, err := b.Control()
	if err != nil {
		s.logger.Warn("failed to decode input for template list", "error", err)
		return nil
	}

	templates := s.client.ListIntegrationTemplates(ctx, rynko.TemplateFilter{
		TeamID:      in.TeamID,
		WorkspaceID: in.WorkspaceID,
		Format:      format,
	})

	options := make([]TemplateOption, 0, len(templates))
	for _, tmpl := range templates {
		options = append(options, TemplateOption{
			ID:            tmpl.ShortID,
			Name:          fmt.Sprintf("%s (%s)", tmpl.Name, tmpl.WorkspaceName),
			WorkspaceID:   tmpl.WorkspaceID,
			WorkspaceName: tmpl.WorkspaceName,
			TeamID:        tmpl.TeamID,
			Description:   tmpl.Description,
			OutputFormats: tmpl.OutputFormats,
		})
	}
	return options
}

// PDFTemplateList lists only templates that can render PDF output.
func (s *Service) PDFTemplateList(ctx context.Context, b *Bundle) []TemplateOption {
	return s.TemplateList(ctx, b, "pdf")
}

// ExcelTemplateList lists only templates that can render Excel output.
func (s *Service) ExcelTemplateList(ctx context.Context, b *Bundle) []TemplateOption {
	return s.TemplateList(ctx, b, "excel")
}

// FindDocumentJob looks up a job directly by id when one is provided;
// otherwise it returns the most recent job matching the filters. Free-form
// date filters are normalized to RFC 3339 before they reach the API.
func (s *Service) FindDocumentJob(ctx context.Context, b *Bundle) ([]rynko.DocumentJob, error) {
	in, err := b.Control()
	if err != nil {
		return nil, err
	}

	if in.JobID != "" {
		job, err := s.client.GetDocument(ctx, in.JobID)
		if err != nil {
			return nil, err
		}
		return []rynko.DocumentJob{*job}, nil
	}

	query := rynko.DocumentQuery{
		Status:     in.Status,
		TemplateID: in.TemplateID,
		Format:     in.Format,
		DateFrom:   normalizeDate(in.DateFrom),
		DateTo:     normalizeDate(in.DateTo),
		Limit:      1,
	}

	return s.client.ListDocuments(ctx, query)
}

// normalizeDate accepts the loose date formats users type ("2025-01-15",
// "Jan 15 2025", ...) and renders RFC 3339. An unparseable value passes
// through untouched so the API can report it.
func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return s
	}
	return t.UTC().Format(time.RFC3339)
}
