package rynko

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rynko-dev/zapier/pkg/variables"
)

// Team is one entry of the integration API team listing.
type Team struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug,omitempty"`
	IsPersonal bool   `json:"isPersonal,omitempty"`
	Role       string `json:"role,omitempty"`
}

// Workspace is one entry of the integration API workspace listing.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TeamID      string `json:"teamId,omitempty"`
	TeamName    string `json:"teamName,omitempty"`
	Description string `json:"description,omitempty"`
}

// TemplateSummary is one entry of the integration API template listing.
// ShortID is the stable identifier used for template selection.
type TemplateSummary struct {
	ID            string   `json:"id,omitempty"`
	ShortID       string   `json:"shortId"`
	Name          string   `json:"name"`
	WorkspaceID   string   `json:"workspaceId,omitempty"`
	WorkspaceName string   `json:"workspaceName,omitempty"`
	TeamID        string   `json:"teamId,omitempty"`
	Description   string   `json:"description,omitempty"`
	OutputFormats []string `json:"outputFormats,omitempty"`
}

// SupportsFormat reports whether the template can render the given output
// format. An empty format matches everything.
func (t TemplateSummary) SupportsFormat(format string) bool {
	if format == "" {
		return true
	}
	for _, f := range t.OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// TemplateFilter narrows the integration API template listing. Team and
// workspace are applied server-side; format is filtered client-side on each
// summary's outputFormats because the listing endpoint cannot filter by
// supported format.
type TemplateFilter struct {
	TeamID      string
	WorkspaceID string
	Format      string
}

// DocumentJob is a document generation job as returned by the API. The
// payload is relayed to the host verbatim.
type DocumentJob struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	TemplateID   string `json:"templateId,omitempty"`
	TemplateName string `json:"templateName,omitempty"`
	Format       string `json:"format,omitempty"`
	FileName     string `json:"fileName,omitempty"`
	DownloadURL  string `json:"downloadUrl,omitempty"`
	FileSize     int64  `json:"fileSize,omitempty"`
	Error        string `json:"error,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	CompletedAt  string `json:"completedAt,omitempty"`
	FailedAt     string `json:"failedAt,omitempty"`
}

// BatchJob is a batch generation job as returned by the API.
type BatchJob struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	TemplateID     string `json:"templateId,omitempty"`
	Format         string `json:"format,omitempty"`
	TotalDocuments int    `json:"totalDocuments,omitempty"`
	SuccessCount   int    `json:"successCount,omitempty"`
	FailureCount   int    `json:"failureCount,omitempty"`
	DownloadURL    string `json:"downloadUrl,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	CompletedAt    string `json:"completedAt,omitempty"`
}

// GenerationRequest is the single-document generation payload. Built once
// per action invocation and immutable after construction. Optional fields
// use omission, not null, as the "use server default" signal.
type GenerationRequest struct {
	TemplateID        string         `json:"templateId"`
	TeamID            string         `json:"teamId"`
	WorkspaceID       string         `json:"workspaceId"`
	Format            string         `json:"format,omitempty"`
	Variables         variables.Tree `json:"variables"`
	Filename          string         `json:"filename,omitempty"`
	WaitForCompletion *bool          `json:"waitForCompletion,omitempty"`
}

// Validate checks the identifiers the generation endpoint requires.
func (r GenerationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TemplateID, validation.Required),
		validation.Field(&r.TeamID, validation.Required),
		validation.Field(&r.WorkspaceID, validation.Required),
	)
}

// BatchDocument is one document configuration inside a batch request.
type BatchDocument struct {
	Variables variables.Tree `json:"variables"`
	FileName  string         `json:"fileName,omitempty"`
}

// BatchRequest is the batch generation payload.
type BatchRequest struct {
	TemplateID        string          `json:"templateId"`
	Format            string          `json:"format"`
	Documents         []BatchDocument `json:"documents"`
	TeamID            string          `json:"teamId"`
	WorkspaceID       string          `json:"workspaceId"`
	WaitForCompletion *bool           `json:"waitForCompletion,omitempty"`
}

// Validate checks the fields the batch endpoint requires.
func (r BatchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TemplateID, validation.Required),
		validation.Field(&r.Format, validation.Required),
		validation.Field(&r.Documents, validation.Required),
	)
}

// DocumentQuery filters the document job listing.
type DocumentQuery struct {
	Status     string
	TemplateID string
	Format     string
	DateFrom   string
	DateTo     string
	Limit      int
	Sort       string
	Order      string
}

// Subscription identifies a remote webhook subscription. The secret signs
// deliveries; the caller persists both and supplies the id to unsubscribe.
type Subscription struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

// listEnvelope is the paged listing wrapper used by /v1/documents and
// /v1/templates.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}
