package integration

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/rynko-dev/zapier/pkg/forms"
	"github.com/rynko-dev/zapier/pkg/rynko"
	"github.com/rynko-dev/zapier/pkg/variables"
)

// Service exposes the integration operations over an injected Rynko client.
// It holds no mutable state; every method is one request-scoped unit of
// work.
type Service struct {
	client *rynko.Client
	logger hclog.Logger
}

// NewService creates a Service.
func NewService(client *rynko.Client, logger hclog.Logger) *Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Service{
		client: client,
		logger: logger.Named("integration"),
	}
}

// GenerateDocument generates a document in the format chosen in the input.
func (s *Service) GenerateDocument(ctx context.Context, b *Bundle) (*rynko.DocumentJob, error) {
	req, err := BuildGenerationRequest(b, "")
	if err != nil {
		return nil, err
	}
	return s.client.Generate(ctx, req)
}

// GeneratePDF generates a document with the format pinned to PDF.
func (s *Service) GeneratePDF(ctx context.Context, b *Bundle) (*rynko.DocumentJob, error) {
	req, err := BuildGenerationRequest(b, "pdf")
	if err != nil {
		return nil, err
	}
	return s.client.Generate(ctx, req)
}

// GenerateExcel generates a document with the format pinned to Excel.
func (s *Service) GenerateExcel(ctx context.Context, b *Bundle) (*rynko.DocumentJob, error) {
	req, err := BuildGenerationRequest(b, "excel")
	if err != nil {
		return nil, err
	}
	return s.client.Generate(ctx, req)
}

// GenerateBatch generates a batch of documents from one template.
func (s *Service) GenerateBatch(ctx context.Context, b *Bundle) (*rynko.BatchJob, error) {
	req, err := BuildBatchRequest(b)
	if err != nil {
		return nil, err
	}
	return s.client.GenerateBatch(ctx, req)
}

// TemplateVariableFields recomputes the dynamic variable fields for the
// currently selected template. Without a template selection it returns an
// empty list and performs no network call; compilation is lazy by design.
func (s *Service) TemplateVariableFields(ctx context.Context, b *Bundle) []forms.CompiledField {
	in, err := b.Control()
	if err != nil {
		s.logger.Warn("failed to decode input for dynamic fields", "error", err)
		return nil
	}
	if in.TemplateID == "" {
		return nil
	}

	schema := s.client.TemplateFields(ctx, in.TemplateID)
	return forms.Compile(schema, variables.DefaultPrefix)
}

// DocumentInputFields is the full field list for the generic generate
// action: format choice, the static cascade, then the template's dynamic
// variable fields.
func (s *Service) DocumentInputFields(ctx context.Context, b *Bundle) []forms.CompiledField {
	fields := []forms.CompiledField{forms.FormatField()}
	fields = append(fields, forms.CommonDocumentFields()...)
	return append(fields, s.TemplateVariableFields(ctx, b)...)
}

// PDFInputFields is the field list for the PDF-only action.
func (s *Service) PDFInputFields(ctx context.Context, b *Bundle) []forms.CompiledField {
	return append(forms.PDFFields(), s.TemplateVariableFields(ctx, b)...)
}

// ExcelInputFields is the field list for the Excel-only action.
func (s *Service) ExcelInputFields(ctx context.Context, b *Bundle) []forms.CompiledField {
	return append(forms.ExcelFields(), s.TemplateVariableFields(ctx, b)...)
}

// BatchInputFields is the field list for batch generation. Batch documents
// carry their variables inline, so no dynamic fields are appended.
func (s *Service) BatchInputFields() []forms.CompiledField {
	return forms.BatchFields()
}
