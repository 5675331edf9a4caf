package integration

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/rynko-dev/zapier/pkg/rynko"
	"github.com/rynko-dev/zapier/pkg/variables"
)

// BuildGenerationRequest composes the single-document generation payload
// from a bundle. Variables merge the legacy JSON blob with the reconstructed
// dynamic fields, dynamic winning on top-level conflict. When format is
// non-empty the action pins it; otherwise the value (if any) comes from the
// input.
func BuildGenerationRequest(b *Bundle, format string) (rynko.GenerationRequest, error) {
	in, err := b.Control()
	if err != nil {
		return rynko.GenerationRequest{}, err
	}

	req := rynko.GenerationRequest{
		TemplateID:  in.TemplateID,
		TeamID:      in.TeamID,
		WorkspaceID: in.WorkspaceID,
		Variables:   variables.Reconstruct(b.InputData, in.Variables, variables.DefaultPrefix),
	}

	if format != "" {
		req.Format = format
	} else if in.Format != "" {
		req.Format = in.Format
	}

	if in.FileName != "" {
		req.Filename = in.FileName
	}
	req.WaitForCompletion = in.WaitForCompletion

	return req, nil
}

// BuildBatchRequest composes the batch generation payload. The documents
// input must be a valid JSON array of per-document configurations; this is
// the one place client-side validation rejects before any network call,
// because a malformed batch would otherwise silently submit zero documents.
func BuildBatchRequest(b *Bundle) (rynko.BatchRequest, error) {
	in, err := b.Control()
	if err != nil {
		return rynko.BatchRequest{}, err
	}

	var documents []rynko.BatchDocument
	if err := json.Unmarshal([]byte(in.Documents), &documents); err != nil {
		return rynko.BatchRequest{}, &rynko.ValidationError{
			Message: "Invalid JSON in documents field. Please provide a valid JSON array.",
		}
	}

	var docErrs *multierror.Error
	for i, doc := range documents {
		if len(doc.Variables) == 0 {
			docErrs = multierror.Append(docErrs,
				fmt.Errorf("document %d: variables is required", i+1))
		}
	}
	if err := docErrs.ErrorOrNil(); err != nil {
		return rynko.BatchRequest{}, &rynko.ValidationError{Message: err.Error()}
	}

	req := rynko.BatchRequest{
		TemplateID:        in.TemplateID,
		Format:            in.Format,
		Documents:         documents,
		TeamID:            in.TeamID,
		WorkspaceID:       in.WorkspaceID,
		WaitForCompletion: in.WaitForCompletion,
	}

	return req, nil
}
