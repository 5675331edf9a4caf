// Package integration is the host-facing boundary: it decodes the flat
// key/value input the automation host collects, composes generation
// requests, and exposes the actions, searches, and webhook triggers of the
// Rynko integration.
package integration

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/rynko-dev/zapier/pkg/rynko"
)

// Bundle is one host invocation envelope. InputData holds both control keys
// (templateId, teamId, ...) and prefixed variable keys; it is created fresh
// per invocation and discarded afterwards.
type Bundle struct {
	InputData     map[string]any
	AuthData      rynko.Credentials
	TargetURL     string
	SubscribeData *rynko.Subscription
}

// ControlInput is the typed view of the non-variable keys in InputData.
type ControlInput struct {
	TemplateID        string `mapstructure:"templateId"`
	TeamID            string `mapstructure:"teamId"`
	WorkspaceID       string `mapstructure:"workspaceId"`
	Format            string `mapstructure:"format"`
	Variables         string `mapstructure:"variables"`
	FileName          string `mapstructure:"fileName"`
	WaitForCompletion *bool  `mapstructure:"waitForCompletion"`
	Documents         string `mapstructure:"documents"`

	// Job search filters.
	JobID    string `mapstructure:"jobId"`
	Status   string `mapstructure:"status"`
	DateFrom string `mapstructure:"dateFrom"`
	DateTo   string `mapstructure:"dateTo"`
}

// Control decodes the control keys out of InputData. Decoding is weakly
// typed because hosts deliver everything as strings ("true" must coerce to
// a boolean). Prefixed variable keys are ignored here; pkg/variables owns
// them.
func (b *Bundle) Control() (ControlInput, error) {
	var in ControlInput

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &in,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return in, fmt.Errorf("failed to build input decoder: %w", err)
	}
	if err := decoder.Decode(b.InputData); err != nil {
		return in, fmt.Errorf("failed to decode input: %w", err)
	}

	return in, nil
}
