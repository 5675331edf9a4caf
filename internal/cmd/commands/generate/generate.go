// Package generate submits a document generation request built the same way
// the host action builds it: flat var_ inputs are reconstructed into the
// nested variables tree before the request is sent.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rynko-dev/zapier/internal/cmd/base"
	"github.com/rynko-dev/zapier/pkg/integration"
	"github.com/rynko-dev/zapier/pkg/variables"
)

// varFlags collects repeated -var key=value pairs.
type varFlags map[string]string

func (v varFlags) String() string { return "" }

func (v varFlags) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	v[strings.TrimSpace(key)] = value
	return nil
}

type Command struct {
	*base.Command

	flagTemplate  string
	flagTeam      string
	flagWorkspace string
	flagFormat    string
	flagVariables string
	flagFilename  string
	flagWait      bool
	flagVars      varFlags
}

func (c *Command) Synopsis() string {
	return "Generate a document from a template"
}

func (c *Command) Help() string {
	return `Usage: rynko-zapier generate [options]

  Submits a generation request and prints the resulting job. Variable
  values are given as repeated -var flags with flattened keys, e.g.
  -var customerName=John -var items__0__sku=A-1, and are reconstructed
  into the nested variables object.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("generate")
	f.StringVar(&c.flagTemplate, "template", "", "Template ID (required)")
	f.StringVar(&c.flagTeam, "team", "", "Team ID (required)")
	f.StringVar(&c.flagWorkspace, "workspace", "", "Workspace ID (required)")
	f.StringVar(&c.flagFormat, "format", "", "Output format (pdf or excel)")
	f.StringVar(&c.flagVariables, "variables", "", "Legacy variables as a JSON object")
	f.StringVar(&c.flagFilename, "filename", "", "Filename for the generated document")
	f.BoolVar(&c.flagWait, "wait", false, "Wait for generation to complete")
	f.Var(c.flagVars, "var", "Flattened variable as key=value (repeatable)")
	return f
}

func (c *Command) Run(args []string) int {
	c.flagVars = varFlags{}
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	svc, err := c.Service()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	input := map[string]any{
		"templateId":  c.flagTemplate,
		"teamId":      c.flagTeam,
		"workspaceId": c.flagWorkspace,
	}
	if c.flagFormat != "" {
		input["format"] = c.flagFormat
	}
	if c.flagVariables != "" {
		input["variables"] = c.flagVariables
	}
	if c.flagFilename != "" {
		input["fileName"] = c.flagFilename
	}
	if c.flagWait {
		input["waitForCompletion"] = true
	}
	for key, value := range c.flagVars {
		input[variables.DefaultPrefix+key] = value
	}

	job, err := svc.GenerateDocument(context.Background(), &integration.Bundle{InputData: input})
	if err != nil {
		c.UI.Error(fmt.Sprintf("generation failed: %v", err))
		return 1
	}

	return c.OutputJSON(job)
}
