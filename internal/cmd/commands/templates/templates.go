// Package templates lists templates and inspects their variable schemas.
package templates

import (
	"context"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/rynko-dev/zapier/internal/cmd/base"
	"github.com/rynko-dev/zapier/pkg/integration"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with document templates"
}

func (c *Command) Help() string {
	return `Usage: rynko-zapier templates <subcommand> [options] [args]`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagTeam      string
	flagWorkspace string
	flagFormat    string
}

func (c *ListCommand) Synopsis() string {
	return "List templates available for generation"
}

func (c *ListCommand) Help() string {
	return `Usage: rynko-zapier templates list [options]

  Lists templates as id/name pairs, labeled with their workspace name.

` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet("templates list")
	f.StringVar(&c.flagTeam, "team", "", "Team ID to scope the listing to")
	f.StringVar(&c.flagWorkspace, "workspace", "", "Workspace ID to scope the listing to")
	f.StringVar(&c.flagFormat, "format", "", "Only templates supporting this output format (pdf or excel)")
	return f
}

func (c *ListCommand) Run(args []string) int {
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

	b := &integration.Bundle{InputData: map[string]any{
		"teamId":      c.flagTeam,
		"workspaceId": c.flagWorkspace,
	}}
	return c.OutputJSON(svc.TemplateList(context.Background(), b, c.flagFormat))
}

type FieldsCommand struct {
	*base.Command
}

func (c *FieldsCommand) Synopsis() string {
	return "Show the compiled input fields for a template"
}

func (c *FieldsCommand) Help() string {
	return `Usage: rynko-zapier templates fields <template-id>

  Fetches the template's variable schema and prints the compiled input
  fields, prefixed the way the host form presents them.`
}

func (c *FieldsCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("exactly one template ID argument is required")
		return 1
	}

	svc, err := c.Service()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	b := &integration.Bundle{InputData: map[string]any{"templateId": args[0]}}
	return c.OutputJSON(svc.TemplateVariableFields(context.Background(), b))
}
