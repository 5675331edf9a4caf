// Package workspaces lists workspaces, optionally scoped to one team.
package workspaces

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
	return "Work with workspaces"
}

func (c *Command) Help() string {
	return `Usage: rynko-zapier workspaces <subcommand>`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagTeam string
}

func (c *ListCommand) Synopsis() string {
	return "List workspaces, optionally scoped to a team"
}

func (c *ListCommand) Help() string {
	return `Usage: rynko-zapier workspaces list [options]

  Lists workspaces as id/name pairs, labeled with their team name.

` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet("workspaces list")
	f.StringVar(&c.flagTeam, "team", "", "Team ID to scope the listing to")
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

	b := &integration.Bundle{InputData: map[string]any{"teamId": c.flagTeam}}
	return c.OutputJSON(svc.WorkspaceList(context.Background(), b))
}
