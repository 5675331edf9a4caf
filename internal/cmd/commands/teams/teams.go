// Package teams lists the teams visible to the connected account.
package teams

import (
	"context"

	"github.com/mitchellh/cli"

	"github.com/rynko-dev/zapier/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with teams"
}

func (c *Command) Help() string {
	return `Usage: rynko-zapier teams <subcommand>`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List the teams visible to the connected account"
}

func (c *ListCommand) Help() string {
	return `Usage: rynko-zapier teams list

  Lists teams as id/name pairs. Personal teams are decorated with
  "(Personal)".`
}

func (c *ListCommand) Run(args []string) int {
	svc, err := c.Service()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return c.OutputJSON(svc.TeamList(context.Background()))
}
