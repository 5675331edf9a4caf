// Package auth implements the OAuth commands: login walks the authorization
// code flow with PKCE, verify checks stored credentials against the API.
package auth

import (
	"github.com/mitchellh/cli"

	"github.com/rynko-dev/zapier/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage the OAuth connection to Rynko"
}

func (c *Command) Help() string {
	return `Usage: rynko-zapier auth <subcommand> [options]

  This command groups subcommands for connecting to a Rynko account.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
