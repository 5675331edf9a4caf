package version

import (
	"github.com/rynko-dev/zapier/internal/cmd/base"
	"github.com/rynko-dev/zapier/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: rynko-zapier version

  Prints the version of this binary.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
