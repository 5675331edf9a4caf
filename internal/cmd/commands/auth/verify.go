package auth

import (
	"context"
	"fmt"

	"github.com/rynko-dev/zapier/internal/cmd/base"
)

type VerifyCommand struct {
	*base.Command
}

func (c *VerifyCommand) Synopsis() string {
	return "Verify the stored credentials against the API"
}

func (c *VerifyCommand) Help() string {
	return `Usage: rynko-zapier auth verify

  Fetches the identity behind RYNKO_ACCESS_TOKEN to confirm the
  connection is still valid.`
}

func (c *VerifyCommand) Run(args []string) int {
	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	identity, err := client.VerifyAuth(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("verification failed: %v", err))
		return 1
	}

	return c.OutputJSON(identity)
}
