// Package webhooks manages webhook subscriptions for the trigger events.
package webhooks

import (
	"context"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/rynko-dev/zapier/internal/cmd/base"
	"github.com/rynko-dev/zapier/pkg/integration"
	"github.com/rynko-dev/zapier/pkg/rynko"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage webhook subscriptions"
}

func (c *Command) Help() string {
	return `Usage: rynko-zapier webhooks <subcommand> [options]`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type SubscribeCommand struct {
	*base.Command

	flagURL   string
	flagEvent string
}

func (c *SubscribeCommand) Synopsis() string {
	return "Subscribe a target URL to an event"
}

func (c *SubscribeCommand) Help() string {
	return `Usage: rynko-zapier webhooks subscribe -url=<target> -event=<event>

  Registers a webhook subscription and prints its ID and signing
  secret. Supported events: ` + eventList() + `

` + c.Flags().Help()
}

func (c *SubscribeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet("webhooks subscribe")
	f.StringVar(&c.flagURL, "url", "", "Target URL to deliver events to (required)")
	f.StringVar(&c.flagEvent, "event", string(integration.EventDocumentCompleted),
		"Event type to subscribe to")
	return f
}

func (c *SubscribeCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagURL == "" {
		c.UI.Error("-url is required")
		return 1
	}

	svc, err := c.Service()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	sub, err := svc.SubscribeTrigger(context.Background(),
		&integration.Bundle{TargetURL: c.flagURL},
		integration.EventType(c.flagEvent))
	if err != nil {
		c.UI.Error(fmt.Sprintf("subscribe failed: %v", err))
		return 1
	}

	return c.OutputJSON(sub)
}

type UnsubscribeCommand struct {
	*base.Command
}

func (c *UnsubscribeCommand) Synopsis() string {
	return "Delete a webhook subscription"
}

func (c *UnsubscribeCommand) Help() string {
	return `Usage: rynko-zapier webhooks unsubscribe <subscription-id>

  Deletes the subscription. A missing subscription is not an error.`
}

func (c *UnsubscribeCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("exactly one subscription ID argument is required")
		return 1
	}

	svc, err := c.Service()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	err = svc.UnsubscribeTrigger(context.Background(), &integration.Bundle{
		SubscribeData: &rynko.Subscription{ID: args[0]},
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("unsubscribe failed: %v", err))
		return 1
	}

	c.UI.Info("subscription deleted")
	return 0
}

func eventList() string {
	var s string
	for i, e := range integration.AllEventTypes() {
		if i > 0 {
			s += ", "
		}
		s += string(e)
	}
	return s
}
