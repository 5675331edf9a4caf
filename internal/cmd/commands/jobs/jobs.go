// Package jobs looks up document generation jobs.
package jobs

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
	return "Work with document generation jobs"
}

func (c *Command) Help() string {
	return `Usage: rynko-zapier jobs <subcommand> [options]`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type FindCommand struct {
	*base.Command

	flagID       string
	flagStatus   string
	flagTemplate string
	flagFormat   string
	flagFrom     string
	flagTo       string
}

func (c *FindCommand) Synopsis() string {
	return "Find a document job by ID or by filters"
}

func (c *FindCommand) Help() string {
	return `Usage: rynko-zapier jobs find [options]

  Looks up a job directly by -id, or finds the most recent job matching
  the given filters. Date filters accept most common formats and are
  normalized to RFC 3339.

` + c.Flags().Help()
}

func (c *FindCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet("jobs find")
	f.StringVar(&c.flagID, "id", "", "Job ID for a direct lookup")
	f.StringVar(&c.flagStatus, "status", "", "Filter by job status")
	f.StringVar(&c.flagTemplate, "template", "", "Filter by template ID")
	f.StringVar(&c.flagFormat, "format", "", "Filter by output format")
	f.StringVar(&c.flagFrom, "from", "", "Only jobs created at or after this date")
	f.StringVar(&c.flagTo, "to", "", "Only jobs created at or before this date")
	return f
}

func (c *FindCommand) Run(args []string) int {
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
		"jobId":      c.flagID,
		"status":     c.flagStatus,
		"templateId": c.flagTemplate,
		"format":     c.flagFormat,
		"dateFrom":   c.flagFrom,
		"dateTo":     c.flagTo,
	}}

	found, err := svc.FindDocumentJob(context.Background(), b)
	if err != nil {
		c.UI.Error(fmt.Sprintf("lookup failed: %v", err))
		return 1
	}
	if len(found) == 0 {
		c.UI.Warn("no matching jobs")
		return 0
	}

	return c.OutputJSON(found)
}
