// Package base carries the pieces shared by all CLI commands: the UI, the
// logger, flag help rendering, and helpers that build API clients from the
// environment.
package base

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/rynko-dev/zapier/internal/config"
	"github.com/rynko-dev/zapier/pkg/integration"
	"github.com/rynko-dev/zapier/pkg/rynko"
)

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger
}

// FlagSet wraps flag.FlagSet to render flag help in a consistent format.
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(name string) *FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the formatted option list for this flag set.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("Options:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "  -%s\n      %s", fl.Name, fl.Usage)
		if fl.DefValue != "" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return b.String()
}

// Config loads and validates configuration from the environment.
func (c *Command) Config() (*config.Config, error) {
	return config.Load(c.Log)
}

// Client builds an API client authenticated with the RYNKO_ACCESS_TOKEN
// environment variable.
func (c *Command) Client() (*rynko.Client, error) {
	cfg, err := config.Load(c.Log)
	if err != nil {
		return nil, err
	}

	token := os.Getenv("RYNKO_ACCESS_TOKEN")
	if token == "" {
		return nil, fmt.Errorf(
			"RYNKO_ACCESS_TOKEN is not set (run \"auth login\" to obtain one)")
	}

	return rynko.New(cfg,
		rynko.StaticTokenSource(rynko.Credentials{AccessToken: token}),
		rynko.WithLogger(c.Log),
	), nil
}

// Service builds the integration service over Client.
func (c *Command) Service() (*integration.Service, error) {
	client, err := c.Client()
	if err != nil {
		return nil, err
	}
	return integration.NewService(client, c.Log), nil
}

// OutputJSON prints v to the UI as indented JSON.
func (c *Command) OutputJSON(v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	c.UI.Output(string(out))
	return 0
}
