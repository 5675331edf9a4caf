package cmd

import (
	"bufio"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/rynko-dev/zapier/internal/cmd/base"
	"github.com/rynko-dev/zapier/internal/cmd/commands/auth"
	"github.com/rynko-dev/zapier/internal/cmd/commands/generate"
	"github.com/rynko-dev/zapier/internal/cmd/commands/jobs"
	"github.com/rynko-dev/zapier/internal/cmd/commands/teams"
	"github.com/rynko-dev/zapier/internal/cmd/commands/templates"
	versioncmd "github.com/rynko-dev/zapier/internal/cmd/commands/version"
	"github.com/rynko-dev/zapier/internal/cmd/commands/webhooks"
	"github.com/rynko-dev/zapier/internal/cmd/commands/workspaces"
	"github.com/rynko-dev/zapier/internal/version"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := args[0]

	log := hclog.New(&hclog.LoggerOptions{
		Name:  cliName,
		Level: hclog.LevelFromString(os.Getenv("RYNKO_LOG_LEVEL")),
	})

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: initCommands(log, ui),
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}

func initCommands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := &base.Command{UI: ui, Log: log}

	return map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
		"auth": func() (cli.Command, error) {
			return &auth.Command{Command: b}, nil
		},
		"auth login": func() (cli.Command, error) {
			return &auth.LoginCommand{Command: b}, nil
		},
		"auth verify": func() (cli.Command, error) {
			return &auth.VerifyCommand{Command: b}, nil
		},
		"teams": func() (cli.Command, error) {
			return &teams.Command{Command: b}, nil
		},
		"teams list": func() (cli.Command, error) {
			return &teams.ListCommand{Command: b}, nil
		},
		"workspaces": func() (cli.Command, error) {
			return &workspaces.Command{Command: b}, nil
		},
		"workspaces list": func() (cli.Command, error) {
			return &workspaces.ListCommand{Command: b}, nil
		},
		"templates": func() (cli.Command, error) {
			return &templates.Command{Command: b}, nil
		},
		"templates list": func() (cli.Command, error) {
			return &templates.ListCommand{Command: b}, nil
		},
		"templates fields": func() (cli.Command, error) {
			return &templates.FieldsCommand{Command: b}, nil
		},
		"generate": func() (cli.Command, error) {
			return &generate.Command{Command: b}, nil
		},
		"jobs": func() (cli.Command, error) {
			return &jobs.Command{Command: b}, nil
		},
		"jobs find": func() (cli.Command, error) {
			return &jobs.FindCommand{Command: b}, nil
		},
		"webhooks": func() (cli.Command, error) {
			return &webhooks.Command{Command: b}, nil
		},
		"webhooks subscribe": func() (cli.Command, error) {
			return &webhooks.SubscribeCommand{Command: b}, nil
		},
		"webhooks unsubscribe": func() (cli.Command, error) {
			return &webhooks.UnsubscribeCommand{Command: b}, nil
		},
	}
}
