package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/browser"

	"github.com/rynko-dev/zapier/internal/cmd/base"
	"github.com/rynko-dev/zapier/pkg/rynko"
)

type LoginCommand struct {
	*base.Command

	flagRedirectURI string
	flagNoBrowser   bool
}

func (c *LoginCommand) Synopsis() string {
	return "Obtain OAuth credentials via the authorization code flow"
}

func (c *LoginCommand) Help() string {
	return `Usage: rynko-zapier auth login [options]

  Opens the Rynko authorization page, then exchanges the pasted
  authorization code for a token pair and prints it as JSON.

` + c.Flags().Help()
}

func (c *LoginCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet("auth login")
	f.StringVar(&c.flagRedirectURI, "redirect-uri",
		"urn:ietf:wg:oauth:2.0:oob",
		"Redirect URI registered for this OAuth client")
	f.BoolVar(&c.flagNoBrowser, "no-browser", false,
		"Print the authorization URL instead of opening a browser")
	return f
}

func (c *LoginCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := c.Config()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	// No token yet; the client is only used for the token endpoints.
	client := rynko.New(cfg,
		rynko.StaticTokenSource(rynko.Credentials{}),
		rynko.WithLogger(c.Log),
	)

	state := uuid.NewString()
	verifier := rynko.GenerateVerifier()
	authURL := client.AuthCodeURL(state, c.flagRedirectURI, verifier)

	if c.flagNoBrowser {
		c.UI.Output("Open the following URL to authorize access:\n\n  " + authURL)
	} else {
		c.UI.Output("Opening the authorization page in your browser...")
		if err := browser.OpenURL(authURL); err != nil {
			c.UI.Warn(fmt.Sprintf("unable to open browser: %v", err))
			c.UI.Output("Open the following URL to authorize access:\n\n  " + authURL)
		}
	}

	code, err := c.UI.Ask("Authorization code:")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading authorization code: %v", err))
		return 1
	}
	code = strings.TrimSpace(code)
	if code == "" {
		c.UI.Error("no authorization code provided")
		return 1
	}

	creds, err := client.Authorize(context.Background(), code, c.flagRedirectURI, verifier)
	if err != nil {
		c.UI.Error(fmt.Sprintf("authorization failed: %v", err))
		return 1
	}

	c.UI.Info("Authorization succeeded. Export RYNKO_ACCESS_TOKEN to use the other commands.")
	return c.OutputJSON(creds)
}
