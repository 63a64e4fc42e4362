// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/1111philo/htc-app/lib/api"
	"github.com/1111philo/htc-app/lib/identity"
	"github.com/1111philo/htc-app/lib/secret"
)

type loginParams struct {
	ConfigPath   string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	Email        string `flag:"email,e" desc:"account email address"`
	PasswordFile string `flag:"password-file" desc:"read password from file instead of prompting (\"-\" for stdin)"`
}

// LoginCommand returns the "login" command: exchange credentials for an
// identity session and persist it.
func LoginCommand() *Command {
	params := &loginParams{}

	return &Command{
		Name:    "login",
		Summary: "Authenticate with the identity provider",
		Description: `Authenticate with the identity provider and persist the session.

The password is read interactively with echo disabled, or from a file
via --password-file ("-" reads one line from stdin, for scripting).
On success the token file and the session store are updated; every
authenticated command reuses them until logout.`,
		Usage: "htc login <email> [flags]",
		Examples: []Example{
			{
				Description: "Log in interactively",
				Command:     "htc login staff@example.org",
			},
			{
				Description: "Log in from a script",
				Command:     "htc login --email staff@example.org --password-file /run/secrets/htc-password",
			},
		},
		Flags: func() *pflag.FlagSet {
			return FlagsFromParams("login", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runLogin(ctx, params, args, logger)
		},
	}
}

func runLogin(ctx context.Context, params *loginParams, args []string, logger *slog.Logger) error {
	switch {
	case params.Email == "" && len(args) == 1:
		params.Email = args[0]
	case len(args) > 0:
		return ValidationError("unexpected arguments: %v", args)
	}
	if params.Email == "" {
		return ValidationError("email is required (positional or --email)")
	}

	app, err := LoadApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	password, err := readLoginPassword(params.PasswordFile)
	if err != nil {
		return ValidationError("reading password: %w", err)
	}
	defer password.Close()

	ctx, cancel := WithTimeout(ctx)
	defer cancel()

	tokens, err := app.Identity.Login(ctx, params.Email, password)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			fmt.Fprintln(os.Stderr, "login failed")
			return &ExitError{Code: 1}
		}
		return CategorizeAPIError("login", err)
	}

	if err := tokens.SaveTo(identity.TokenFilePath()); err != nil {
		return InternalError("%w", err)
	}
	if err := app.Store.SetAuthenticated(true); err != nil {
		return InternalError("%w", err)
	}

	// Hydrate the cached auth-user profile. A failure here does not undo
	// the login; whoami re-hydrates on its next run.
	if sub := tokens.Sub(); sub != "" {
		authedAPI, err := api.NewClient(api.ClientConfig{
			BaseURL: app.Config.API.BaseURL,
			APIKey:  app.Config.API.Key,
			Tokens:  tokens,
			Logger:  logger,
		})
		if err == nil {
			if user, err := authedAPI.GetUser(ctx, sub); err != nil {
				logger.Warn("hydrating auth user failed", "error", err)
			} else if err := app.Store.SetAuthUser(user); err != nil {
				logger.Warn("caching auth user failed", "error", err)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "Logged in as %s\n", params.Email)
	return nil
}

// readLoginPassword reads the password from the given file path, or
// prompts interactively when no path was supplied.
func readLoginPassword(passwordFile string) (*secret.Buffer, error) {
	if passwordFile != "" {
		return secret.ReadFromPath(passwordFile)
	}
	return secret.Prompt("Password: ")
}
