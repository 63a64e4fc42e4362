// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/1111philo/htc-app/lib/session"
)

type whoamiParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
}

// WhoamiCommand returns the "whoami" command: check the session against
// the backend and show the logged-in account.
func WhoamiCommand() *Command {
	params := &whoamiParams{}

	return &Command{
		Name:    "whoami",
		Summary: "Show the logged-in account",
		Description: `Check the current session against the backend and show the account.

A failed check tears down local login state, so a stale session never
lingers as "logged in".`,
		Usage: "htc whoami [flags]",
		Flags: func() *pflag.FlagSet {
			return FlagsFromParams("whoami", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runWhoami(ctx, params, logger)
		},
	}
}

func runWhoami(ctx context.Context, params *whoamiParams, logger *slog.Logger) error {
	app, err := LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		// No token file means logged out; make sure the store agrees.
		if store, openErr := session.Open(session.FilePath()); openErr == nil {
			if resetErr := store.Reset(); resetErr != nil {
				logger.Warn("resetting session store failed", "error", resetErr)
			}
		}
		fmt.Fprintln(os.Stderr, "not logged in")
		return &ExitError{Code: 1}
	}

	ctx, cancel := WithTimeout(ctx)
	defer cancel()

	sub := app.Tokens.Sub()
	if sub == "" {
		// An old token file without a subject cannot be verified; treat
		// it like a failed check.
		resetStoreQuietly(app, logger)
		fmt.Fprintln(os.Stderr, "session is stale, log in again")
		return &ExitError{Code: 1}
	}

	user, err := app.API.GetUser(ctx, sub)
	if err != nil {
		resetStoreQuietly(app, logger)
		fmt.Fprintln(os.Stderr, "session check failed, log in again")
		return &ExitError{Code: 1}
	}

	if err := app.Store.SetAuthUser(user); err != nil {
		logger.Warn("caching auth user failed", "error", err)
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	if user.Role != "" {
		fmt.Printf("role: %s\n", user.Role)
	}
	return nil
}

// resetStoreQuietly clears the session store, logging rather than
// failing when the write does not succeed.
func resetStoreQuietly(app *App, logger *slog.Logger) {
	if err := app.Store.Reset(); err != nil {
		logger.Warn("resetting session store failed", "error", err)
	}
}
