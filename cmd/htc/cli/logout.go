// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/1111philo/htc-app/lib/identity"
)

type logoutParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
}

// LogoutCommand returns the "logout" command: revoke the identity
// session and clear local state.
func LogoutCommand() *Command {
	params := &logoutParams{}

	return &Command{
		Name:    "logout",
		Summary: "End the current session",
		Description: `Revoke the identity session and clear local login state.

The refresh token is revoked with the provider on a best-effort basis;
local state (the token file and the session store) is cleared even when
revocation fails, so logout always leaves the client logged out.`,
		Usage: "htc logout [flags]",
		Flags: func() *pflag.FlagSet {
			return FlagsFromParams("logout", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runLogout(ctx, params, logger)
		},
	}
}

func runLogout(ctx context.Context, params *logoutParams, logger *slog.Logger) error {
	app, err := LoadApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := WithTimeout(ctx)
	defer cancel()

	tokenPath := identity.TokenFilePath()

	// Revoke with the provider when a session exists. Failure is logged,
	// not fatal; the local teardown below happens regardless.
	if tokens, err := identity.LoadSession(app.Identity, tokenPath); err == nil {
		if err := app.Identity.Revoke(ctx, tokens.RefreshToken()); err != nil {
			logger.Warn("revoking refresh token failed", "error", err)
		}
	}

	if err := os.Remove(tokenPath); err != nil && !os.IsNotExist(err) {
		return InternalError("removing token file: %w", err)
	}
	if err := app.Store.Reset(); err != nil {
		return InternalError("%w", err)
	}

	fmt.Fprintln(os.Stderr, "Logged out")
	return nil
}
