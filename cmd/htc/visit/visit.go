// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package visit implements the "htc visit" command group.
package visit

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/1111philo/htc-app/cmd/htc/cli"
	"github.com/1111philo/htc-app/lib/tui"
	"github.com/1111philo/htc-app/lib/visitui"
)

// Command returns the "visit" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "visit",
		Summary: "Log guest visits",
		Subcommands: []*cli.Command{
			newCommand(),
		},
	}
}

type newParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	ThemePath  string `flag:"theme" desc:"path to a theme file (jsonc)"`
}

func newCommand() *cli.Command {
	params := &newParams{}

	return &cli.Command{
		Name:    "new",
		Summary: "Open the interactive visit form",
		Description: `Open the interactive visit form.

Search for a guest, pick the services for this visit, and submit. The
form also covers creating a new guest inline and managing the guest's
active notifications.`,
		Usage: "htc visit new [flags]",
		Examples: []cli.Example{
			{Command: "htc visit new"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("visit new", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runNew(ctx, params, logger)
		},
	}
}

func runNew(ctx context.Context, params *newParams, logger *slog.Logger) error {
	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	// Only the catalog fetch is deadline-bounded; the TUI itself runs
	// until the user quits.
	catalogCtx, cancel := cli.WithTimeout(ctx)
	catalog, err := app.API.GetServices(catalogCtx)
	cancel()
	if err != nil {
		return cli.CategorizeAPIError("fetching service catalog", err)
	}

	themePath := params.ThemePath
	if themePath == "" {
		themePath = defaultThemePath()
	}

	// A missing theme file yields the built-in theme; a malformed one
	// is an error either way.
	theme, err := tui.LoadTheme(themePath)
	if err != nil {
		return cli.ValidationError("%w", err)
	}

	return visitui.Run(visitui.Config{
		Backend:        app.API,
		Catalog:        catalog,
		DefaultService: app.Config.DefaultService,
		Theme:          &theme,
		Logger:         logger,
	})
}

func defaultThemePath() string {
	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "htc-theme.jsonc")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "htc", "theme.jsonc")
}
