// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the htc command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/1111philo/htc-app/cmd/htc/cli"
	"github.com/1111philo/htc-app/cmd/htc/notification"
	"github.com/1111philo/htc-app/cmd/htc/service"
	"github.com/1111philo/htc-app/cmd/htc/user"
	"github.com/1111philo/htc-app/cmd/htc/visit"
	"github.com/1111philo/htc-app/lib/version"
)

// Root returns the complete htc command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "htc",
		Summary: "Service-center client",
		Description: `htc is the staff client for the walk-in service center: log guest
visits, manage guest notifications, inspect service queues, and
administer staff accounts.

Configuration comes from the file named by HTC_CONFIG or --config;
there is no automatic discovery.`,
		Examples: []cli.Example{
			{
				Description: "Log in, then open the visit form",
				Command:     "htc login --email staff@example.org && htc visit new",
			},
			{
				Description: "See who is waiting for the shower service",
				Command:     "htc service queued --service 3",
			},
		},
		Subcommands: []*cli.Command{
			cli.LoginCommand(),
			cli.LogoutCommand(),
			cli.WhoamiCommand(),
			visit.Command(),
			user.Command(),
			service.Command(),
			notification.Command(),
			{
				Name:    "version",
				Summary: "Show version information",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					fmt.Println(version.Full())
					return nil
				},
			},
		},
	}
}
