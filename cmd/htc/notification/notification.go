// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package notification implements the "htc notification" command group.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/1111philo/htc-app/cmd/htc/cli"
	"github.com/1111philo/htc-app/lib/schema"
)

// Command returns the "notification" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "notification",
		Summary: "Manage guest notifications",
		Subcommands: []*cli.Command{
			addCommand(),
			listCommand(),
			toggleCommand(),
		},
	}
}

type addParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	GuestID    int    `flag:"guest" desc:"guest the notification attaches to"`
	Message    string `flag:"message,m" desc:"notification text"`
}

func addCommand() *cli.Command {
	params := &addParams{}

	return &cli.Command{
		Name:    "add",
		Summary: "Attach a notification to a guest",
		Description: fmt.Sprintf(`Attach a notification to a guest.

New notifications are created Active and shown to staff whenever the
guest is selected. Messages must be %d to %d characters.`,
			schema.NotificationMessageMinLength, schema.NotificationMessageMaxLength),
		Usage: "htc notification add --guest <id> --message <text> [flags]",
		Examples: []cli.Example{
			{Command: "htc notification add --guest 7 -m \"Mail waiting at the front desk\""},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("notification add", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runAdd(ctx, params, logger)
		},
	}
}

func runAdd(ctx context.Context, params *addParams, logger *slog.Logger) error {
	if params.GuestID == 0 {
		return cli.ValidationError("--guest is required")
	}

	message := strings.TrimSpace(params.Message)
	length := utf8.RuneCountInString(message)
	if length < schema.NotificationMessageMinLength || length > schema.NotificationMessageMaxLength {
		return cli.ValidationError("message must be %d to %d characters, got %d",
			schema.NotificationMessageMinLength, schema.NotificationMessageMaxLength, length)
	}

	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	if err := app.API.AddGuestNotification(ctx, params.GuestID, message); err != nil {
		return cli.CategorizeAPIError(fmt.Sprintf("creating notification for guest %d", params.GuestID), err)
	}

	fmt.Printf("notification added for guest %d\n", params.GuestID)
	return nil
}

type listParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	GuestID    int    `flag:"guest" desc:"guest whose notifications to list"`
	All        bool   `flag:"all" desc:"include archived notifications"`
}

func listCommand() *cli.Command {
	params := &listParams{}

	return &cli.Command{
		Name:    "list",
		Summary: "List a guest's notifications",
		Usage:   "htc notification list --guest <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("notification list", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runList(ctx, params, logger)
		},
	}
}

func runList(ctx context.Context, params *listParams, logger *slog.Logger) error {
	if params.GuestID == 0 {
		return cli.ValidationError("--guest is required")
	}

	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	guest, err := app.API.GetGuest(ctx, params.GuestID)
	if err != nil {
		return cli.CategorizeAPIError(fmt.Sprintf("fetching guest %d", params.GuestID), err)
	}

	notifications := guest.Notifications
	if !params.All {
		notifications = guest.ActiveNotifications()
	}
	if len(notifications) == 0 {
		fmt.Println("no notifications")
		return nil
	}

	for _, notification := range notifications {
		fmt.Printf("%d  %s  [%s]  %s\n",
			notification.NotificationID,
			schema.ReadableDateTime(notification.CreatedAt),
			notification.Status,
			notification.Message)
	}
	return nil
}

type toggleParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	ID         int    `flag:"id" desc:"notification ID to toggle"`
}

func toggleCommand() *cli.Command {
	params := &toggleParams{}

	return &cli.Command{
		Name:    "toggle",
		Summary: "Flip a notification between Active and Archived",
		Usage:   "htc notification toggle --id <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("notification toggle", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runToggle(ctx, params, logger)
		},
	}
}

func runToggle(ctx context.Context, params *toggleParams, logger *slog.Logger) error {
	if params.ID == 0 {
		return cli.ValidationError("--id is required")
	}

	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	if err := app.API.ToggleGuestNotificationStatus(ctx, params.ID); err != nil {
		return cli.CategorizeAPIError(fmt.Sprintf("toggling notification %d", params.ID), err)
	}

	fmt.Printf("toggled notification %d\n", params.ID)
	return nil
}
