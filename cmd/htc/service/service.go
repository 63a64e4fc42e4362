// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package service implements the "htc service" command group: catalog
// inspection and per-service guest queues.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/1111philo/htc-app/cmd/htc/cli"
	"github.com/1111philo/htc-app/lib/schema"
	"github.com/1111philo/htc-app/lib/tui"
)

// Command returns the "service" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "service",
		Summary: "Inspect services and guest queues",
		Subcommands: []*cli.Command{
			listCommand(),
			slottedCommand(),
			queuedCommand(),
			completedCommand(),
			setStatusCommand(),
		},
	}
}

type configOnlyParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
}

func listCommand() *cli.Command {
	params := &configOnlyParams{}

	return &cli.Command{
		Name:    "list",
		Summary: "List the service catalog",
		Usage:   "htc service list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("service list", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
			if err != nil {
				return err
			}

			ctx, cancel := cli.WithTimeout(ctx)
			defer cancel()

			catalog, err := app.API.GetServices(ctx)
			if err != nil {
				return cli.CategorizeAPIError("fetching service catalog", err)
			}

			if len(catalog) == 0 {
				fmt.Println("no services")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tQUOTA\tSLOTS")
			for _, service := range catalog {
				fmt.Fprintf(writer, "%d\t%s\t%d\t%d\n",
					service.ServiceID, service.Name, service.Quota, service.NumSlots)
			}
			writer.Flush()
			return nil
		},
	}
}

type serviceIDParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	ServiceID  int    `flag:"service" desc:"service ID"`
}

func slottedCommand() *cli.Command {
	params := &serviceIDParams{}

	return &cli.Command{
		Name:    "slotted",
		Summary: "List guests currently occupying slots for a service",
		Usage:   "htc service slotted --service <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("service slotted", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if params.ServiceID == 0 {
				return cli.ValidationError("--service is required")
			}

			app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
			if err != nil {
				return err
			}

			ctx, cancel := cli.WithTimeout(ctx)
			defer cancel()

			guests, err := app.API.ServiceGuestsSlotted(ctx, params.ServiceID)
			if err != nil {
				return cli.CategorizeAPIError(fmt.Sprintf("fetching slotted guests for service %d", params.ServiceID), err)
			}

			if len(guests) == 0 {
				fmt.Println("no slotted guests")
				return nil
			}
			fmt.Printf("%s guests for service %d:\n", statusLabel(schema.GuestServiceSlotted), params.ServiceID)
			for _, guest := range guests {
				fmt.Println(guest.OptionLabel())
			}
			return nil
		},
	}
}

func queuedCommand() *cli.Command {
	params := &serviceIDParams{}

	return &cli.Command{
		Name:    "queued",
		Summary: "List guests waiting for a service",
		Usage:   "htc service queued --service <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("service queued", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runOpaqueRows(ctx, params, logger, schema.GuestServiceQueued,
				func(ctx context.Context, app *cli.App) ([]map[string]any, error) {
					return app.API.ServiceGuestsQueued(ctx, params.ServiceID)
				})
		},
	}
}

func completedCommand() *cli.Command {
	params := &serviceIDParams{}

	return &cli.Command{
		Name:    "completed",
		Summary: "List guests who finished a service today",
		Usage:   "htc service completed --service <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("service completed", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runOpaqueRows(ctx, params, logger, schema.GuestServiceCompleted,
				func(ctx context.Context, app *cli.App) ([]map[string]any, error) {
					return app.API.ServiceGuestsCompleted(ctx, params.ServiceID)
				})
		},
	}
}

// runOpaqueRows handles the queue listings whose row schema the backend
// has not pinned down. Rows print as sorted key/value pairs so nothing
// is silently dropped.
func runOpaqueRows(ctx context.Context, params *serviceIDParams, logger *slog.Logger, status schema.GuestServiceStatus, fetch func(context.Context, *cli.App) ([]map[string]any, error)) error {
	if params.ServiceID == 0 {
		return cli.ValidationError("--service is required")
	}

	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	label := strings.ToLower(string(status))
	rows, err := fetch(ctx, app)
	if err != nil {
		return cli.CategorizeAPIError(fmt.Sprintf("fetching %s guests for service %d", label, params.ServiceID), err)
	}

	if len(rows) == 0 {
		fmt.Printf("no %s guests\n", label)
		return nil
	}
	fmt.Printf("%s guests for service %d:\n", statusLabel(status), params.ServiceID)
	for index, row := range rows {
		if index > 0 {
			fmt.Println()
		}
		printRow(row)
	}
	return nil
}

// statusLabel renders a queue status word in its theme color.
func statusLabel(status schema.GuestServiceStatus) string {
	return lipgloss.NewStyle().
		Foreground(tui.DefaultTheme.QueueColor(status)).
		Render(string(status))
}

// printRow writes one opaque row as sorted key/value lines.
func printRow(row map[string]any) {
	keys := make([]string, 0, len(row))
	for key := range row {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s: %v\n", key, row[key])
	}
}

type setStatusParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	ServiceID  int    `flag:"service" desc:"service ID"`
	GuestID    int    `flag:"guest" desc:"guest ID"`
	Status     string `flag:"status" desc:"new status: Queued, Slotted, or Completed"`
	SlotID     int    `flag:"slot" desc:"slot to assign (Slotted only)"`
}

func setStatusCommand() *cli.Command {
	params := &setStatusParams{}

	return &cli.Command{
		Name:    "set-status",
		Summary: "Move a guest between queued, slotted, and completed",
		Usage:   "htc service set-status --service <id> --guest <id> --status <status> [flags]",
		Examples: []cli.Example{
			{
				Description: "Assign guest 7 to slot 2 of the shower service",
				Command:     "htc service set-status --service 3 --guest 7 --status Slotted --slot 2",
			},
			{
				Description: "Mark the same guest done",
				Command:     "htc service set-status --service 3 --guest 7 --status Completed",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("service set-status", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runSetStatus(ctx, params, logger)
		},
	}
}

func runSetStatus(ctx context.Context, params *setStatusParams, logger *slog.Logger) error {
	if params.ServiceID == 0 {
		return cli.ValidationError("--service is required")
	}
	if params.GuestID == 0 {
		return cli.ValidationError("--guest is required")
	}

	status := schema.GuestServiceStatus(params.Status)
	switch status {
	case schema.GuestServiceQueued, schema.GuestServiceSlotted, schema.GuestServiceCompleted:
	default:
		return cli.ValidationError("--status must be Queued, Slotted, or Completed (got %q)", params.Status)
	}

	var slotID *int
	if status == schema.GuestServiceSlotted {
		if params.SlotID == 0 {
			return cli.ValidationError("--slot is required when --status is Slotted")
		}
		slotID = &params.SlotID
	} else if params.SlotID != 0 {
		return cli.ValidationError("--slot only applies when --status is Slotted")
	}

	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	// Resolve the service before moving the guest: a typoed --service
	// fails here as not_found instead of an opaque backend rejection,
	// and the confirmation can name the service.
	service, err := app.API.GetService(ctx, params.ServiceID)
	if err != nil {
		return cli.CategorizeAPIError(fmt.Sprintf("fetching service %d", params.ServiceID), err)
	}

	err = app.API.UpdateGuestServiceStatus(ctx, status, params.GuestID, params.ServiceID, slotID)
	if err != nil {
		return cli.CategorizeAPIError(
			fmt.Sprintf("setting guest %d to %s for %s", params.GuestID, status, service.Name), err)
	}

	fmt.Printf("guest %d is now %s for %s\n", params.GuestID, statusLabel(status), service.Name)
	return nil
}
