// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package user implements the "htc user" command group for staff
// account administration.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/1111philo/htc-app/cmd/htc/cli"
	"github.com/1111philo/htc-app/lib/api"
	"github.com/1111philo/htc-app/lib/schema"
	"github.com/1111philo/htc-app/lib/secret"
)

// Command returns the "user" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Summary: "Manage staff accounts",
		Subcommands: []*cli.Command{
			addCommand(),
			updateCommand(),
			deleteCommand(),
			getCommand(),
			listCommand(),
		},
	}
}

type addParams struct {
	ConfigPath   string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	Name         string `flag:"name" desc:"display name"`
	Email        string `flag:"email" desc:"account email address"`
	Role         string `flag:"role" desc:"account role (e.g., admin, staff)"`
	PasswordFile string `flag:"password-file" desc:"read initial password from file instead of prompting (\"-\" for stdin)"`
}

func addCommand() *cli.Command {
	params := &addParams{}

	return &cli.Command{
		Name:    "add",
		Summary: "Create a staff account",
		Description: `Create a staff account.

The backend registers the account with the identity provider, so this
goes through the sign-up path and needs no prior login.`,
		Usage: "htc user add --name <name> --email <address> [flags]",
		Examples: []cli.Example{
			{Command: "htc user add --name \"June Okafor\" --email june@example.org --role staff"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("user add", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runAdd(ctx, params, logger)
		},
	}
}

func runAdd(ctx context.Context, params *addParams, logger *slog.Logger) error {
	if params.Name == "" {
		return cli.ValidationError("--name is required")
	}
	if params.Email == "" {
		return cli.ValidationError("--email is required")
	}

	app, err := cli.LoadApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	var password *secret.Buffer
	if params.PasswordFile != "" {
		password, err = secret.ReadFromPath(params.PasswordFile)
	} else {
		password, err = secret.Prompt("Initial password: ")
	}
	if err != nil {
		return cli.ValidationError("reading password: %w", err)
	}
	defer password.Close()

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	userID, err := app.API.AddUser(ctx, schema.User{
		Name:  params.Name,
		Email: params.Email,
		Role:  params.Role,
	}, password.String())
	if err != nil {
		return cli.CategorizeAPIError("creating user", err)
	}

	fmt.Printf("created user %d\n", userID)
	return nil
}

type updateParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	ID         int    `flag:"id" desc:"user ID to update"`
	Name       string `flag:"name" desc:"new display name"`
	Email      string `flag:"email" desc:"new email address"`
	Role       string `flag:"role" desc:"new role"`
}

func updateCommand() *cli.Command {
	params := &updateParams{}

	return &cli.Command{
		Name:    "update",
		Summary: "Update a staff account's profile",
		Usage:   "htc user update --id <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("user update", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runUpdate(ctx, params, logger)
		},
	}
}

func runUpdate(ctx context.Context, params *updateParams, logger *slog.Logger) error {
	if params.ID == 0 {
		return cli.ValidationError("--id is required")
	}
	if params.Name == "" && params.Email == "" && params.Role == "" {
		return cli.ValidationError("nothing to update: pass --name, --email, or --role")
	}

	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	err = app.API.UpdateUser(ctx, schema.User{
		UserID: params.ID,
		Name:   params.Name,
		Email:  params.Email,
		Role:   params.Role,
	})
	if err != nil {
		return cli.CategorizeAPIError(fmt.Sprintf("updating user %d", params.ID), err)
	}

	fmt.Printf("updated user %d\n", params.ID)
	return nil
}

type deleteParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	ID         int    `flag:"id" desc:"user ID to delete"`
}

func deleteCommand() *cli.Command {
	params := &deleteParams{}

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a staff account",
		Usage:   "htc user delete --id <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("user delete", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runDelete(ctx, params, logger)
		},
	}
}

func runDelete(ctx context.Context, params *deleteParams, logger *slog.Logger) error {
	if params.ID == 0 {
		return cli.ValidationError("--id is required")
	}

	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	if err := app.API.DeleteUser(ctx, params.ID); err != nil {
		return cli.CategorizeAPIError(fmt.Sprintf("deleting user %d", params.ID), err)
	}

	fmt.Printf("deleted user %d\n", params.ID)
	return nil
}

type getParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	Sub        string `flag:"sub" desc:"identity provider subject identifier"`
}

func getCommand() *cli.Command {
	params := &getParams{}

	return &cli.Command{
		Name:    "get",
		Summary: "Fetch one staff account by subject identifier",
		Usage:   "htc user get --sub <sub> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("user get", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runGet(ctx, params, logger)
		},
	}
}

func runGet(ctx context.Context, params *getParams, logger *slog.Logger) error {
	if params.Sub == "" {
		return cli.ValidationError("--sub is required")
	}

	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	user, err := app.API.GetUser(ctx, params.Sub)
	if err != nil {
		return cli.CategorizeAPIError("fetching user", err)
	}

	printUsers([]schema.User{*user})
	return nil
}

type listParams struct {
	ConfigPath string `flag:"config" desc:"path to configuration file (or set HTC_CONFIG)"`
	Query      string `flag:"query,q" desc:"free-text search instead of paging"`
	Page       int    `flag:"page" desc:"1-based page number" default:"1"`
	Limit      int    `flag:"limit" desc:"page size" default:"20"`
}

func listCommand() *cli.Command {
	params := &listParams{}

	return &cli.Command{
		Name:    "list",
		Summary: "List staff accounts",
		Usage:   "htc user list [flags]",
		Examples: []cli.Example{
			{Description: "Second page of twenty", Command: "htc user list --page 2"},
			{Description: "Search by name", Command: "htc user list -q june"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("user list", params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runList(ctx, params, logger)
		},
	}
}

func runList(ctx context.Context, params *listParams, logger *slog.Logger) error {
	app, err := cli.LoadAuthenticatedApp(params.ConfigPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := cli.WithTimeout(ctx)
	defer cancel()

	var page *api.UsersPage
	if params.Query != "" {
		page, err = app.API.SearchUsers(ctx, params.Query)
		if err != nil {
			return cli.CategorizeAPIError("searching users", err)
		}
	} else {
		page, err = app.API.GetUsers(ctx, params.Page, params.Limit)
		if err != nil {
			return cli.CategorizeAPIError("listing users", err)
		}
	}

	printUsers(page.Rows)
	if page.Total > 0 {
		fmt.Printf("total: %d\n", page.Total)
	}
	return nil
}

// printUsers writes an aligned table of accounts to stdout.
func printUsers(users []schema.User) {
	if len(users) == 0 {
		fmt.Println("no users")
		return
	}

	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tEMAIL\tROLE")
	for _, user := range users {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			strconv.Itoa(user.UserID), user.Name, user.Email, user.Role)
	}
	writer.Flush()
}
