// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Command htc is the staff client for the walk-in service center.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/1111philo/htc-app/cmd/htc/cli"
	"github.com/1111philo/htc-app/cmd/htc/commands"
)

func main() {
	logger := cli.NewCommandLogger()

	err := commands.Root().Execute(context.Background(), os.Args[1:], logger)
	if err == nil {
		return
	}

	// ExitError means the command already reported its outcome and only
	// needs the process to exit non-zero.
	if exitErr, ok := err.(interface{ ExitCode() int }); ok {
		os.Exit(exitErr.ExitCode())
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
