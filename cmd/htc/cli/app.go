// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/1111philo/htc-app/lib/api"
	"github.com/1111philo/htc-app/lib/config"
	"github.com/1111philo/htc-app/lib/identity"
	"github.com/1111philo/htc-app/lib/session"
)

// RequestTimeout bounds a CLI command's backend round trips. Interactive
// programs (the visit TUI) manage their own per-request deadlines.
const RequestTimeout = 15 * time.Second

// WithTimeout derives the context CLI commands use for backend calls.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, RequestTimeout)
}

// App bundles the wired client stack every command needs: loaded
// configuration, the persisted session store, the identity provider
// client, and the backend API client. Commands receive the stack fully
// constructed and never reach for globals.
type App struct {
	// Config is the loaded client configuration.
	Config *config.Config

	// Store is the persisted login-state store.
	Store *session.Store

	// Identity talks to the external identity provider.
	Identity *identity.Client

	// Tokens is the identity session supplying bearer tokens, or nil
	// when the app was loaded without authentication.
	Tokens *identity.Session

	// API is the backend client. Auth-namespace calls fail with an
	// unauthorized error unless Tokens is set.
	API *api.Client
}

// LoadApp builds the client stack without requiring a login: config,
// session store, identity client, and an API client limited to the
// public namespace. Used by login itself and by sign-up style commands.
func LoadApp(configPath string, logger *slog.Logger) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, ValidationError("%w", err)
	}

	store, err := session.Open(session.FilePath())
	if err != nil {
		return nil, InternalError("%w", err)
	}

	identityClient, err := identity.NewClient(identity.ClientConfig{
		Endpoint: cfg.Identity.Endpoint,
		Logger:   logger,
	})
	if err != nil {
		return nil, ValidationError("%w", err)
	}

	apiClient, err := api.NewClient(api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
		Logger:  logger,
	})
	if err != nil {
		return nil, ValidationError("%w", err)
	}

	return &App{
		Config:   cfg,
		Store:    store,
		Identity: identityClient,
		API:      apiClient,
	}, nil
}

// LoadAuthenticatedApp builds the client stack with a live identity
// session wired in as the API client's token source. Fails with a
// forbidden error directing the user to log in when no session exists.
func LoadAuthenticatedApp(configPath string, logger *slog.Logger) (*App, error) {
	app, err := LoadApp(configPath, logger)
	if err != nil {
		return nil, err
	}

	tokens, err := identity.LoadSession(app.Identity, identity.TokenFilePath())
	if err != nil {
		return nil, ForbiddenError("%w", err)
	}

	apiClient, err := api.NewClient(api.ClientConfig{
		BaseURL: app.Config.API.BaseURL,
		APIKey:  app.Config.API.Key,
		Tokens:  tokens,
		Logger:  logger,
	})
	if err != nil {
		return nil, ValidationError("%w", err)
	}

	app.Tokens = tokens
	app.API = apiClient
	return app, nil
}
