// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package identity is a client for the external identity provider that
// owns staff authentication. The provider exposes a small JSON API:
// a login endpoint exchanging credentials for tokens, a refresh
// endpoint exchanging a refresh token for a fresh ID token, and a
// revoke endpoint invalidating the refresh token on logout.
//
// Wrong credentials are a normal, recoverable outcome and surface as
// [ErrNotAuthorized]; every other failure is unexpected and propagates
// wrapped. The returned [Session] implements the API client's token
// source: it hands out the current ID token and refreshes it
// transparently shortly before expiry.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/1111philo/htc-app/lib/secret"
)

// ErrNotAuthorized is returned by Login when the provider rejects the
// credentials. Callers surface this as "login failed" rather than an
// error dump.
var ErrNotAuthorized = errors.New("identity: not authorized")

// refreshSkew is how long before expiry a token is treated as already
// expired. Generous enough that a token fetched now survives the
// request it authorizes.
const refreshSkew = 60 * time.Second

// ClientConfig configures an identity provider client.
type ClientConfig struct {
	// Endpoint is the provider's base URL (e.g., "https://auth.example.org").
	Endpoint string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to the identity provider. It is unauthenticated; Login
// produces authenticated Sessions.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an identity provider client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("identity: Endpoint is required")
	}
	if _, err := url.Parse(config.Endpoint); err != nil {
		return nil, fmt.Errorf("identity: invalid Endpoint %q: %w", config.Endpoint, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint:   strings.TrimRight(config.Endpoint, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// tokenResponse is the provider's wire format for login and refresh.
type tokenResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	Sub          string `json:"sub,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Login exchanges credentials for a session. Wrong credentials return
// ErrNotAuthorized; any other failure is unexpected and propagates.
func (client *Client) Login(ctx context.Context, username string, password *secret.Buffer) (*Session, error) {
	body := map[string]string{
		"username": username,
		"password": password.String(),
	}

	var response tokenResponse
	statusCode, err := client.postJSON(ctx, "/login", body, &response)
	if err != nil {
		return nil, fmt.Errorf("identity: login: %w", err)
	}

	// The provider signals bad credentials with 401 or an explicit
	// error code; both are the recoverable "wrong password" outcome.
	if statusCode == http.StatusUnauthorized || response.Error == "not_authorized" {
		return nil, ErrNotAuthorized
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("identity: login: HTTP %d: %s", statusCode, response.Error)
	}
	if response.IDToken == "" || response.RefreshToken == "" {
		return nil, fmt.Errorf("identity: login response missing tokens")
	}

	return &Session{
		client: client,
		state: SessionState{
			Username:     username,
			Sub:          response.Sub,
			IDToken:      response.IDToken,
			RefreshToken: response.RefreshToken,
			ExpiresAt:    time.Now().Add(time.Duration(response.ExpiresIn) * time.Second),
		},
	}, nil
}

// Revoke invalidates a refresh token on the provider. Used by logout;
// a failure here is reported but the local session is discarded
// regardless.
func (client *Client) Revoke(ctx context.Context, refreshToken string) error {
	var response tokenResponse
	statusCode, err := client.postJSON(ctx, "/revoke", map[string]string{"refresh_token": refreshToken}, &response)
	if err != nil {
		return fmt.Errorf("identity: revoke: %w", err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("identity: revoke: HTTP %d: %s", statusCode, response.Error)
	}
	return nil
}

// refresh exchanges the refresh token for a fresh ID token.
func (client *Client) refresh(ctx context.Context, refreshToken string) (*tokenResponse, error) {
	var response tokenResponse
	statusCode, err := client.postJSON(ctx, "/refresh", map[string]string{"refresh_token": refreshToken}, &response)
	if err != nil {
		return nil, fmt.Errorf("identity: refresh: %w", err)
	}
	if statusCode == http.StatusUnauthorized {
		return nil, ErrNotAuthorized
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("identity: refresh: HTTP %d: %s", statusCode, response.Error)
	}
	if response.IDToken == "" {
		return nil, fmt.Errorf("identity: refresh response missing id_token")
	}
	return &response, nil
}

// postJSON issues one POST and decodes the JSON response body, which
// is returned alongside the status code so callers can interpret
// error shapes themselves.
func (client *Client) postJSON(ctx context.Context, path string, body any, result *tokenResponse) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("encoding request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, 1<<16))
	if err != nil {
		return response.StatusCode, fmt.Errorf("reading response: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return response.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return response.StatusCode, nil
}
