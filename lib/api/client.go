// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// TokenSource supplies a bearer token for the auth namespace. The
// client calls it on every request, so implementations are free to
// refresh expiring tokens internally.
type TokenSource interface {
	IDToken(ctx context.Context) (string, error)
}

// ClientConfig configures a backend API client.
type ClientConfig struct {
	// BaseURL is the backend root (e.g., "https://api.example.org").
	// The public and auth namespaces hang off it as /public and /auth.
	BaseURL string

	// APIKey authenticates requests to the public namespace.
	APIKey string

	// Tokens supplies bearer tokens for the auth namespace. Required
	// only if auth-namespace methods are called.
	Tokens TokenSource

	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client

	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client is a typed HTTP client for the service-center backend.
type Client struct {
	baseURL    string
	apiKey     string
	tokens     TokenSource
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend API client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
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
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		tokens:     config.Tokens,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// PageOffset converts a 1-based page number to the row offset the
// backend's pagination expects. Pages below 1 clamp to offset 0.
func PageOffset(pageNum, limit int) int {
	if pageNum < 1 {
		return 0
	}
	return (pageNum - 1) * limit
}

// successEnvelope is the {success: boolean} wrapper some endpoints use
// to report outcomes on a 200 response.
type successEnvelope struct {
	Success bool `json:"success"`
}

// postPublic issues a POST to the public (API-key) namespace.
func (client *Client) postPublic(ctx context.Context, path string, body, result any) error {
	return client.post(ctx, "/public"+path, body, result, func(request *http.Request) error {
		request.Header.Set("X-Api-Key", client.apiKey)
		return nil
	})
}

// postAuth issues a POST to the authenticated namespace. The bearer
// token is fetched from the TokenSource per request.
func (client *Client) postAuth(ctx context.Context, path string, body, result any) error {
	return client.post(ctx, "/auth"+path, body, result, func(request *http.Request) error {
		if client.tokens == nil {
			return &Error{Kind: KindUnauthorized, Path: path, Err: fmt.Errorf("no token source configured; log in first")}
		}
		token, err := client.tokens.IDToken(request.Context())
		if err != nil {
			return &Error{Kind: KindUnauthorized, Path: path, Err: fmt.Errorf("fetching bearer token: %w", err)}
		}
		request.Header.Set("Authorization", "Bearer "+token)
		return nil
	})
}

// post performs one JSON POST request and decodes the 200 response
// body into result (skipped when result is nil). Non-2xx statuses and
// transport failures come back as *Error with the appropriate kind.
func (client *Client) post(ctx context.Context, path string, body, result any, authorize func(*http.Request) error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindServer, Path: path, Err: fmt.Errorf("encoding request: %w", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Error{Kind: KindTransport, Path: path, Err: err}
	}
	request.Header.Set("Content-Type", "application/json")

	if err := authorize(request); err != nil {
		return err
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Debug("backend request failed", "path", path, "error", err)
		return &Error{Kind: KindTransport, Path: path, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &Error{
			Kind:       classifyStatus(response.StatusCode),
			Path:       path,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("%s", errorBody(response.Body)),
		}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(result); err != nil {
		return &Error{Kind: KindServer, Path: path, StatusCode: response.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// errorBody extracts a short diagnostic string from an error response
// body. Tries the conventional {"error": "..."} shape first, then
// falls back to the raw body, truncated.
func errorBody(body io.Reader) string {
	const maxBodyBytes = 512

	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil || len(data) == 0 {
		return "no response body"
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(data))
}
