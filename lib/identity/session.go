// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SessionState is the persisted form of a session: the provider's
// tokens plus the identifiers needed to rebuild the auth user view.
type SessionState struct {
	Username     string    `json:"username"`
	Sub          string    `json:"sub,omitempty"`
	IDToken      string    `json:"id_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Session is an authenticated identity session. It implements the API
// client's TokenSource: IDToken returns the current bearer token,
// refreshing it through the provider when it is about to expire.
//
// Sessions are safe for concurrent use; refresh is serialized so
// overlapping requests trigger at most one round trip.
type Session struct {
	client *Client

	mu    sync.Mutex
	state SessionState
	// path, when set, receives the updated state after every refresh
	// so a restarted process resumes the same session.
	path string
}

// Username returns the login name this session was created with.
func (session *Session) Username() string {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state.Username
}

// Sub returns the provider's subject identifier for the account.
func (session *Session) Sub() string {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state.Sub
}

// RefreshToken returns the current refresh token, for revocation.
func (session *Session) RefreshToken() string {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state.RefreshToken
}

// IDToken returns a bearer token valid for at least refreshSkew,
// refreshing through the provider if the cached one is too close to
// expiry. This is called once per backend request.
func (session *Session) IDToken(ctx context.Context) (string, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if time.Until(session.state.ExpiresAt) > refreshSkew {
		return session.state.IDToken, nil
	}

	response, err := session.client.refresh(ctx, session.state.RefreshToken)
	if err != nil {
		return "", err
	}

	session.state.IDToken = response.IDToken
	session.state.ExpiresAt = time.Now().Add(time.Duration(response.ExpiresIn) * time.Second)
	if response.RefreshToken != "" {
		session.state.RefreshToken = response.RefreshToken
	}

	if session.path != "" {
		if err := writeState(session.path, session.state); err != nil {
			session.client.logger.Warn("persisting refreshed session failed", "path", session.path, "error", err)
		}
	}

	return session.state.IDToken, nil
}

// SaveTo persists the session state to path (mode 0600, parent
// directory created 0700) and keeps persisting after every refresh.
func (session *Session) SaveTo(path string) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := writeState(path, session.state); err != nil {
		return err
	}
	session.path = path
	return nil
}

// LoadSession rebuilds a session from a state file written by SaveTo.
// Returns a clear error directing the user to log in when no session
// file exists.
func LoadSession(client *Client, path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no session found at %s; run \"htc login\" first", path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	if state.RefreshToken == "" {
		return nil, fmt.Errorf("session file %s has no refresh_token", path)
	}

	return &Session{client: client, state: state, path: path}, nil
}

// TokenFilePath returns the session state location: $HTC_TOKEN_FILE,
// or tokens.json in the user config directory.
func TokenFilePath() string {
	if envPath := os.Getenv("HTC_TOKEN_FILE"); envPath != "" {
		return envPath
	}
	return filepath.Join(configDirectory(), "htc", "tokens.json")
}

// configDirectory resolves $XDG_CONFIG_HOME with the ~/.config
// fallback.
func configDirectory() string {
	if directory := os.Getenv("XDG_CONFIG_HOME"); directory != "" {
		return directory
	}
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(homeDirectory, ".config")
}

// writeState writes session state with owner-only permissions, since
// it contains live tokens.
func writeState(path string, state SessionState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}
