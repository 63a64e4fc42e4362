// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package session holds the client's view of "who is logged in": a
// single authenticated flag and a cached auth-user profile, persisted
// so they survive restarts.
//
// The store is deliberately narrow. It has exactly two mutation entry
// points: SetAuthenticated (successful login, logout) and SetAuthUser
// (session hydration), plus Reset, which both of the teardown paths
// (logout, failed session check) use to restore defaults. Every other
// component receives the store by injection and only reads it. Token
// material is not stored here; the identity session manages its own
// cache.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/1111philo/htc-app/lib/schema"
)

// Store is the persisted session state. Load one with Open, mutate it
// only through the named mutators.
type Store struct {
	path string
	data storeData
}

type storeData struct {
	Authenticated bool         `json:"authenticated"`
	AuthUser      *schema.User `json:"auth_user,omitempty"`
}

// FilePath returns the session store location: $HTC_SESSION_FILE, or
// session.json in the user config directory.
func FilePath() string {
	if envPath := os.Getenv("HTC_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "htc-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "htc", "session.json")
}

// Open loads the store from path, or returns a default (logged-out)
// store when no file exists yet. A corrupt file is an error rather
// than a silent reset, so an operator can see what happened.
func Open(path string) (*Store, error) {
	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("reading session store %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &store.data); err != nil {
		return nil, fmt.Errorf("parsing session store %s: %w", path, err)
	}
	return store, nil
}

// Authenticated reports whether a login has succeeded and not been
// torn down.
func (store *Store) Authenticated() bool {
	return store.data.Authenticated
}

// AuthUser returns the cached auth-user profile, or nil before
// hydration.
func (store *Store) AuthUser() *schema.User {
	return store.data.AuthUser
}

// SetAuthenticated records a login outcome and persists immediately.
func (store *Store) SetAuthenticated(authenticated bool) error {
	store.data.Authenticated = authenticated
	return store.persist()
}

// SetAuthUser caches the auth-user profile and persists immediately.
func (store *Store) SetAuthUser(user *schema.User) error {
	store.data.AuthUser = user
	return store.persist()
}

// Reset restores defaults (not authenticated, no cached user) and
// persists. Called on logout and when a session check fails.
func (store *Store) Reset() error {
	store.data = storeData{}
	return store.persist()
}

// persist writes the store with owner-only permissions. The file holds
// no secrets, but it names the operator, so keep it private anyway.
func (store *Store) persist() error {
	data, err := json.MarshalIndent(store.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session store: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}
	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session store %s: %w", store.path, err)
	}
	return nil
}
