// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/1111philo/htc-app/lib/schema"
)

func TestOpenDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store.Authenticated() {
		t.Error("fresh store reports authenticated")
	}
	if store.AuthUser() != nil {
		t.Error("fresh store has a cached auth user")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.SetAuthenticated(true); err != nil {
		t.Fatalf("SetAuthenticated: %v", err)
	}
	if err := store.SetAuthUser(&schema.User{UserID: 4, Name: "Sam", Sub: "sub-abc"}); err != nil {
		t.Fatalf("SetAuthUser: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	if !reopened.Authenticated() {
		t.Error("authenticated flag did not survive the round trip")
	}
	user := reopened.AuthUser()
	if user == nil || user.UserID != 4 || user.Sub != "sub-abc" {
		t.Errorf("AuthUser = %+v", user)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.SetAuthenticated(true)
	store.SetAuthUser(&schema.User{UserID: 4})

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	if reopened.Authenticated() || reopened.AuthUser() != nil {
		t.Error("Reset did not persist defaults")
	}
}

func TestPersistedFileMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.SetAuthenticated(true); err != nil {
		t.Fatalf("SetAuthenticated: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("file mode = %o, want 0600", got)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("expected error for corrupt store")
	}
}
