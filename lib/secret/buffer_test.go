// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFromBytesZerosSource(t *testing.T) {
	t.Parallel()

	source := []byte("hunter22")
	buffer, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "hunter22" {
		t.Errorf("String() = %q, want hunter22", got)
	}
	for index, value := range source {
		if value != 0 {
			t.Fatalf("source[%d] = %d, want zeroed", index, value)
		}
	}
}

func TestBufferCloseIdempotent(t *testing.T) {
	t.Parallel()

	buffer, err := NewFromBytes([]byte("token"))
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestBufferPanicsAfterClose(t *testing.T) {
	t.Parallel()

	buffer, err := NewFromBytes([]byte("token"))
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	buffer.Close()

	defer func() {
		if recover() == nil {
			t.Error("Bytes() after Close did not panic")
		}
	}()
	buffer.Bytes()
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	if _, err := New(0); err == nil {
		t.Error("New(0) succeeded")
	}
	if _, err := New(-1); err == nil {
		t.Error("New(-1) succeeded")
	}
}

func TestReadFromPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(path, []byte("  swordfish\n"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	buffer, err := ReadFromPath(path)
	if err != nil {
		t.Fatalf("ReadFromPath: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "swordfish" {
		t.Errorf("String() = %q, want swordfish (trimmed)", got)
	}
}

func TestReadFromPathEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(path, []byte("   \n"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := ReadFromPath(path); err == nil {
		t.Error("expected error for whitespace-only secret")
	}
}
