// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadFromPath reads a secret from a file path, or from stdin if path
// is "-". Leading and trailing whitespace is trimmed before storing.
// Returns an error if the source is empty after trimming.
func ReadFromPath(path string) (*Buffer, error) {
	var data []byte

	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return nil, fmt.Errorf("stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}

	// NewFromBytes copies into protected memory and zeros trimmed;
	// zero the rest of data (any whitespace prefix/suffix) ourselves.
	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

// Prompt reads a secret interactively from the terminal with echo
// disabled, writing the given prompt text to stderr first. Fails when
// stdin is not a terminal.
func Prompt(prompt string) (*Buffer, error) {
	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return nil, fmt.Errorf("no terminal available for interactive prompt")
	}

	fmt.Fprint(os.Stderr, prompt)
	line, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	if len(bytes.TrimSpace(line)) == 0 {
		Zero(line)
		return nil, fmt.Errorf("password is empty")
	}

	return NewFromBytes(line)
}
