// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal-UI building blocks for the htc
// client: the color theme, floating dropdown menus, modal text entry,
// overlay splicing, and fuzzy matching. The interactive workflows
// (lib/visitui) compose these into full bubbletea models.
package tui
