// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the original view are preserved on both sides of the
// overlay.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		// Build: prefix + reset + overlay + reset + suffix.
		var result strings.Builder

		// Prefix: everything before the overlay anchor.
		if anchorX > 0 {
			prefix := ansi.Truncate(viewLine, anchorX, "")
			result.WriteString(prefix)
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		// Suffix: everything after the overlay region.
		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			suffix := ansi.TruncateLeft(viewLine, suffixStart, "")
			result.WriteString(suffix)
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadOverlayLine takes styled content for the inner area and pads it
// to the full width with background-colored spaces. Returns
// " content  " with background applied to the padding.
func PadOverlayLine(styledContent string, innerWidth int, backgroundStyle lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	rightPad := innerWidth - contentWidth
	if rightPad < 0 {
		rightPad = 0
	}
	return backgroundStyle.Render(" ") +
		styledContent +
		backgroundStyle.Render(strings.Repeat(" ", rightPad+1))
}

// HighlightColumns applies a background tint to the given visible
// character columns of a single styled line. Used to mark the
// characters a fuzzy query matched inside a dropdown option. Walks the
// ANSI-decorated line so escape sequences already present are
// preserved, re-asserting the tint after each one.
func HighlightColumns(line string, columns []int, theme Theme) string {
	if len(columns) == 0 {
		return line
	}
	marked := make(map[int]bool, len(columns))
	for _, column := range columns {
		marked[column] = true
	}

	highlightOn := "\x1b[48;5;" + string(theme.MatchHighlightBackground) + "m"
	backgroundOff := "\x1b[49m"

	var result strings.Builder
	result.Grow(len(line) + len(columns)*12)

	column := 0
	var state byte
	remaining := line
	for len(remaining) > 0 {
		sequence, displayWidth, byteCount, newState := ansi.DecodeSequence(remaining, state, nil)
		state = newState

		if displayWidth == 0 {
			// Control sequence or escape: pass through unchanged.
			result.WriteString(sequence)
			remaining = remaining[byteCount:]
			continue
		}

		if marked[column] {
			result.WriteString(highlightOn)
			result.WriteString(sequence)
			result.WriteString(backgroundOff)
		} else {
			result.WriteString(sequence)
		}
		column += displayWidth
		remaining = remaining[byteCount:]
	}

	return result.String()
}
