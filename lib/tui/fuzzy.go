// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult holds the outcome of a fuzzy match: the fzf score and
// the rune positions in the text that matched the pattern. A zero
// Score means no match.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch runs fzf's FuzzyMatchV2 algorithm over a single text.
// Matching is case-insensitive: both sides are lowercased before the
// algorithm runs, so the returned positions index into the original
// text's runes. The slab is an optional scratch allocation reused
// across calls in a tight loop; pass nil for one-off matches.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(strings.ToLower(text)))

	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
	}
	return matched
}

// RankOptions scores options against the query and returns the
// matching ones ordered by descending score, each with its matched
// label positions filled in for highlighting. An empty query returns
// all options in their original order with no positions.
func RankOptions(options []DropdownOption, query string) []RankedOption {
	if strings.TrimSpace(query) == "" {
		ranked := make([]RankedOption, len(options))
		for index, option := range options {
			ranked[index] = RankedOption{Option: option}
		}
		return ranked
	}

	pattern := []rune(query)
	slab := util.MakeSlab(slabSize16, slabSize32)

	var ranked []RankedOption
	for _, option := range options {
		result := FuzzyMatch(option.Label, pattern, slab)
		if result.Score <= 0 {
			continue
		}
		ranked = append(ranked, RankedOption{Option: option, Match: result})
	}

	// Stable insertion keeps equal-score options in catalog order.
	for index := 1; index < len(ranked); index++ {
		for probe := index; probe > 0 && ranked[probe].Match.Score > ranked[probe-1].Match.Score; probe-- {
			ranked[probe], ranked[probe-1] = ranked[probe-1], ranked[probe]
		}
	}
	return ranked
}

// RankedOption pairs a dropdown option with its fuzzy match outcome.
type RankedOption struct {
	Option DropdownOption
	Match  FuzzyResult
}

// Slab sizes match fzf's own defaults (100KB int16, 2KB int32).
const (
	slabSize16 = 100 * 1024
	slabSize32 = 2048
)
