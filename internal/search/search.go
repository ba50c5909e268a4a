// Package search implements the Search Engine (spec.md §4.6): literal
// substring search with wraparound and word-under-cursor search for
// '*'/'#'. There is no regex support by design. Paste placement lives in
// internal/operator, alongside the other clipboard-consuming operators.
package search

import (
	"unicode/utf16"

	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/motion"
)

// State holds the Search Engine's memory between key presses: the last
// pattern searched for and the direction it was originally issued in
// (spec.md §4.6, "last_f_char"-style persistence, applied here to search).
type State struct {
	Pattern   string
	Forward   bool
	HasSearch bool
}

// SetPattern records pattern as the active search, to be repeated by n/N.
func (s *State) SetPattern(pattern string, forward bool) {
	s.Pattern = pattern
	s.Forward = forward
	s.HasSearch = true
}

// FindNext searches for pattern starting at cursor+1 (forward) or
// cursor-1 (backward), wrapping on miss (spec.md §4.6). ok is false if
// pattern does not occur anywhere in the buffer. The search runs over
// UTF-16 code units throughout, the same indexing the rest of the
// delegate contract uses (spec.md §9) — never over a UTF-8-reassembled
// string, whose byte offsets would disagree with buffer positions as
// soon as the text contains anything outside ASCII.
func FindNext(q buffer.Query, cursor int, pattern string, forward bool) (int, bool) {
	if pattern == "" {
		return cursor, false
	}
	units := codeUnits(q)
	needle := utf16.Encode([]rune(pattern))
	if len(needle) == 0 {
		return cursor, false
	}

	if forward {
		start := cursor + 1
		if start < 0 {
			start = 0
		}
		if start <= len(units) {
			if i := indexFrom(units, needle, start); i >= 0 {
				return i, true
			}
		}
		if i := indexFrom(units, needle, 0); i >= 0 {
			return i, true
		}
		return cursor, false
	}

	end := cursor - 1
	if end > len(units) {
		end = len(units)
	}
	if end >= 0 {
		if i := lastIndexBefore(units, needle, end); i >= 0 {
			return i, true
		}
	}
	if i := lastIndexBefore(units, needle, len(units)); i >= 0 {
		return i, true
	}
	return cursor, false
}

// codeUnits reads q's full contents as a UTF-16 code-unit slice.
func codeUnits(q buffer.Query) []uint16 {
	n := q.Length()
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = q.CharAt(i)
	}
	return units
}

// Next repeats the last search, honoring spec.md §4.6's "effective
// direction is original_direction XNOR repeat_is_n" rule: 'n' keeps the
// original direction, 'N' reverses it. ok is false on overall miss or if
// no search is active yet.
func (s *State) Next(q buffer.Query, cursor int, reverse bool) (int, bool) {
	if !s.HasSearch {
		return cursor, false
	}
	forward := s.Forward
	if reverse {
		forward = !forward
	}
	return FindNext(q, cursor, s.Pattern, forward)
}

// WordSearch implements '*'/'#': find the word under the cursor, then
// search for it as a literal, forward for '*' and backward for '#'
// (spec.md §4.6). It also updates s so 'n'/'N' repeat the same search.
func (s *State) WordSearch(q buffer.Query, cursor int, forward bool) (int, bool) {
	r, ok := motion.WordUnderCursor(q, cursor)
	if !ok {
		return cursor, false
	}
	word := q.Substring(r)
	s.SetPattern(word, forward)
	return FindNext(q, cursor, word, forward)
}

// indexFrom returns the first offset at or after from where needle
// occurs in units, or -1.
func indexFrom(units, needle []uint16, from int) int {
	for i := from; i+len(needle) <= len(units); i++ {
		if unitsEqual(units[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// lastIndexBefore returns the last offset at or before upto where needle
// occurs in units, or -1.
func lastIndexBefore(units, needle []uint16, upto int) int {
	limit := upto + len(needle)
	if limit > len(units) {
		limit = len(units)
	}
	for i := limit - len(needle); i >= 0; i-- {
		if unitsEqual(units[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func unitsEqual(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
