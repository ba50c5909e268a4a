package search

import (
	"testing"

	"github.com/dshills/vikey/internal/buffer"
)

func TestFindNextForward(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar foo baz")
	got, ok := FindNext(b, 0, "foo", true)
	if !ok || got != 8 {
		t.Fatalf("FindNext = (%d, %v), want (8, true)", got, ok)
	}
}

func TestFindNextForwardWraps(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar baz")
	got, ok := FindNext(b, 1, "foo", true)
	if !ok || got != 0 {
		t.Fatalf("FindNext should wrap to the match before cursor: got (%d, %v)", got, ok)
	}
}

func TestFindNextBackward(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar foo baz")
	got, ok := FindNext(b, 11, "foo", false)
	if !ok || got != 8 {
		t.Fatalf("FindNext backward = (%d, %v), want (8, true)", got, ok)
	}
}

func TestFindNextBackwardWraps(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar baz")
	got, ok := FindNext(b, 1, "baz", false)
	if !ok || got != 8 {
		t.Fatalf("FindNext backward should wrap: got (%d, %v)", got, ok)
	}
}

func TestFindNextMiss(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar")
	if _, ok := FindNext(b, 0, "zzz", true); ok {
		t.Fatalf("FindNext should miss for an absent pattern")
	}
}

func TestNextHonorsReverseViaXNOR(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar foo baz foo")
	var s State
	s.SetPattern("foo", true)

	got, ok := s.Next(b, 0, false) // 'n': same direction
	if !ok || got != 8 {
		t.Fatalf("n (forward search, n) = (%d, %v), want (8, true)", got, ok)
	}

	got, ok = s.Next(b, 8, true) // 'N': reversed
	if !ok || got != 0 {
		t.Fatalf("N (forward search, N) = (%d, %v), want (0, true)", got, ok)
	}
}

func TestNextWithNoActiveSearchFails(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo")
	var s State
	if _, ok := s.Next(b, 0, false); ok {
		t.Fatalf("Next should fail with no active search")
	}
}

func TestWordSearchForward(t *testing.T) {
	b := buffer.NewMemoryBuffer("aa bb aa cc")
	var s State
	got, ok := s.WordSearch(b, 0, true)
	if !ok || got != 6 {
		t.Fatalf("WordSearch('*') = (%d, %v), want (6, true)", got, ok)
	}
	if s.Pattern != "aa" {
		t.Fatalf("Pattern = %q, want %q", s.Pattern, "aa")
	}
}

func TestWordSearchNoWordFails(t *testing.T) {
	b := buffer.NewMemoryBuffer("   ")
	var s State
	if _, ok := s.WordSearch(b, 0, true); ok {
		t.Fatalf("WordSearch should fail with no word under cursor")
	}
}
