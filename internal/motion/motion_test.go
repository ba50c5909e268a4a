package motion

import (
	"testing"

	"github.com/dshills/vikey/internal/buffer"
)

func TestWordForwardSkipsToNextWord(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar baz")
	cur := 0
	for i, want := range []int{4, 8, 11} {
		cur = WordForward(b, cur, false)
		if cur != want {
			t.Fatalf("w #%d = %d, want %d", i+1, cur, want)
		}
	}
}

func TestWordForwardAtEndOfBufferStays(t *testing.T) {
	b := buffer.NewMemoryBuffer("abc")
	if got := WordForward(b, 3, false); got != 3 {
		t.Fatalf("WordForward at end = %d, want 3", got)
	}
}

func TestWordBackward(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar baz")
	if got := WordBackward(b, 8, false); got != 4 {
		t.Fatalf("b from 8 = %d, want 4", got)
	}
	if got := WordBackward(b, 4, false); got != 0 {
		t.Fatalf("b from 4 = %d, want 0", got)
	}
}

func TestWordEndNoOpAtFinalWordChar(t *testing.T) {
	b := buffer.NewMemoryBuffer("abc")
	if got := WordEnd(b, 2, false); got != 2 {
		t.Fatalf("WordEnd already on last char = %d, want 2 (no-op)", got)
	}
}

func TestWordEndAdvances(t *testing.T) {
	b := buffer.NewMemoryBuffer("foo bar")
	if got := WordEnd(b, 0, false); got != 2 {
		t.Fatalf("WordEnd from 0 = %d, want 2", got)
	}
	if got := WordEnd(b, 2, false); got != 6 {
		t.Fatalf("WordEnd from 2 = %d, want 6", got)
	}
}

func TestLineEndEmptyLineReturnsLineStart(t *testing.T) {
	b := buffer.NewMemoryBuffer("a\n\nb")
	// Second line is empty (indices 2..2, terminator at 2).
	if got := LineEnd(b, 2); got != 2 {
		t.Fatalf("LineEnd on empty line = %d, want 2", got)
	}
}

func TestLineEndExcludesTerminator(t *testing.T) {
	b := buffer.NewMemoryBuffer("hello\nworld")
	if got := LineEnd(b, 0); got != 4 {
		t.Fatalf("LineEnd = %d, want 4 ('o' in hello)", got)
	}
}

func TestLineContentEndOneCharLine(t *testing.T) {
	b := buffer.NewMemoryBuffer("x\n")
	if got := LineContentEnd(b, 0); got != 1 {
		t.Fatalf("LineContentEnd = %d, want 1", got)
	}
}

func TestLineContentEndEmptyLine(t *testing.T) {
	b := buffer.NewMemoryBuffer("a\n\nb")
	if got := LineContentEnd(b, 2); got != 2 {
		t.Fatalf("LineContentEnd on empty line = %d, want 2", got)
	}
}

func TestFirstNonBlank(t *testing.T) {
	b := buffer.NewMemoryBuffer("  x = 1\n  y = 2\n")
	if got := FirstNonBlank(b, 0); got != 2 {
		t.Fatalf("FirstNonBlank = %d, want 2", got)
	}
}

func TestFindCharForwardAndMiss(t *testing.T) {
	b := buffer.NewMemoryBuffer("abcabc")
	got, ok := FindChar(b, 0, 'c', true)
	if !ok || got != 2 {
		t.Fatalf("FindChar forward = (%d, %v), want (2, true)", got, ok)
	}
	_, ok = FindChar(b, 0, 'z', true)
	if ok {
		t.Fatalf("FindChar should miss for 'z'")
	}
}

func TestFindCharStopsAtLineBoundary(t *testing.T) {
	b := buffer.NewMemoryBuffer("ab\ncb")
	_, ok := FindChar(b, 0, 'c', true)
	if ok {
		t.Fatalf("FindChar should not cross the line terminator")
	}
}

func TestJoinEdit(t *testing.T) {
	b := buffer.NewMemoryBuffer("line1\nline2")
	r, repl, cur, ok := JoinEdit(b, 0)
	if !ok {
		t.Fatalf("JoinEdit should succeed")
	}
	if repl != " " {
		t.Fatalf("replacement = %q, want \" \"", repl)
	}
	b.Replace(r, repl)
	if got := b.Text(); got != "line1 line2" {
		t.Fatalf("joined text = %q, want %q", got, "line1 line2")
	}
	if cur != 5 {
		t.Fatalf("cursor = %d, want 5", cur)
	}
}

func TestJoinEditNoNextLine(t *testing.T) {
	b := buffer.NewMemoryBuffer("onlyline")
	if _, _, _, ok := JoinEdit(b, 0); ok {
		t.Fatalf("JoinEdit should fail with no next line")
	}
}

func TestJoinEditSkipsLeadingWhitespaceOnNextLine(t *testing.T) {
	b := buffer.NewMemoryBuffer("a\n   b")
	r, _, _, ok := JoinEdit(b, 0)
	if !ok {
		t.Fatalf("JoinEdit should succeed")
	}
	b.Replace(r, " ")
	if got := b.Text(); got != "a b" {
		t.Fatalf("joined text = %q, want %q", got, "a b")
	}
}

func TestWordUnderCursor(t *testing.T) {
	b := buffer.NewMemoryBuffer("aa bb aa cc")
	r, ok := WordUnderCursor(b, 0)
	if !ok || b.Substring(r) != "aa" {
		t.Fatalf("WordUnderCursor = %v, want \"aa\"", r)
	}
}

func TestLinewiseRangeSnapsToLineBoundaries(t *testing.T) {
	b := buffer.NewMemoryBuffer("abc\ndef\nghi\n")
	r := LinewiseRange(b, 4, 4) // cursor at start of line 2
	if r.Start != 4 || r.End != 8 {
		t.Fatalf("LinewiseRange = %v, want [4,8)", r)
	}
}
