package present

import (
	"testing"

	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/state"
)

func TestStatusLineText(t *testing.T) {
	cases := []struct {
		setup func(s *state.State)
		want  string
	}{
		{func(s *state.State) { s.Mode = state.ModeNormal }, "NORMAL"},
		{func(s *state.State) { s.Mode = state.ModeNormal; s.CountPrefix = 3 }, "NORMAL [3]"},
		{func(s *state.State) { s.Mode = state.ModeInsert }, "INSERT"},
		{func(s *state.State) { s.Mode = state.ModeVisual }, "VISUAL"},
		{func(s *state.State) { s.Mode = state.ModeVisualLine }, "VISUAL LINE"},
		{func(s *state.State) { s.Mode = state.ModeCommand; s.CommandBuffer = ":wq" }, ":wq"},
	}
	for _, c := range cases {
		s := state.New()
		c.setup(s)
		if got := StatusLine(s); got != c.want {
			t.Fatalf("StatusLine() = %q, want %q", got, c.want)
		}
	}
}

func TestCaretWidthBlockModeUsesGlyphWidth(t *testing.T) {
	b := buffer.NewMemoryBuffer("")
	b.CaretWidth = 0 // MeasureGlyph on MemoryBuffer always returns 8, unaffected by this.
	if got := CaretWidth(b, state.ModeNormal, MinCaretWidth, MaxCaretWidth); got != 8 {
		t.Fatalf("CaretWidth(Normal) = %v, want 8", got)
	}
}

func TestCaretWidthInsertModeIsThin(t *testing.T) {
	b := buffer.NewMemoryBuffer("")
	if got := CaretWidth(b, state.ModeInsert, MinCaretWidth, MaxCaretWidth); got != 1 {
		t.Fatalf("CaretWidth(Insert) = %v, want 1", got)
	}
}

func TestCaretWidthVisualModesAreBlock(t *testing.T) {
	b := buffer.NewMemoryBuffer("")
	for _, m := range []state.Mode{state.ModeVisual, state.ModeVisualLine} {
		if got := CaretWidth(b, m, MinCaretWidth, MaxCaretWidth); got != 8 {
			t.Fatalf("CaretWidth(%v) = %v, want 8", m, got)
		}
	}
}

type clampingDelegate struct {
	*buffer.MemoryBuffer
	width float64
}

func (c *clampingDelegate) MeasureGlyph(f buffer.Font, r rune) float64 { return c.width }

func TestCaretWidthClampsToBounds(t *testing.T) {
	low := &clampingDelegate{MemoryBuffer: buffer.NewMemoryBuffer(""), width: 2}
	if got := CaretWidth(low, state.ModeNormal, MinCaretWidth, MaxCaretWidth); got != MinCaretWidth {
		t.Fatalf("CaretWidth clamp low = %v, want %v", got, MinCaretWidth)
	}
	high := &clampingDelegate{MemoryBuffer: buffer.NewMemoryBuffer(""), width: 40}
	if got := CaretWidth(high, state.ModeNormal, MinCaretWidth, MaxCaretWidth); got != MaxCaretWidth {
		t.Fatalf("CaretWidth clamp high = %v, want %v", got, MaxCaretWidth)
	}
}

func TestCaretWidthUsesCallerSuppliedBounds(t *testing.T) {
	b := &clampingDelegate{MemoryBuffer: buffer.NewMemoryBuffer(""), width: 40}
	if got := CaretWidth(b, state.ModeNormal, 2, 10); got != 10 {
		t.Fatalf("CaretWidth with custom bounds = %v, want 10", got)
	}
}

func TestRefreshPushesCaretAndStatusLine(t *testing.T) {
	b := buffer.NewMemoryBuffer("")
	s := state.New()
	s.Mode = state.ModeInsert
	Refresh(b, s, MinCaretWidth, MaxCaretWidth)
	if b.CaretWidth != 1 {
		t.Fatalf("CaretWidth after Refresh = %v, want 1", b.CaretWidth)
	}
	if b.StatusLine != "INSERT" {
		t.Fatalf("StatusLine after Refresh = %q, want INSERT", b.StatusLine)
	}
	if b.RedrawCount != 1 {
		t.Fatalf("RedrawCount after Refresh = %d, want 1", b.RedrawCount)
	}
}
