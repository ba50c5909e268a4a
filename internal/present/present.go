// Package present implements the Presentation Hooks (spec.md §4.10): caret
// width computation and status-line text, run after every handled key.
package present

import (
	"strconv"

	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/state"
)

// MinCaretWidth and MaxCaretWidth are the caret clamp bounds spec.md
// §4.10 specifies as the default; config.Settings carries the tunable
// values actually passed to CaretWidth and Refresh, so a host that loads
// different bounds changes the clamp without touching this package.
const (
	MinCaretWidth = 6
	MaxCaretWidth = 18
)

// CaretWidth computes the caret width for mode (spec.md §4.10): in
// Normal, Visual, and VisualLine it is the width of the glyph 'W' in the
// current typing font, clamped to [min, max]; otherwise it is 1px (a
// thin insert-mode caret).
func CaretWidth(p buffer.Presentation, m state.Mode, min, max float64) float64 {
	if !isBlockMode(m) {
		return 1
	}
	w := p.MeasureGlyph(p.TypingFont(), 'W')
	if w < min {
		return min
	}
	if w > max {
		return max
	}
	return w
}

func isBlockMode(m state.Mode) bool {
	return m == state.ModeNormal || m == state.ModeVisual || m == state.ModeVisualLine
}

// StatusLine computes the status-line text for s (spec.md §4.10):
// "INSERT", "NORMAL [n]", "VISUAL", "VISUAL LINE", or the literal
// command buffer (including its leading ':'/'/'/'?').
func StatusLine(s *state.State) string {
	switch s.Mode {
	case state.ModeInsert:
		return "INSERT"
	case state.ModeVisual:
		return "VISUAL"
	case state.ModeVisualLine:
		return "VISUAL LINE"
	case state.ModeCommand:
		return s.CommandBuffer
	default:
		if s.CountPrefix > 0 {
			return "NORMAL [" + strconv.FormatUint(uint64(s.CountPrefix), 10) + "]"
		}
		return "NORMAL"
	}
}

// Refresh runs the full presentation pass: push the caret width and the
// status line, then request a redraw. Called after every handled key
// (spec.md §4.10). min and max are the configured caret-width clamp
// (config.Settings.CaretWidthMin/Max).
func Refresh(p buffer.Presentation, s *state.State, min, max float64) {
	p.SetCaretWidth(CaretWidth(p, s.Mode, min, max))
	p.SetStatusLine(StatusLine(s))
	p.RequestRedraw()
}
