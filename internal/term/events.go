package term

import (
	"time"
	"unicode/utf16"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/interp"
	"github.com/dshills/vikey/internal/key"
	"github.com/dshills/vikey/internal/state"
)

// Run polls the terminal for events and drives ip until the window is
// closed (spec.md §4.9's ':q'/':x'/':wq') or RequestQuit is called. It
// does not detect screen errors and always returns nil.
func (h *Host) Run(ip *interp.Interpreter) error {
	h.draw()

	for h.running {
		ev := h.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			h.screen.Sync()
			h.draw()
		case *tcell.EventKey:
			kev, ok := convertKey(e)
			if !ok {
				continue
			}
			if !ip.HandleKey(kev, time.Now()) {
				h.typeDirectly(kev, ip.State())
			}
		}
	}
	return nil
}

// convertKey translates a tcell key event into the interpreter's narrow
// key.Event model (spec.md §6: keycode, characters, shift_pressed).
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	shift := e.Modifiers()&tcell.ModShift != 0
	switch e.Key() {
	case tcell.KeyRune:
		return key.Rune(e.Rune(), shift), true
	case tcell.KeyEscape:
		return key.Special(key.CodeEscape), true
	case tcell.KeyEnter:
		return key.Special(key.CodeEnter), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Special(key.CodeBackspace), true
	case tcell.KeyTab:
		return key.Special(key.CodeTab), true
	default:
		return key.Event{}, false
	}
}

// typeDirectly performs the host's default handling for a key the
// interpreter left unconsumed (spec.md §6, §interp "Insert-mode
// typing"): insertion, newline, backspace, and tab, gated the same way
// every interpreter edit is.
func (h *Host) typeDirectly(ev key.Event, s *state.State) {
	if s.Mode != state.ModeInsert {
		return
	}

	cur := h.Selection().Start

	var text string
	var r buffer.Range
	switch {
	case ev.IsRune():
		text = ev.Characters
		r = buffer.Range{Start: cur, End: cur}
	case ev.Code == key.CodeEnter:
		text = "\n"
		r = buffer.Range{Start: cur, End: cur}
	case ev.Code == key.CodeTab:
		text = "\t"
		r = buffer.Range{Start: cur, End: cur}
	case ev.Code == key.CodeBackspace:
		if cur == 0 {
			return
		}
		r = buffer.Range{Start: cur - 1, End: cur}
		text = ""
	default:
		return
	}

	if !h.ShouldChange(r, text) {
		h.Beep()
		return
	}
	h.Replace(r, text)
	h.DidChange(r, text)
	newPos := r.Start + len(utf16.Encode([]rune(text)))
	h.SetSelection(buffer.Range{Start: newPos, End: newPos})
	h.RequestRedraw()
}
