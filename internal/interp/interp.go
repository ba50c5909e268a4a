// Package interp implements the Key Dispatcher (spec.md §4.2, §4.3): the
// per-mode key tables that resolve count prefixes, pending operators, and
// motion composition, driving the Motion, Operator, Search, and
// Command-Line engines against a host buffer.Delegate.
package interp

import (
	"time"

	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/config"
	"github.com/dshills/vikey/internal/key"
	"github.com/dshills/vikey/internal/mode"
	"github.com/dshills/vikey/internal/present"
	"github.com/dshills/vikey/internal/search"
	"github.com/dshills/vikey/internal/state"
)

// Interpreter is the modal keystroke interpreter: one instance drives one
// buffer.Delegate on one goroutine (spec.md §5). It holds no buffer data
// of its own.
type Interpreter struct {
	d      buffer.Delegate
	s      *state.State
	modes  *mode.Manager
	search search.State
	cfg    config.Settings
}

// New returns an Interpreter in Normal mode, driving d, configured with
// cfg's tunables.
func New(d buffer.Delegate, cfg config.Settings) *Interpreter {
	s := state.New()
	return &Interpreter{
		d:     d,
		s:     s,
		modes: mode.NewManager(d, s, cfg),
		cfg:   cfg,
	}
}

// State returns the interpreter's internal state, for hosts or tests that
// need to inspect it directly.
func (ip *Interpreter) State() *state.State { return ip.s }

// HandleKey processes one key event at time now and reports whether it
// was consumed. An unconsumed event falls through to the host's default
// handling (spec.md §6) — in practice this only happens in Insert mode,
// where every key except Escape is left for the host to type into the
// buffer.
func (ip *Interpreter) HandleKey(ev key.Event, now time.Time) bool {
	if ev.Code != key.CodeRune || (ev.Characters != "j" && ev.Characters != "k") {
		ip.s.ResetAccel()
	}

	var handled bool
	switch ip.s.Mode {
	case state.ModeNormal:
		handled = ip.handleNormal(ev, now)
	case state.ModeInsert:
		handled = ip.handleInsert(ev)
	case state.ModeVisual, state.ModeVisualLine:
		handled = ip.handleVisual(ev)
	case state.ModeCommand:
		handled = ip.handleCommand(ev)
	}

	if handled {
		present.Refresh(ip.d, ip.s, ip.cfg.CaretWidthMin, ip.cfg.CaretWidthMax)
	}
	return handled
}

func (ip *Interpreter) beep() {
	ip.s.ClearPending()
	ip.s.ClearCount()
	ip.d.Beep()
}
