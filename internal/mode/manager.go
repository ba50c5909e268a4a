// Package mode implements the Mode State Machine (spec.md §4.1): the five
// editor modes and the transitions between them. Every transition clears
// the pending-prefix protocol and count prefix and re-runs the
// presentation hooks.
//
// Unlike a GUI host serving many windows, one interpreter instance drives
// exactly one buffer on one goroutine (spec.md §5), so Manager needs no
// lock: there is never a second caller to race with.
package mode

import (
	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/config"
	"github.com/dshills/vikey/internal/present"
	"github.com/dshills/vikey/internal/state"
)

// ChangeCallback is notified after a mode transition completes.
type ChangeCallback func(from, to state.Mode)

// Manager drives transitions between the five modes, grounded in the
// state they carry rather than in separate per-mode types: entering
// Visual records the anchor, entering Command resets the command buffer,
// and so on (spec.md §4.1).
type Manager struct {
	s         *state.State
	d         buffer.Delegate
	cfg       config.Settings
	previous  state.Mode
	callbacks []ChangeCallback
}

// NewManager returns a Manager driving s through d, starting from s's
// current mode. cfg supplies the caret-width clamp the presentation
// hooks apply on every transition.
func NewManager(d buffer.Delegate, s *state.State, cfg config.Settings) *Manager {
	return &Manager{s: s, d: d, cfg: cfg, previous: s.Mode}
}

func (m *Manager) refresh() {
	present.Refresh(m.d, m.s, m.cfg.CaretWidthMin, m.cfg.CaretWidthMax)
}

// OnChange registers a callback invoked after every successful
// transition.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}

// Previous returns the mode active before the most recent transition.
func (m *Manager) Previous() state.Mode { return m.previous }

// EnterVisual transitions to Visual mode, anchoring the selection at the
// current cursor position (spec.md §4.1, "visual_anchor ← cursor").
func (m *Manager) EnterVisual() {
	m.previous = m.s.Mode
	m.s.VisualAnchor = m.d.Selection().Start
	m.s.EnterMode(state.ModeVisual)
	m.refresh()
	m.notify(state.ModeVisual)
}

// EnterVisualLine transitions to VisualLine mode, anchoring at the start
// of the current line and selecting the whole line (spec.md §4.1).
func (m *Manager) EnterVisualLine() {
	m.previous = m.s.Mode
	line := m.d.LineRange(m.d.Selection().Start)
	m.s.VisualAnchor = line.Start
	m.s.EnterMode(state.ModeVisualLine)
	m.d.SetSelection(line)
	m.refresh()
	m.notify(state.ModeVisualLine)
}

// EnterCommand transitions to Command mode with buffer primed to prefix
// (":" for ex, "/" or "?" for search) (spec.md §4.1).
func (m *Manager) EnterCommand(prefix string) {
	from := m.s.Mode
	m.previous = from
	m.s.EnterMode(state.ModeCommand)
	m.s.CommandBuffer = prefix
	m.refresh()
	m.notify(state.ModeCommand)
}

// EnterInsert transitions to Insert mode (spec.md §4.1). The caller is
// responsible for pre-positioning the cursor per the triggering command
// (i/I/a/A/o/O) before calling this.
func (m *Manager) EnterInsert() {
	m.previous = m.s.Mode
	m.s.EnterMode(state.ModeInsert)
	m.refresh()
	m.notify(state.ModeInsert)
}

// EnterNormal transitions to Normal mode (spec.md §4.1: Escape from
// Insert/Visual/VisualLine, or Enter/Escape from Command).
func (m *Manager) EnterNormal() {
	m.previous = m.s.Mode
	m.s.EnterMode(state.ModeNormal)
	m.refresh()
	m.notify(state.ModeNormal)
}

func (m *Manager) notify(to state.Mode) {
	from := m.previous
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}
