package interp

import "github.com/dshills/vikey/internal/key"

// handleInsert dispatches one key in Insert mode. Only Escape is
// intercepted (spec.md §4.1); every other event is left unconsumed so the
// host's default handling types it into the buffer directly (spec.md §6,
// "enabling Insert-mode typing without interpreter involvement").
func (ip *Interpreter) handleInsert(ev key.Event) bool {
	if ev.Code == key.CodeEscape {
		ip.modes.EnterNormal()
		return true
	}
	return false
}
