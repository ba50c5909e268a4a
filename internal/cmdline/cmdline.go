// Package cmdline implements the Command-Line Processor (spec.md §4.9):
// the ex commands accepted from a ':' command line. Search-mode command
// lines ('/' and '?') are handled by the search package; this package
// only dispatches the ex surface.
package cmdline

import (
	"strings"

	"github.com/dshills/vikey/internal/buffer"
)

// Outcome reports what Dispatch did, for the key dispatcher to fold back
// into editor state.
type Outcome struct {
	Saved        bool
	Closed       bool
	Unrecognized bool
}

// Dispatch trims whitespace from command, lowercases it, and matches it
// exactly against the fixed ex command table (spec.md §4.9). Any command
// that does not match exactly beeps and leaves the window open.
func Dispatch(d buffer.Delegate, command string) Outcome {
	cmd := strings.ToLower(strings.TrimSpace(command))

	switch cmd {
	case "w":
		_ = d.Save()
		return Outcome{Saved: true}
	case "wq", "x":
		_ = d.Save()
		d.CloseWindow()
		return Outcome{Saved: true, Closed: true}
	case "q":
		d.CloseWindow()
		return Outcome{Closed: true}
	default:
		d.Beep()
		return Outcome{Unrecognized: true}
	}
}
