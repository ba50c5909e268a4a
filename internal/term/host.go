// Package term implements cmd/notevi's host: a tcell-backed
// buffer.Delegate that renders one file in a terminal window. It is the
// only piece of the module that owns real text, a real screen, and a
// real clipboard; the interpreter never reaches past it (spec.md §6).
package term

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	xterm "golang.org/x/term"

	"github.com/dshills/vikey/internal/buffer"
)

// cellWidth is the assumed pixel width of one monospace terminal cell,
// used to turn uniseg's cell-count glyph widths into the pixel widths
// Presentation.MeasureGlyph reports (spec.md §4.10).
const cellWidth = 8.0

// Host is a tcell-backed buffer.Delegate. It embeds a buffer.MemoryBuffer
// for text storage, undo, and the cursor-movement heuristics (spec.md §9
// notes these are shared with cmd/notevi), and layers real screen
// painting, clipboard, and file I/O on top.
type Host struct {
	*buffer.MemoryBuffer

	screen tcell.Screen
	path   string

	statusLine string
	caretWidth float64
	running    bool
}

// New creates a Host reading path's contents (a missing file starts
// empty, as a new note) and initializes the terminal screen.
func New(path string) (*Host, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("term: stdin is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.EnablePaste()
	screen.SetStyle(tcell.StyleDefault)

	text, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		screen.Fini()
		return nil, fmt.Errorf("term: read %s: %w", path, err)
	}

	h := &Host{
		MemoryBuffer: buffer.NewMemoryBuffer(string(text)),
		screen:       screen,
		path:         path,
		caretWidth:   cellWidth,
		running:      true,
	}
	return h, nil
}

// Running reports whether the host's main loop should keep polling for
// events. CloseWindow and an unmapped quit signal both clear it.
func (h *Host) Running() bool { return h.running }

// RequestQuit stops the event loop from outside it (a caught SIGINT or
// SIGTERM): it clears running and wakes a blocked PollEvent with an
// interrupt so Run notices immediately rather than waiting for the next
// keystroke.
func (h *Host) RequestQuit() {
	h.running = false
	h.screen.PostEvent(tcell.NewEventInterrupt(nil)) //nolint:errcheck // best-effort wakeup
}

// Screen returns the underlying tcell screen, for the host's event loop.
func (h *Host) Screen() tcell.Screen { return h.screen }

// Shutdown tears down the terminal screen. Safe to call once the event
// loop exits for any reason.
func (h *Host) Shutdown() { h.screen.Fini() }

// Save implements Lifecycle by writing the buffer to its backing file
// (spec.md §4.9, the ':w' ex command).
func (h *Host) Save() error {
	if err := os.WriteFile(h.path, []byte(h.Text()), 0o644); err != nil {
		return fmt.Errorf("term: write %s: %w", h.path, err)
	}
	h.MemoryBuffer.Save() //nolint:errcheck // counts the save, never fails
	return nil
}

// CloseWindow implements Lifecycle by stopping the event loop (spec.md
// §4.9, the ':q'/':x' ex commands).
func (h *Host) CloseWindow() {
	h.running = false
	h.MemoryBuffer.CloseWindow()
}

// SetCaretWidth implements Presentation by remembering the pixel width
// Refresh computed and choosing the nearest tcell cursor style: a block
// for the full-width Normal/Visual caret, a thin bar for Insert's 1px
// caret (spec.md §4.10).
func (h *Host) SetCaretWidth(px float64) {
	h.caretWidth = px
	if px <= 1 {
		h.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	} else {
		h.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

// SetStatusLine implements Presentation by remembering the status text;
// it is painted on the next RequestRedraw.
func (h *Host) SetStatusLine(text string) { h.statusLine = text }

// RequestRedraw implements Presentation by repainting the buffer and
// status line and moving the terminal cursor to the selection.
func (h *Host) RequestRedraw() {
	h.draw()
}

// TypingFont implements Presentation. A terminal has one fixed typing
// font, so the handle is unused.
func (h *Host) TypingFont() buffer.Font { return nil }

// MeasureGlyph implements Presentation using uniseg's cell-width count
// scaled by the assumed monospace cell size.
func (h *Host) MeasureGlyph(_ buffer.Font, r rune) float64 {
	return float64(uniseg.StringWidth(string(r))) * cellWidth
}

// ReadClipboard implements Clipboard via the system clipboard.
func (h *Host) ReadClipboard() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("term: read clipboard: %w", err)
	}
	return text, nil
}

// WriteClipboard implements Clipboard via the system clipboard.
func (h *Host) WriteClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("term: write clipboard: %w", err)
	}
	return nil
}

// Beep implements Beeper by ringing the terminal bell in addition to the
// embedded MemoryBuffer's test-visible counter.
func (h *Host) Beep() {
	h.screen.Beep()
	h.MemoryBuffer.Beep()
}

var _ buffer.Delegate = (*Host)(nil)
