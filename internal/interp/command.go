package interp

import (
	"unicode"

	"github.com/dshills/vikey/internal/cmdline"
	"github.com/dshills/vikey/internal/key"
	"github.com/dshills/vikey/internal/search"
)

// handleCommand dispatches one key in Command mode (spec.md §4.3): it
// accumulates printable characters into command_buffer, Backspace trims
// it (or cancels once only the leading prefix remains), Escape discards
// it, and Enter executes it as an ex command or a search.
func (ip *Interpreter) handleCommand(ev key.Event) bool {
	s := ip.s

	switch ev.Code {
	case key.CodeEscape:
		ip.modes.EnterNormal()
		return true
	case key.CodeEnter:
		ip.executeCommandLine()
		return true
	case key.CodeBackspace:
		if len(s.CommandBuffer) <= 1 {
			ip.modes.EnterNormal()
			return true
		}
		s.CommandBuffer = s.CommandBuffer[:len(s.CommandBuffer)-1]
		return true
	}

	r, ok := ev.Char()
	if !ok {
		return true
	}

	searchMode := len(s.CommandBuffer) > 0 && (s.CommandBuffer[0] == '/' || s.CommandBuffer[0] == '?')
	if !isCommandChar(r, searchMode) {
		return true
	}
	s.CommandBuffer += string(r)
	return true
}

func isCommandChar(r rune, searchMode bool) bool {
	if r == ' ' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return searchMode && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// executeCommandLine runs the buffered ':' ex command or '/'/'?' search
// (spec.md §4.9, §4.6), then returns to Normal mode.
func (ip *Interpreter) executeCommandLine() {
	s := ip.s
	buf := s.CommandBuffer
	if buf == "" {
		ip.modes.EnterNormal()
		return
	}

	prefix, rest := buf[0], buf[1:]
	ip.modes.EnterNormal()

	switch prefix {
	case ':':
		cmdline.Dispatch(ip.d, rest)
	case '/', '?':
		if rest == "" {
			return
		}
		forward := prefix == '/'
		cur := ip.d.Selection().Start
		ip.search.SetPattern(rest, forward)
		target, ok := search.FindNext(ip.d, cur, rest, forward)
		if !ok {
			ip.d.Beep()
			return
		}
		ip.moveCaretTo(target)
	}
}
