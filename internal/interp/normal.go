package interp

import (
	"time"

	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/key"
	"github.com/dshills/vikey/internal/motion"
	"github.com/dshills/vikey/internal/operator"
	"github.com/dshills/vikey/internal/state"
)

// handleNormal dispatches one key in Normal mode, following spec.md §4.2's
// precedence order: count digit, pending-char consumer, two-key-sequence
// arm/resolve, motion composed with a pending operator, then the plain
// command table.
func (ip *Interpreter) handleNormal(ev key.Event, now time.Time) bool {
	s := ip.s

	if s.PendingG && s.PendingGExpired(now, ip.cfg.GGTimeout()) {
		s.PendingG = false
	}

	if r, ok := ev.Char(); ok {
		if (r >= '1' && r <= '9') || (r == '0' && s.CountPrefix > 0) {
			s.AccumulateDigit(uint32(r - '0'))
			return true
		}
	}

	if s.PendingR {
		return ip.consumePendingR(ev)
	}
	if s.PendingF != state.CharSearchNone {
		return ip.consumePendingF(ev)
	}

	if r, ok := ev.Char(); ok {
		switch r {
		case 'g':
			return ip.handleG(now)
		case 'r':
			s.PendingR = true
			return true
		case 'f':
			s.PendingF = state.CharSearchForward
			return true
		case 'F':
			s.PendingF = state.CharSearchBackward
			return true
		}
	}

	if s.PendingOperator != state.OpNone {
		if ip.tryOperatorMotion(ev) {
			return true
		}
		ip.beep()
		return true
	}

	return ip.dispatchCommand(ev, now)
}

// handleG resolves the 'g' two-key sequence (spec.md §4.8): the first
// press arms a 500ms window; the second, while armed, moves to document
// start — or, with an operator pending, supplies 'gg' as that operator's
// linewise range down to the document start.
func (ip *Interpreter) handleG(now time.Time) bool {
	s := ip.s
	if !s.PendingG {
		s.ArmPendingG(now)
		return true
	}
	s.PendingG = false
	cur := ip.d.Selection().Start
	if s.PendingOperator != state.OpNone {
		ip.finishOperator(motion.LinewiseRange(ip.d, cur, motion.DocumentStart()), true)
		return true
	}
	ip.moveCaretTo(motion.DocumentStart())
	s.ClearCount()
	return true
}

func (ip *Interpreter) consumePendingR(ev key.Event) bool {
	s := ip.s
	s.PendingR = false
	r, ok := ev.Char()
	if !ok {
		ip.beep()
		return true
	}
	if s.PendingOperator != state.OpNone {
		// r is not a motion: d/y/c followed by r<char> changes nothing.
		ip.beep()
		return true
	}
	cur := ip.d.Selection().Start
	if !operator.ReplaceChar(ip.d, cur, r) {
		ip.d.Beep()
	}
	s.ClearCount()
	return true
}

// consumePendingF resolves a pending f/F target character (spec.md §4.4):
// with no operator pending it simply moves the cursor; with an operator
// pending it supplies the operator's range, inclusive of the found
// character when searching forward.
func (ip *Interpreter) consumePendingF(ev key.Event) bool {
	s := ip.s
	forward := s.PendingF == state.CharSearchForward
	s.PendingF = state.CharSearchNone

	r, ok := ev.Char()
	if !ok {
		ip.beep()
		return true
	}

	cur := ip.d.Selection().Start
	target, found := motion.FindChar(ip.d, cur, uint16(r), forward)
	if !found {
		ip.d.Beep()
		s.ClearCount()
		s.PendingOperator = state.OpNone
		return true
	}

	s.LastFChar = r
	s.LastFHasChar = true
	s.LastFForward = forward

	if s.PendingOperator != state.OpNone {
		end := target
		if forward {
			end++
		}
		ip.finishOperator(motion.OperandRange(cur, end), false)
		return true
	}

	ip.moveCaretTo(target)
	s.ClearCount()
	return true
}

// tryOperatorMotion resolves a motion key composed with the pending
// operator (spec.md §4.2 rule 3, extended to h, l, 0, e and E per design
// decision — see DESIGN.md; j and k do not compose). It reports false for a key that is
// neither a motion nor the operator's own doubling key (dd/yy/cc), so the
// caller can beep and clear the pending operator.
func (ip *Interpreter) tryOperatorMotion(ev key.Event) bool {
	s := ip.s
	r, ok := ev.Char()
	if !ok {
		return false
	}
	cur := ip.d.Selection().Start
	n := int(s.EffectiveCount())

	switch {
	case r == 'd' && s.PendingOperator == state.OpDelete,
		r == 'y' && s.PendingOperator == state.OpYank,
		r == 'c' && s.PendingOperator == state.OpChange:
		ip.finishOperator(motion.LinewiseRange(ip.d, cur, linesBelow(ip.d, cur, n)), true)
		return true
	}

	switch r {
	case 'h':
		target := cur
		for i := 0; i < n; i++ {
			target = motion.Left(target)
		}
		ip.finishOperator(motion.OperandRange(cur, target), false)
	case 'l':
		target := cur
		for i := 0; i < n; i++ {
			target = motion.Right(ip.d, target)
		}
		ip.finishOperator(motion.OperandRange(cur, target), false)
	case '0':
		ip.finishOperator(motion.OperandRange(cur, motion.LineStart(ip.d, cur)), false)
	case '^':
		ip.finishOperator(motion.OperandRange(cur, motion.FirstNonBlank(ip.d, cur)), false)
	case '$':
		ip.finishOperator(buffer.Range{Start: cur, End: motion.LineContentEnd(ip.d, cur)}, false)
	case 'w', 'W':
		big := r == 'W'
		target := cur
		for i := 0; i < n; i++ {
			target = motion.WordForward(ip.d, target, big)
		}
		ip.finishOperator(motion.OperandRange(cur, target), false)
	case 'b', 'B':
		big := r == 'B'
		target := cur
		for i := 0; i < n; i++ {
			target = motion.WordBackward(ip.d, target, big)
		}
		ip.finishOperator(motion.OperandRange(cur, target), false)
	case 'e', 'E':
		big := r == 'E'
		target := cur
		for i := 0; i < n; i++ {
			target = motion.WordEnd(ip.d, target, big)
		}
		end := target
		if end >= cur {
			end++
		}
		ip.finishOperator(motion.OperandRange(cur, end), false)
	case 'G':
		ip.finishOperator(motion.LinewiseRange(ip.d, cur, motion.DocumentEnd(ip.d)), true)
	default:
		return false
	}
	return true
}

// linesBelow returns a position on the n-th line from cur (inclusive),
// for spanning dd/yy/cc's effective count across whole lines (spec.md
// §4.2's general n-times rule, which the doubling commands do not
// except themselves from).
func linesBelow(q buffer.Query, cur, n int) int {
	pos := cur
	for i := 1; i < n; i++ {
		line := q.LineRange(pos)
		if line.End >= q.Length() {
			break
		}
		pos = line.End
	}
	return pos
}

// finishOperator applies the pending operator to r and clears it, entering
// Insert mode for Change (spec.md §4.5).
func (ip *Interpreter) finishOperator(r buffer.Range, linewise bool) {
	s := ip.s
	switch s.PendingOperator {
	case state.OpChange:
		replacement := ""
		cursorOffset := 0
		if linewise {
			indent := operator.LineIndent(ip.d, r.Start)
			replacement = indent + "\n"
			cursorOffset = len(indent)
		}
		res := operator.ApplyChange(ip.d, r, replacement, cursorOffset)
		if res.Applied {
			ip.modes.EnterInsert()
		} else {
			ip.d.Beep()
		}
	case state.OpDelete:
		res := operator.Apply(ip.d, operator.Delete, r, linewise)
		if res.Applied {
			ip.d.SetSelection(buffer.Range{Start: res.Cursor, End: res.Cursor})
		} else {
			ip.d.Beep()
		}
	case state.OpYank:
		res := operator.Apply(ip.d, operator.Yank, r, linewise)
		if res.Applied {
			ip.d.SetSelection(buffer.Range{Start: res.Cursor, End: res.Cursor})
		}
	}
	s.PendingOperator = state.OpNone
	s.ClearCount()
}

// dispatchCommand handles a Normal-mode key with no pending operator and
// no armed pending-prefix flag: the full command table of spec.md §4.2.
func (ip *Interpreter) dispatchCommand(ev key.Event, now time.Time) bool {
	s := ip.s
	d := ip.d
	cur := d.Selection().Start
	n := int(s.EffectiveCount())

	r, ok := ev.Char()
	if !ok {
		ip.beep()
		return true
	}

	switch r {
	case 'h':
		target := cur
		for i := 0; i < n; i++ {
			target = motion.Left(target)
		}
		ip.moveCaretTo(target)
		s.ClearCount()
	case 'l':
		target := cur
		for i := 0; i < n; i++ {
			target = motion.Right(d, target)
		}
		ip.moveCaretTo(target)
		s.ClearCount()
	case 'j':
		mult := int(s.AccelMultiplier(now, ip.cfg.JKAccelWindow(), ip.cfg.JKAccelCap))
		for i := 0; i < n*mult; i++ {
			d.MoveLineDown()
		}
		s.ClearCount()
	case 'k':
		mult := int(s.AccelMultiplier(now, ip.cfg.JKAccelWindow(), ip.cfg.JKAccelCap))
		for i := 0; i < n*mult; i++ {
			d.MoveLineUp()
		}
		s.ClearCount()
	case '0':
		ip.moveCaretTo(motion.LineStart(d, cur))
		s.ClearCount()
	case '^':
		ip.moveCaretTo(motion.FirstNonBlank(d, cur))
		s.ClearCount()
	case '$':
		ip.moveCaretTo(motion.LineEnd(d, cur))
		s.ClearCount()
	case 'w', 'W':
		big := r == 'W'
		target := cur
		for i := 0; i < n; i++ {
			target = motion.WordForward(d, target, big)
		}
		ip.moveCaretTo(target)
		s.ClearCount()
	case 'b', 'B':
		big := r == 'B'
		target := cur
		for i := 0; i < n; i++ {
			target = motion.WordBackward(d, target, big)
		}
		ip.moveCaretTo(target)
		s.ClearCount()
	case 'e', 'E':
		big := r == 'E'
		target := cur
		for i := 0; i < n; i++ {
			target = motion.WordEnd(d, target, big)
		}
		ip.moveCaretTo(target)
		s.ClearCount()
	case 'G':
		ip.moveCaretTo(motion.DocumentEnd(d))
		s.ClearCount()
	case 'i':
		ip.modes.EnterInsert()
	case 'I':
		ip.moveCaretTo(motion.FirstNonBlank(d, cur))
		ip.modes.EnterInsert()
	case 'a':
		ip.moveCaretTo(motion.Right(d, cur))
		ip.modes.EnterInsert()
	case 'A':
		ip.moveCaretTo(motion.LineContentEnd(d, cur))
		ip.modes.EnterInsert()
	case 'o':
		ip.openLine(d.LineRange(cur).End)
		s.ClearCount()
	case 'O':
		ip.openLine(d.LineRange(cur).Start)
		s.ClearCount()
	case 'x':
		end := cur + n
		if end > d.Length() {
			end = d.Length()
		}
		res := operator.Apply(d, operator.Delete, buffer.Range{Start: cur, End: end}, false)
		if res.Applied {
			d.SetSelection(buffer.Range{Start: res.Cursor, End: res.Cursor})
		} else {
			d.Beep()
		}
		s.ClearCount()
	case 'd':
		s.PendingOperator = state.OpDelete
	case 'y':
		s.PendingOperator = state.OpYank
	case 'c':
		s.PendingOperator = state.OpChange
	case 'D':
		res := operator.Apply(d, operator.Delete, buffer.Range{Start: cur, End: motion.LineContentEnd(d, cur)}, false)
		if res.Applied {
			d.SetSelection(buffer.Range{Start: res.Cursor, End: res.Cursor})
		}
		s.ClearCount()
	case 'C':
		res := operator.ApplyChange(d, buffer.Range{Start: cur, End: motion.LineContentEnd(d, cur)}, "", 0)
		if res.Applied {
			ip.modes.EnterInsert()
		} else {
			d.Beep()
		}
		s.ClearCount()
	case 'p':
		ip.pasteFrom(operator.PasteAfter)
		s.ClearCount()
	case 'P':
		ip.pasteFrom(operator.PasteBefore)
		s.ClearCount()
	case 'u':
		d.TriggerUndo()
		s.ClearCount()
	case 'J':
		jr, repl, newCur, jok := motion.JoinEdit(d, cur)
		if !jok || !d.ShouldChange(jr, repl) {
			d.Beep()
		} else {
			d.Replace(jr, repl)
			d.DidChange(jr, repl)
			d.SetSelection(buffer.Range{Start: newCur, End: newCur})
		}
		s.ClearCount()
	case '/':
		s.SearchForward = true
		ip.modes.EnterCommand("/")
	case '?':
		s.SearchForward = false
		ip.modes.EnterCommand("?")
	case 'n':
		ip.repeatSearch(false)
	case 'N':
		ip.repeatSearch(true)
	case '*':
		ip.wordSearch(true)
	case '#':
		ip.wordSearch(false)
	case ':':
		ip.modes.EnterCommand(":")
	case 'v':
		ip.modes.EnterVisual()
	case 'V':
		ip.modes.EnterVisualLine()
	default:
		ip.beep()
	}
	return true
}

func (ip *Interpreter) openLine(at int) {
	d := ip.d
	target := buffer.Range{Start: at, End: at}
	if !d.ShouldChange(target, "\n") {
		d.Beep()
		return
	}
	d.Replace(target, "\n")
	d.DidChange(target, "\n")
	ip.moveCaretTo(at)
	ip.modes.EnterInsert()
}

func (ip *Interpreter) pasteFrom(paste func(buffer.Delegate, int, string) bool) {
	d := ip.d
	clip, err := d.ReadClipboard()
	if err == nil && clip == "" {
		return
	}
	if err != nil || !paste(d, d.Selection().Start, clip) {
		d.Beep()
	}
}

func (ip *Interpreter) repeatSearch(reverse bool) {
	cur := ip.d.Selection().Start
	target, ok := ip.search.Next(ip.d, cur, reverse)
	if !ok {
		ip.d.Beep()
	} else {
		ip.moveCaretTo(target)
	}
	ip.s.ClearCount()
}

func (ip *Interpreter) wordSearch(forward bool) {
	cur := ip.d.Selection().Start
	target, ok := ip.search.WordSearch(ip.d, cur, forward)
	if !ok {
		ip.d.Beep()
	} else {
		ip.moveCaretTo(target)
	}
	ip.s.ClearCount()
}

func (ip *Interpreter) moveCaretTo(pos int) {
	ip.d.SetSelection(buffer.Range{Start: pos, End: pos})
}
