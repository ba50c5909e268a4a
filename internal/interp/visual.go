package interp

import (
	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/key"
	"github.com/dshills/vikey/internal/motion"
	"github.com/dshills/vikey/internal/operator"
	"github.com/dshills/vikey/internal/state"
)

// handleVisual dispatches one key in Visual or VisualLine mode (spec.md
// §4.3): h/j/k/l extend the selection by moving its non-anchor end, y/d
// apply their operator to the selection and return to Normal, Escape
// cancels.
func (ip *Interpreter) handleVisual(ev key.Event) bool {
	s := ip.s
	d := ip.d

	if ev.Code == key.CodeEscape {
		ip.modes.EnterNormal()
		return true
	}

	r, ok := ev.Char()
	if !ok {
		ip.beep()
		return true
	}

	cur := ip.visualCursor()
	lineMode := s.Mode == state.ModeVisualLine

	switch r {
	case 'h':
		ip.extendVisual(motion.Left(cur), lineMode)
	case 'l':
		ip.extendVisual(motion.Right(d, cur), lineMode)
	case 'j':
		ip.extendVisual(ip.verticalTarget(cur, true), lineMode)
	case 'k':
		ip.extendVisual(ip.verticalTarget(cur, false), lineMode)
	case 'y':
		ip.finishVisual(operator.Yank, lineMode)
	case 'd':
		ip.finishVisual(operator.Delete, lineMode)
	default:
		ip.beep()
	}
	return true
}

// visualCursor returns the selection endpoint that is not the anchor: the
// end the last movement key actually moved. In VisualLine mode the
// selection's exclusive End is the next line's start, so the last unit
// inside the selection is returned instead.
func (ip *Interpreter) visualCursor() int {
	sel := ip.d.Selection()
	if sel.Start == ip.s.VisualAnchor {
		if ip.s.Mode == state.ModeVisualLine && sel.End > sel.Start {
			return sel.End - 1
		}
		return sel.End
	}
	return sel.Start
}

func (ip *Interpreter) extendVisual(target int, lineMode bool) {
	anchor := ip.s.VisualAnchor
	if lineMode {
		ip.d.SetSelection(motion.LinewiseRange(ip.d, anchor, target))
	} else {
		ip.d.SetSelection(motion.OperandRange(anchor, target))
	}
}

func (ip *Interpreter) finishVisual(op operator.Kind, linewise bool) {
	d := ip.d
	sel := d.Selection()
	res := operator.Apply(d, op, sel, linewise)
	ip.modes.EnterNormal()
	if res.Applied {
		d.SetSelection(buffer.Range{Start: res.Cursor, End: res.Cursor})
	} else {
		d.Beep()
	}
}

// verticalTarget computes the cursor position one line up or down from
// cur, preserving its column within the line (clamped to the target
// line's content). Visual selection tracks the anchor and this moving
// end directly rather than through the host's MoveLineUp/MoveLineDown
// primitives, which collapse to a caret and would lose the anchor.
func (ip *Interpreter) verticalTarget(cur int, down bool) int {
	d := ip.d
	line := d.LineRange(cur)
	col := cur - line.Start

	if down {
		if line.End >= d.Length() {
			return cur
		}
		next := d.LineRange(line.End)
		target := next.Start + col
		if end := motion.LineContentEnd(d, next.Start); target > end {
			target = end
		}
		return target
	}

	if line.Start == 0 {
		return cur
	}
	prev := d.LineRange(line.Start - 1)
	target := prev.Start + col
	if end := motion.LineContentEnd(d, prev.Start); target > end {
		target = end
	}
	return target
}
