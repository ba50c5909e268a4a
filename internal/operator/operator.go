// Package operator implements the Operator Engine: applying delete, yank,
// or change to a range produced by a motion composition, a linewise
// command (dd/yy/cc), or a visual selection (spec.md §4.5).
package operator

import (
	"github.com/dshills/vikey/internal/buffer"
)

// Kind identifies which operator is being applied.
type Kind uint8

const (
	Delete Kind = iota
	Yank
	Change
)

// Result describes what the operator engine did, for the caller (the key
// dispatcher) to fold back into editor state — in particular whether to
// enter Insert mode (Change) and where the cursor should land.
type Result struct {
	// Applied is false when the host rejected the edit (spec.md §7,
	// HostRejectsEdit); no state changed. An empty range is reported as
	// Applied with no buffer change.
	Applied bool

	// Cursor is the cursor's new position, valid when Applied is true.
	Cursor int

	// EnterInsert is true for Change, once Applied.
	EnterInsert bool
}

// Apply runs Delete or Yank against r (spec.md §4.5).
func Apply(d buffer.Delegate, op Kind, r buffer.Range, linewise bool) Result {
	r = r.Normalized()

	switch op {
	case Yank:
		if r.IsEmpty() {
			return Result{Applied: true, Cursor: d.Selection().Start}
		}
		text := d.Substring(r)
		_ = d.WriteClipboard(text)
		if linewise {
			return Result{Applied: true, Cursor: r.Start}
		}
		return Result{Applied: true, Cursor: d.Selection().Start}

	case Delete:
		if r.IsEmpty() {
			return Result{Applied: true, Cursor: r.Start}
		}
		text := d.Substring(r)
		if !d.ShouldChange(r, "") {
			return Result{Applied: false}
		}
		_ = d.WriteClipboard(text)
		d.Replace(r, "")
		d.DidChange(r, "")
		d.SetSelection(buffer.Range{Start: r.Start, End: r.Start})
		return Result{Applied: true, Cursor: r.Start}
	}

	return Result{}
}

// ApplyChange implements the Change operator (spec.md §4.5): delete r,
// replace it with replacement, and enter Insert mode with the cursor
// cursorOffset code units into the replacement. For a plain c<motion>,
// replacement is "" and cursorOffset is 0. For 'cc', replacement is the
// preserved indent plus a newline and cursorOffset is len(indent), so the
// cursor lands after the indent rather than after the inserted newline.
func ApplyChange(d buffer.Delegate, r buffer.Range, replacement string, cursorOffset int) Result {
	r = r.Normalized()
	if !d.ShouldChange(r, replacement) {
		return Result{Applied: false}
	}
	if !r.IsEmpty() {
		_ = d.WriteClipboard(d.Substring(r))
	}
	d.Replace(r, replacement)
	d.DidChange(r, replacement)
	cursor := r.Start + cursorOffset
	d.SetSelection(buffer.Range{Start: cursor, End: cursor})
	return Result{Applied: true, Cursor: cursor, EnterInsert: true}
}

// ReplaceChar implements 'r<c>': replace the code unit at cur with r,
// staying in Normal mode (spec.md §4.2).
func ReplaceChar(d buffer.Delegate, cur int, r rune) bool {
	if cur >= d.Length() {
		return false
	}
	target := buffer.Range{Start: cur, End: cur + 1}
	repl := string(r)
	if !d.ShouldChange(target, repl) {
		return false
	}
	d.Replace(target, repl)
	d.DidChange(target, repl)
	d.SetSelection(buffer.Range{Start: cur, End: cur})
	return true
}

// LineIndent returns the leading whitespace of the line containing cur, used
// by 'cc' to preserve indentation (spec.md §4.5).
func LineIndent(q buffer.Query, cur int) string {
	line := q.LineRange(cur)
	i := line.Start
	for i < line.End {
		c := q.CharAt(i)
		if c != ' ' && c != '\t' {
			break
		}
		i++
	}
	return q.Substring(buffer.Range{Start: line.Start, End: i})
}
