package operator

import (
	"strings"
	"unicode/utf16"

	"github.com/dshills/vikey/internal/buffer"
	"github.com/dshills/vikey/internal/motion"
)

// clipboardKind distinguishes linewise from charwise clipboard content
// (spec.md §4.6): linewise content ends with "\n".
type clipboardKind uint8

const (
	charwise clipboardKind = iota
	linewise
)

func kindOf(text string) clipboardKind {
	if strings.HasSuffix(text, "\n") {
		return linewise
	}
	return charwise
}

// PasteAfter implements 'p' (spec.md §4.6): linewise clipboard content is
// inserted at the start of the next line; charwise content is inserted
// at cursor+1. The cursor lands inside the pasted region's last line
// (linewise) or at the last inserted code unit (charwise). ok is false
// on an empty clipboard (spec.md §7, ClipboardEmpty: silent no-op).
func PasteAfter(d buffer.Delegate, cursor int, clip string) bool {
	if clip == "" {
		return false
	}
	if kindOf(clip) == linewise {
		line := d.LineRange(cursor)
		return pasteLinewise(d, line.End, clip)
	}
	pos := cursor + 1
	if pos > d.Length() {
		pos = d.Length()
	}
	return pasteCharwise(d, pos, clip)
}

// PasteBefore implements 'P' (spec.md §4.6): linewise content is inserted
// at the start of the current line; charwise content is inserted at
// cursor.
func PasteBefore(d buffer.Delegate, cursor int, clip string) bool {
	if clip == "" {
		return false
	}
	if kindOf(clip) == linewise {
		line := d.LineRange(cursor)
		return pasteLinewise(d, line.Start, clip)
	}
	return pasteCharwise(d, cursor, clip)
}

func pasteCharwise(d buffer.Delegate, at int, text string) bool {
	target := buffer.Range{Start: at, End: at}
	if !d.ShouldChange(target, text) {
		return false
	}
	d.Replace(target, text)
	d.DidChange(target, text)
	cursor := at + len(utf16.Encode([]rune(text))) - 1
	if cursor < at {
		cursor = at
	}
	d.SetSelection(buffer.Range{Start: cursor, End: cursor})
	return true
}

func pasteLinewise(d buffer.Delegate, at int, text string) bool {
	target := buffer.Range{Start: at, End: at}
	if !d.ShouldChange(target, text) {
		return false
	}
	d.Replace(target, text)
	d.DidChange(target, text)
	last := at + len(utf16.Encode([]rune(text))) - 1
	cursor := motion.FirstNonBlank(d, last)
	d.SetSelection(buffer.Range{Start: cursor, End: cursor})
	return true
}
