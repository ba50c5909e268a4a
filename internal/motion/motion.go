// Package motion implements the Motion Engine: pure functions from
// (buffer, cursor, motion-spec) to a target index or range (spec.md §4.4).
// Nothing here mutates the buffer.
package motion

import (
	"github.com/dshills/vikey/internal/buffer"
)

// Left returns the cursor moved one code unit left, clamped to 0
// (spec.md §4.2: "h ... clamped to buffer").
func Left(cur int) int {
	if cur <= 0 {
		return 0
	}
	return cur - 1
}

// Right returns the cursor moved one code unit right, clamped to the
// buffer's length (spec.md §4.2).
func Right(q buffer.Query, cur int) int {
	if cur >= q.Length() {
		return q.Length()
	}
	return cur + 1
}

// LineStart returns the first code unit of the line containing cur
// (spec.md §4.4, "0").
func LineStart(q buffer.Query, cur int) int {
	return q.LineRange(cur).Start
}

// FirstNonBlank returns the first non-whitespace code unit of the line
// containing cur, or the line's end if the line is all whitespace
// (spec.md §4.4, "^").
func FirstNonBlank(q buffer.Query, cur int) int {
	line := q.LineRange(cur)
	i := line.Start
	for i < line.End && isWhitespace(q.CharAt(i)) && !isLineTerminator(q.CharAt(i)) {
		i++
	}
	if i >= line.End || isLineTerminator(q.CharAt(i)) {
		return LineEnd(q, cur)
	}
	return i
}

// LineContentEnd returns the exclusive end of the line's content containing
// cur: [line.Start, LineContentEnd) spans the line with its trailing
// "\n"/"\r" excluded. On an empty line this equals line.Start. Used to
// build the operand range for '$'-anchored operators (D, C, d$) without
// the ambiguity of LineEnd's "stay" encoding for a one-character line.
func LineContentEnd(q buffer.Query, cur int) int {
	line := q.LineRange(cur)
	end := line.End
	for end > line.Start && isLineTerminator(q.CharAt(end-1)) {
		end--
	}
	return end
}

// LineEnd returns the last content code unit of the line containing cur,
// excluding any trailing "\n"/"\r" (spec.md §4.4, "$"). On an empty line
// it returns the line's own start index (spec.md §8).
func LineEnd(q buffer.Query, cur int) int {
	line := q.LineRange(cur)
	end := LineContentEnd(q, cur)
	if end > line.Start {
		return end - 1
	}
	return line.Start
}

// DocumentStart returns 0 (spec.md §4.4, "gg").
func DocumentStart() int { return 0 }

// DocumentEnd returns the buffer's length (spec.md §4.4, "G").
func DocumentEnd(q buffer.Query) int { return q.Length() }

// WordForward returns the start of the next word or BIG-word after cur
// (spec.md §4.4: "skip all characters of the same class as buf[i]; then
// skip whitespace; land on the first non-whitespace").
func WordForward(q buffer.Query, cur int, big bool) int {
	n := q.Length()
	if cur >= n {
		return n
	}
	cls := classify(q.CharAt(cur), big)
	i := cur
	for i < n && classify(q.CharAt(i), big) == cls {
		i++
	}
	for i < n && isWhitespace(q.CharAt(i)) {
		i++
	}
	return i
}

// WordBackward returns the start of the word or BIG-word before cur
// (spec.md §4.4).
func WordBackward(q buffer.Query, cur int, big bool) int {
	if cur <= 0 {
		return 0
	}
	j := cur - 1
	for j > 0 && isWhitespace(q.CharAt(j)) {
		j--
	}
	if j == 0 {
		return 0
	}
	cls := classify(q.CharAt(j), big)
	for j > 0 && classify(q.CharAt(j-1), big) == cls {
		j--
	}
	return j
}

// WordEnd returns the last code unit of the next word or BIG-word after cur
// (spec.md §4.4). If cur is already on the last character of the buffer's
// final word, it is a no-op (spec.md §9, open question on e/E at EOB).
func WordEnd(q buffer.Query, cur int, big bool) int {
	n := q.Length()
	if n == 0 {
		return 0
	}
	if cur >= n-1 {
		return n - 1
	}
	i := cur + 1
	for i < n && isWhitespace(q.CharAt(i)) {
		i++
	}
	if i >= n {
		return cur
	}
	cls := classify(q.CharAt(i), big)
	for i+1 < n && classify(q.CharAt(i+1), big) == cls && !isLineTerminator(q.CharAt(i+1)) {
		i++
	}
	return i
}

func classify(c uint16, big bool) charClass {
	if big {
		return classOfBig(c)
	}
	return classOf(c)
}

// FindChar scans the current line for target, starting at cur+1 (forward)
// or cur-1 (backward), stopping at the line terminator (spec.md §4.4).
// It reports false on a miss, leaving cur untouched.
func FindChar(q buffer.Query, cur int, target uint16, forward bool) (int, bool) {
	line := q.LineRange(cur)
	if forward {
		for i := cur + 1; i < line.End && !isLineTerminator(q.CharAt(i)); i++ {
			if q.CharAt(i) == target {
				return i, true
			}
		}
		return cur, false
	}
	for i := cur - 1; i >= line.Start; i-- {
		if isLineTerminator(q.CharAt(i)) {
			break
		}
		if q.CharAt(i) == target {
			return i, true
		}
	}
	return cur, false
}

// WordUnderCursor returns the word-char span containing or following cur,
// used by '*' and '#' (spec.md §4.6: "class = word char"). The scan for a
// following word is not limited to the current line; ok is false if no
// word char occurs at or after cur anywhere in the buffer.
func WordUnderCursor(q buffer.Query, cur int) (buffer.Range, bool) {
	n := q.Length()
	i := cur
	for i < n && !isWordChar(q.CharAt(i)) {
		i++
	}
	if i >= n {
		return buffer.Range{}, false
	}
	start := i
	for start > 0 && isWordChar(q.CharAt(start-1)) {
		start--
	}
	end := i
	for end < n && isWordChar(q.CharAt(end)) {
		end++
	}
	return buffer.Range{Start: start, End: end}, true
}

// OperandRange computes the operand range for an operator composed with a
// charwise motion result (spec.md §4.4): [min(start,end), max(start,end)).
// Inclusive motions (e, E, forward f) must have already added one to their
// target before calling this, by the caller, since inclusivity is a
// property of the motion key, not of this function. Backward F is used
// as-is, and '$' builds its range from LineContentEnd instead.
func OperandRange(start, end int) buffer.Range {
	if start <= end {
		return buffer.Range{Start: start, End: end}
	}
	return buffer.Range{Start: end, End: start}
}

// LinewiseRange snaps [start, end) to whole lines, for dd/yy/cc and
// operator+G (spec.md §4.4).
func LinewiseRange(q buffer.Query, start, end int) buffer.Range {
	if end < start {
		start, end = end, start
	}
	startLine := q.LineRange(start)
	endLine := q.LineRange(end)
	return buffer.Range{Start: startLine.Start, End: endLine.End}
}

// JoinEdit computes the replacement for 'J': join the current and next
// line by replacing the run from the current line's terminator to the
// next line's first non-blank (or its end, if all whitespace) with a
// single space (spec.md §4.4, "Join"). ok is false if there is no next
// line to join.
func JoinEdit(q buffer.Query, cur int) (r buffer.Range, replacement string, newCursor int, ok bool) {
	line := q.LineRange(cur)
	e := line.End
	for e > line.Start && isLineTerminator(q.CharAt(e-1)) {
		e--
	}
	if e >= q.Length() {
		return buffer.Range{}, "", 0, false
	}
	termEnd := line.End
	if termEnd >= q.Length() {
		return buffer.Range{}, "", 0, false
	}
	nextLine := q.LineRange(termEnd)
	s := termEnd
	for s < nextLine.End && isWhitespace(q.CharAt(s)) && !isLineTerminator(q.CharAt(s)) {
		s++
	}
	if s >= nextLine.End || isLineTerminator(q.CharAt(s)) {
		s = LineContentEnd(q, termEnd)
	}
	return buffer.Range{Start: e, End: s}, " ", e, true
}
