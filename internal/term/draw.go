package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// draw repaints the text area and status line and places the terminal
// cursor at the current selection (spec.md §4.10's redraw request). The
// host keeps no line-wrap or scroll model: each buffer line maps to one
// screen row, which is enough for a minimal reference host.
func (h *Host) draw() {
	w, rows := h.screen.Size()
	if rows < 1 {
		return
	}
	textRows := rows - 1

	h.screen.Clear()

	lines := strings.Split(h.Text(), "\n")
	for row := 0; row < textRows && row < len(lines); row++ {
		putLine(h.screen, row, w, lines[row])
	}

	style := tcell.StyleDefault.Reverse(true)
	putStyledLine(h.screen, rows-1, w, h.statusLine, style)

	curRow, curCol := h.cursorPosition()
	h.screen.ShowCursor(curCol, curRow)
	h.screen.Show()
}

// cursorPosition converts the buffer selection's caret end into a
// (row, col) screen position.
func (h *Host) cursorPosition() (row, col int) {
	sel := h.Selection()
	cur := sel.Start
	line := h.LineRange(cur)
	col = cur - line.Start

	for offset := 0; offset < line.Start; {
		next := h.LineRange(offset)
		if next.End <= offset {
			break
		}
		offset = next.End
		row++
	}
	return row, col
}

func putLine(screen tcell.Screen, row, width int, text string) {
	putStyledLine(screen, row, width, text, tcell.StyleDefault)
}

func putStyledLine(screen tcell.Screen, row, width int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		screen.SetContent(col, row, ' ', nil, style)
	}
}
