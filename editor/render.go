package editor

import (
	"fmt"
	"strconv"

	"github.com/hnnsb/kivi/internal/version"
)

// Longest cursor position sequence we ever compose, "\x1b[" + two ints + ";H".
const CURSOR_POSITION_CAP = 32

/*** append buffer ***/

// appendBuffer collects a whole frame so it reaches the terminal in one write.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

func welcomeMessage() string {
	return "KIVI viewer -- version " + version.Current()
}

// DrawRows appends every screen row: document content, the welcome banner or
// the empty-row marker, each followed by a clear to end of line.
func DrawRows(abuf *appendBuffer, doc *Document, v *View) {
	numRows := doc.NumRows()
	for y := range v.screenRows {
		filerow := y + v.rowOffset
		if filerow >= numRows {
			if numRows == 0 && y == v.screenRows/3 {
				welcome := welcomeMessage()
				welcomelen := min(len(welcome), v.screenCols)
				padding := (v.screenCols - welcomelen) / 2
				if padding > 0 {
					abuf.appendString(EMPTY_ROW_MARKER)
					padding--
				}
				for range padding {
					abuf.appendString(PADDING)
				}
				abuf.appendString(welcome[:welcomelen])
			} else {
				abuf.appendString(EMPTY_ROW_MARKER)
			}
		} else {
			chars := doc.Row(filerow)
			abuf.append(chars[:min(len(chars), v.screenCols)])
		}

		abuf.appendString(CLEAR_LINE)
		if y < v.screenRows-1 {
			abuf.appendString(LINE_BREAK)
		}
	}
}

// cursorPosition formats the 1-indexed cursor move into a fixed buffer.
func cursorPosition(dst *[CURSOR_POSITION_CAP]byte, row, col int) ([]byte, error) {
	b := dst[:0]
	b = append(b, "\x1b["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	b = append(b, 'H')
	if len(b) > CURSOR_POSITION_CAP {
		return nil, fmt.Errorf("cursor position sequence exceeds %d bytes", CURSOR_POSITION_CAP)
	}
	return b, nil
}

// Frame composes one complete screen update. It scrolls v first so the cursor
// row is inside the window.
func Frame(doc *Document, v *View) []byte {
	v.Scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME) // Move cursor to the top-left corner

	DrawRows(&abuf, doc, v)

	var pos [CURSOR_POSITION_CAP]byte
	if seq, err := cursorPosition(&pos, v.cy-v.rowOffset+1, v.cx+1); err == nil {
		abuf.append(seq)
	}

	abuf.appendString(CURSOR_SHOW)
	return abuf.b
}
