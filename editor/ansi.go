package editor

// ANSI escape sequences for terminal control
const (
	// Screen control
	CLEAR_SCREEN = "\x1b[2J" // Clear entire screen
	CLEAR_LINE   = "\x1b[K"  // Clear line from cursor to end
	CURSOR_HOME  = "\x1b[H"  // Move cursor to top-left (1,1)

	// Cursor visibility
	CURSOR_HIDE = "\x1b[?25l"
	CURSOR_SHOW = "\x1b[?25h"

	// Bounded moves: C and B stop at the screen edge, unlike ESC[999;999H
	CURSOR_FORWARD_MAX  = "\x1b[999C"
	CURSOR_DOWN_MAX     = "\x1b[999B"
	CURSOR_GET_POSITION = "\x1b[6n" // Request cursor position, reply is ESC[rows;colsR

	// Format string for moving cursor to a specific row;col (1-indexed)
	CURSOR_POSITION_FORMAT = "\x1b[%d;%dH"

	LINE_BREAK = "\r\n"
)

// Glyphs drawn in rows past the end of the document
const (
	EMPTY_ROW_MARKER = "~"
	PADDING          = " "
)
