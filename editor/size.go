package editor

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/term"
)

// Bound on the cursor position reply, e.g. "\x1b[9999;9999R" fits comfortably.
const cursorReportCap = 32

// Bound on unrelated input skipped while looking for the reply.
const cursorReportMaxSkip = 256

// WindowSize returns the terminal size in rows and columns. It asks the kernel
// first and falls back to moving the cursor to the bottom-right corner and
// asking the terminal where it ended up.
func WindowSize(fd int, in io.Reader, out io.Writer) (int, int, error) {
	cols, rows, err := term.GetSize(fd)
	if err == nil && cols > 0 && rows > 0 {
		return rows, cols, nil
	}

	rows, cols, probeErr := probeWindowSize(in, out)
	if probeErr != nil {
		if err != nil {
			probeErr = fmt.Errorf("%w; %w", err, probeErr)
		}
		return 0, 0, opError(ErrTerminalSize, "getWindowSize", probeErr)
	}
	return rows, cols, nil
}

func probeWindowSize(in io.Reader, out io.Writer) (int, int, error) {
	probe := CURSOR_FORWARD_MAX + CURSOR_DOWN_MAX + CURSOR_GET_POSITION
	if n, err := io.WriteString(out, probe); err != nil {
		return 0, 0, err
	} else if n != len(probe) {
		return 0, 0, io.ErrShortWrite
	}
	return parseCursorReport(in)
}

// parseCursorReport extracts rows and cols from a "ESC [ rows ; cols R" reply.
// Unrelated bytes ahead of the reply, including other escape sequences, are
// discarded. Nothing after the final R is read.
func parseCursorReport(in io.Reader) (int, int, error) {
	kr := NewKeyReader(in)

	var buf [cursorReportCap]byte
	var prev byte
	n := 0
	inReply := false
	skipped := 0
	for {
		if !inReply && skipped >= cursorReportMaxSkip {
			return 0, 0, errors.New("cursor position reply not found")
		}
		b, ok, err := kr.readByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			if inReply {
				return 0, 0, errors.New("truncated cursor position reply")
			}
			return 0, 0, errors.New("no cursor position reply")
		}

		if !inReply {
			skipped++
			if prev == '\x1b' && b == '[' {
				inReply = true
				n = 0
				prev = 0
				continue
			}
			prev = b
			continue
		}

		switch {
		case b == 'R':
			return parseRowsCols(buf[:n])
		case isDigit(b) || b == ';':
			if n >= len(buf) {
				return 0, 0, errors.New("cursor position reply too long")
			}
			buf[n] = b
			n++
		default:
			// Some other sequence, keep looking for the reply after it.
			inReply = false
			skipped += n + 1
			prev = b
		}
	}
}

func parseRowsCols(body []byte) (int, int, error) {
	sep := -1
	for i, c := range body {
		if c == ';' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return 0, 0, fmt.Errorf("malformed cursor position reply %q", body)
	}
	rows, err := strconv.Atoi(string(body[:sep]))
	if err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("malformed cursor position reply %q", body)
	}
	cols, err := strconv.Atoi(string(body[sep+1:]))
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("malformed cursor position reply %q", body)
	}
	return rows, cols, nil
}
