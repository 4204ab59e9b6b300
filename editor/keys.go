package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Key is a decoded keypress. Values below 256 are the raw byte that was read,
// anything above is one of the named navigation keys.
type Key int

// Key aliases
const (
	ESCAPE     Key = '\x1b'
	ARROW_LEFT Key = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

var keyNames = map[Key]string{
	ESCAPE:      "Escape",
	ARROW_LEFT:  "ArrowLeft",
	ARROW_RIGHT: "ArrowRight",
	ARROW_UP:    "ArrowUp",
	ARROW_DOWN:  "ArrowDown",
	DELETE_KEY:  "Delete",
	HOME_KEY:    "Home",
	END_KEY:     "End",
	PAGE_UP:     "PageUp",
	PAGE_DOWN:   "PageDown",
}

// IsByte reports whether k carries a single input byte rather than a named key.
func (k Key) IsByte() bool {
	return k >= 0 && k < 256
}

// IsControl reports whether k is a control combo such as Ctrl-Q.
func (k Key) IsControl() bool {
	return k < 32 || k == 127
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == 127 {
		return "Ctrl-?"
	}
	if k.IsControl() {
		return fmt.Sprintf("Ctrl-%c", byte(k)|0x40)
	}
	if k.IsByte() {
		return fmt.Sprintf("%q", byte(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Convert a character to its control key equivalent
func withControlKey(c byte) Key {
	return Key(c & 0x1f) // strip the upper three bits
}

// Check if the byte is a digit character
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// KeyReader decodes raw terminal input into keys. The underlying reader is
// expected to return zero bytes when the raw-mode read timeout expires.
type KeyReader struct {
	r   io.Reader
	buf [1]byte
}

func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// readByte returns ok == false when the read timed out without data.
func (kr *KeyReader) readByte() (byte, bool, error) {
	n, err := kr.r.Read(kr.buf[:])
	if n == 1 {
		return kr.buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR) {
		return 0, false, nil
	}
	return 0, false, opError(ErrRead, "read", err)
}

// ReadKey waits for the next keypress. Between read timeouts ctx is checked,
// so cancelling it is the only way to stop waiting besides an I/O error.
func (kr *KeyReader) ReadKey(ctx context.Context) (Key, error) {
	var c byte
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		b, ok, err := kr.readByte()
		if err != nil {
			return 0, err
		}
		if ok {
			c = b
			break
		}
	}

	if c != '\x1b' {
		return Key(c), nil
	}
	return kr.readEscapeSequence()
}

// readEscapeSequence decodes what follows an escape byte. It never reads more
// bytes than the sequence grammar needs, and a missing byte means a bare Escape.
//
// Page Up is sent as <esc>[5~ and Page Down as <esc>[6~. Home may arrive as
// <esc>[1~, <esc>[7~, <esc>[H or <esc>OH, End as <esc>[4~, <esc>[8~, <esc>[F or <esc>OF.
func (kr *KeyReader) readEscapeSequence() (Key, error) {
	var seq [3]byte
	for i := range 2 {
		b, ok, err := kr.readByte()
		if err != nil {
			return 0, err
		}
		if !ok {
			return ESCAPE, nil
		}
		seq[i] = b
	}

	switch seq[0] {
	case '[':
		if isDigit(seq[1]) {
			b, ok, err := kr.readByte()
			if err != nil {
				return 0, err
			}
			if !ok {
				return ESCAPE, nil
			}
			seq[2] = b
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4', '8':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return ESCAPE, nil // Unknown escape sequence
}
