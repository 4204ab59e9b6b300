//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"errors"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DEFAULT_READ_TIMEOUT is the raw-mode read timeout in tenths of a second.
const DEFAULT_READ_TIMEOUT = 1

// Session owns the terminal while it is in raw mode.
type Session struct {
	fd            int
	originalState *unix.Termios
}

// EnableRawMode captures the current attributes of fd and switches it to raw mode.
// Reads on fd return after readTimeout tenths of a second even when no byte arrived.
// The caller must Restore the returned session on every exit path.
func EnableRawMode(fd int, readTimeout uint8) (*Session, error) {
	if !term.IsTerminal(fd) {
		return nil, opError(ErrTerminalConfig, "tcgetattr", errors.New("not running in a terminal"))
	}

	original, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, opError(ErrTerminalConfig, "tcgetattr", err)
	}

	raw := makeRaw(*original, readTimeout)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, opError(ErrTerminalConfig, "tcsetattr", err)
	}
	return &Session{fd: fd, originalState: original}, nil
}

// makeRaw derives the raw attribute set from a snapshot without touching the snapshot.
func makeRaw(t unix.Termios, readTimeout uint8) unix.Termios {
	if readTimeout == 0 {
		readTimeout = DEFAULT_READ_TIMEOUT
	}
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = readTimeout
	return t
}

// Restore reapplies the attributes captured by EnableRawMode. Only the first call has an effect.
func (s *Session) Restore() error {
	if s == nil || s.originalState == nil {
		return nil
	}
	state := s.originalState
	s.originalState = nil // Prevent multiple restoration attempts
	if err := unix.IoctlSetTermios(s.fd, ioctlWriteTermios, state); err != nil {
		return opError(ErrTerminalConfig, "tcsetattr", err)
	}
	return nil
}

// Active reports whether the terminal is still in raw mode.
func (s *Session) Active() bool {
	return s != nil && s.originalState != nil
}
