package editor

import "golang.org/x/sys/unix"

// TCSETSF drains output and flushes pending input, like tcsetattr(TCSAFLUSH).
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
