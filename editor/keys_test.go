package editor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

func TestReadKeySequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"plain letter", "a", Key('a')},
		{"high byte", "\xe9", Key(0xe9)},
		{"ctrl q", "\x11", withControlKey('q')},
		{"arrow up", "\x1b[A", ARROW_UP},
		{"arrow down", "\x1b[B", ARROW_DOWN},
		{"arrow right", "\x1b[C", ARROW_RIGHT},
		{"arrow left", "\x1b[D", ARROW_LEFT},
		{"home bracket H", "\x1b[H", HOME_KEY},
		{"end bracket F", "\x1b[F", END_KEY},
		{"home 1~", "\x1b[1~", HOME_KEY},
		{"home 7~", "\x1b[7~", HOME_KEY},
		{"end 4~", "\x1b[4~", END_KEY},
		{"end 8~", "\x1b[8~", END_KEY},
		{"delete", "\x1b[3~", DELETE_KEY},
		{"page up", "\x1b[5~", PAGE_UP},
		{"page down", "\x1b[6~", PAGE_DOWN},
		{"home OH", "\x1bOH", HOME_KEY},
		{"end OF", "\x1bOF", END_KEY},
		{"lone escape", "\x1b", ESCAPE},
		{"escape then one byte", "\x1b[", ESCAPE},
		{"digit without tilde", "\x1b[5x", ESCAPE},
		{"digit then nothing", "\x1b[5", ESCAPE},
		{"unknown digit", "\x1b[2~", ESCAPE},
		{"unknown letter", "\x1b[Z", ESCAPE},
		{"unknown O sequence", "\x1bOA", ESCAPE},
		{"unknown introducer", "\x1bxy", ESCAPE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kr := NewKeyReader(bytes.NewReader([]byte(tt.input)))
			got, err := kr.ReadKey(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestReadKeyDoesNotOverRead(t *testing.T) {
	r := bytes.NewReader([]byte("\x1b[Ax\x1b[6~"))
	kr := NewKeyReader(r)
	want := []Key{ARROW_UP, Key('x'), PAGE_DOWN}
	for i, w := range want {
		got, err := kr.ReadKey(context.Background())
		if err != nil {
			t.Fatalf("key %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("key %d: Expected %v, got %v", i, w, got)
		}
	}
	if r.Len() != 0 {
		t.Errorf("Expected all input consumed, %d bytes left", r.Len())
	}
}

// timeoutReader returns zero bytes a few times before each chunk, the way a
// raw-mode terminal does when VTIME expires.
type timeoutReader struct {
	chunks [][]byte
	idle   int
	waits  int
}

func (r *timeoutReader) Read(p []byte) (int, error) {
	if r.waits < r.idle {
		r.waits++
		return 0, nil
	}
	r.waits = 0
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks[0] = r.chunks[0][n:]
	if len(r.chunks[0]) == 0 {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func TestReadKeyWaitsThroughTimeouts(t *testing.T) {
	kr := NewKeyReader(&timeoutReader{chunks: [][]byte{[]byte("k")}, idle: 3})
	got, err := kr.ReadKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Key('k') {
		t.Errorf("Expected %v, got %v", Key('k'), got)
	}
}

func TestReadKeyEscapeTimeout(t *testing.T) {
	// The sequence tail arrives only after a timeout, so the escape stands alone.
	kr := NewKeyReader(&timeoutReader{chunks: [][]byte{[]byte("\x1b"), []byte("[A")}, idle: 1})
	got, err := kr.ReadKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ESCAPE {
		t.Errorf("Expected %v, got %v", ESCAPE, got)
	}
}

func TestReadKeyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	kr := NewKeyReader(bytes.NewReader(nil))
	if _, err := kr.ReadKey(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestReadKeyError(t *testing.T) {
	cause := errors.New("device gone")
	kr := NewKeyReader(failingReader{err: cause})
	_, err := kr.ReadKey(context.Background())
	if !errors.Is(err, ErrRead) {
		t.Errorf("Expected ErrRead, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected cause to be wrapped, got %v", err)
	}
	if err.Error() != "read: device gone" {
		t.Errorf("Expected %q, got %q", "read: device gone", err.Error())
	}
}

func TestKeyClassification(t *testing.T) {
	if !withControlKey('q').IsControl() {
		t.Errorf("Expected Ctrl-Q to be a control key")
	}
	if withControlKey('q') != Key(17) {
		t.Errorf("Expected Ctrl-Q to be 17, got %d", withControlKey('q'))
	}
	if Key('a').IsControl() {
		t.Errorf("Expected 'a' not to be a control key")
	}
	if ARROW_UP.IsByte() {
		t.Errorf("Expected ArrowUp not to be a byte key")
	}
	if got := withControlKey('q').String(); got != "Ctrl-Q" {
		t.Errorf("Expected %q, got %q", "Ctrl-Q", got)
	}
	if got := PAGE_UP.String(); got != "PageUp" {
		t.Errorf("Expected %q, got %q", "PageUp", got)
	}
}
