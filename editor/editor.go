package editor

import (
	"context"
	"io"

	"pkt.systems/pslog"
)

// Config Constants
const (
	DEFAULT_QUIT_KEY = 'q'
)

// Options configures an Editor.
type Options struct {
	// Fd is the terminal whose size is queried; a negative value skips the
	// kernel query and goes straight to the cursor probe.
	Fd int
	// QuitKey is the letter that, combined with Ctrl, quits.
	QuitKey byte
}

// Editor runs the render, read, dispatch cycle over a loaded document.
type Editor struct {
	doc     *Document
	view    *View
	keys    *KeyReader
	in      io.Reader
	out     io.Writer
	fd      int
	quitKey Key
}

// New creates an editor reading keys from in and drawing to out. The view has
// a 1x1 placeholder size until Init or Resize is called.
func New(doc *Document, in io.Reader, out io.Writer, opts Options) *Editor {
	if doc == nil {
		doc = NewDocument()
	}
	quit := opts.QuitKey
	if quit == 0 {
		quit = DEFAULT_QUIT_KEY
	}
	return &Editor{
		doc:     doc,
		view:    NewView(1, 1),
		keys:    NewKeyReader(in),
		in:      in,
		out:     out,
		fd:      opts.Fd,
		quitKey: withControlKey(quit),
	}
}

// Init sizes the view from the terminal.
func (e *Editor) Init(ctx context.Context) error {
	rows, cols, err := WindowSize(e.fd, e.in, e.out)
	if err != nil {
		return err
	}
	e.view.Resize(rows, cols)
	pslog.Ctx(ctx).Debug("window size", "rows", rows, "cols", cols)
	return nil
}

// Resize sets the viewport dimensions directly.
func (e *Editor) Resize(rows, cols int) {
	e.view.Resize(rows, cols)
}

func (e *Editor) View() *View {
	return e.view
}

// Redraw re-queries the window size, for terminals that were resized.
func (e *Editor) Redraw(ctx context.Context) error {
	return e.Init(ctx)
}

// RefreshScreen draws the current frame with a single write.
func (e *Editor) RefreshScreen() error {
	frame := Frame(e.doc, e.view)
	n, err := e.out.Write(frame)
	if err == nil && n != len(frame) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return opError(ErrRead, "write", err)
	}
	return nil
}

// ClearScreen wipes the screen and homes the cursor, ignoring write errors.
func (e *Editor) ClearScreen() {
	io.WriteString(e.out, CLEAR_SCREEN+CURSOR_HOME)
}

// ProcessKeypress applies key to the view. It reports quit when the quit
// combo was pressed; keys without a binding are ignored.
func (e *Editor) ProcessKeypress(ctx context.Context, key Key) (bool, error) {
	numRows := e.doc.NumRows()

	switch key {
	case e.quitKey:
		return true, nil

	case PAGE_UP, PAGE_DOWN:
		e.view.Page(key, numRows)

	case HOME_KEY:
		e.view.Home()

	case END_KEY:
		e.view.End()

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.view.MoveCursor(key, numRows)

	case withControlKey('r'):
		if err := e.Redraw(ctx); err != nil {
			return false, err
		}
	}
	return false, nil
}

// Run loops until the quit combo, a fatal error or ctx cancellation. The
// screen is cleared before returning in every case; restoring the terminal
// mode is left to the owner of the Session.
func (e *Editor) Run(ctx context.Context) error {
	log := pslog.Ctx(ctx)
	for {
		if err := e.RefreshScreen(); err != nil {
			e.ClearScreen()
			return err
		}

		key, err := e.keys.ReadKey(ctx)
		if err != nil {
			e.ClearScreen()
			return err
		}
		log.Trace("key pressed", "key", key.String())

		quit, err := e.ProcessKeypress(ctx, key)
		if err != nil {
			e.ClearScreen()
			return err
		}
		if quit {
			e.ClearScreen()
			log.Info("quit")
			return nil
		}
	}
}
