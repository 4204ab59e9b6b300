package editor

import "errors"

// Error kinds. Every one of them is fatal to the viewer.
var (
	ErrTerminalConfig = errors.New("terminal configuration failed")
	ErrTerminalSize   = errors.New("terminal size unavailable")
	ErrFileOpen       = errors.New("file could not be loaded")
	ErrRead           = errors.New("terminal I/O failed")
)

// OpError records the failing operation, its kind and the underlying system error.
type OpError struct {
	Kind error
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func opError(kind error, op string, err error) error {
	return &OpError{Kind: kind, Op: op, Err: err}
}
