package main

import (
	"io"
	"os"

	"pkt.systems/pslog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the process logger. Without a log file only errors reach
// stderr, since anything else would be drawn over the viewer's screen.
func newLogger(cfg Config) (pslog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		logger := pslog.NewWithOptions(os.Stderr, pslog.Options{
			Mode:     pslog.ModeConsole,
			MinLevel: pslog.ErrorLevel,
		})
		return logger, nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return newFileLogger(f, cfg.LogLevel), f, nil
}

func newFileLogger(w io.Writer, level string) pslog.Logger {
	opts := pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
		MinLevel:      pslog.ErrorLevel,
	}
	switch level {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "info":
		opts.MinLevel = pslog.InfoLevel
	}
	return pslog.NewWithOptions(w, opts)
}
