package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hnnsb/kivi/editor"
	"github.com/hnnsb/kivi/internal/version"
	"pkt.systems/psi"
	"pkt.systems/pslog"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		// The terminal has been restored by now, so the message stays readable.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "kivi [file]",
		Short:         "View a text file in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger, closer, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer closer.Close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			ctx = pslog.ContextWithLogger(ctx, logger)
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			if err := run(ctx, cfg, path, os.Stdin, os.Stdout); err != nil {
				if cfg.LogFile != "" {
					logger.With("err", err).Error("kivi failed")
				}
				return err
			}
			return nil
		},
	}
	root.Flags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")
	registerFlags(root.Flags())

	root.AddCommand(newVersionCmd())
	return root
}

// signalContext is cancelled by the signals that would otherwise kill the
// process while the terminal is still in raw mode.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.Module(), version.Current())
			return err
		},
	}
}

// run loads the document, takes the terminal into raw mode and hands control
// to the editor loop. Raw mode is released on every return path.
func run(ctx context.Context, cfg Config, path string, in *os.File, out *os.File) (err error) {
	log := pslog.Ctx(ctx)

	doc := editor.NewDocument()
	if path != "" {
		doc, err = editor.Open(path)
		if err != nil {
			return err
		}
		log.Info("document loaded", "path", path, "rows", doc.NumRows())
	}

	session, err := editor.EnableRawMode(int(in.Fd()), uint8(cfg.ReadTimeout))
	if err != nil {
		clearScreen(out)
		return err
	}
	log.Debug("raw mode enabled", "read_timeout", cfg.ReadTimeout)
	defer func() {
		if restoreErr := session.Restore(); restoreErr != nil {
			err = errors.Join(err, restoreErr)
			return
		}
		log.Debug("raw mode restored")
	}()

	ed := editor.New(doc, in, out, editor.Options{
		Fd:      int(out.Fd()),
		QuitKey: cfg.QuitKey[0],
	})
	if err := ed.Init(ctx); err != nil {
		ed.ClearScreen()
		return err
	}
	return ed.Run(ctx)
}

func clearScreen(w io.Writer) {
	io.WriteString(w, editor.CLEAR_SCREEN+editor.CURSOR_HOME)
}
