package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hnnsb/kivi/editor"
)

// Config holds the viewer settings. Flags win over the config file, which
// wins over the defaults. Environment variables are not consulted.
type Config struct {
	ReadTimeout int    // raw-mode read timeout in tenths of a second
	QuitKey     string // letter pressed together with Ctrl to quit
	LogFile     string
	LogLevel    string
}

func DefaultConfig() Config {
	return Config{
		ReadTimeout: editor.DEFAULT_READ_TIMEOUT,
		QuitKey:     string(rune(editor.DEFAULT_QUIT_KEY)),
		LogLevel:    "error",
	}
}

var flagKeys = map[string]string{
	"read-timeout": "read_timeout",
	"quit-key":     "quit_key",
	"log-file":     "log.file",
	"log-level":    "log.level",
}

func registerFlags(flags *pflag.FlagSet) {
	def := DefaultConfig()
	flags.Int("read-timeout", def.ReadTimeout, "raw-mode read timeout in tenths of a second (1-255)")
	flags.String("quit-key", def.QuitKey, "letter that quits together with Ctrl")
	flags.String("log-file", def.LogFile, "write logs to this file instead of stderr")
	flags.String("log-level", def.LogLevel, "log level when logging to a file (trace, debug, info, error)")
}

// loadConfig reads the optional YAML file at path and overlays explicitly set flags.
func loadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("read_timeout", def.ReadTimeout)
	v.SetDefault("quit_key", def.QuitKey)
	v.SetDefault("log.file", def.LogFile)
	v.SetDefault("log.level", def.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	cfg := Config{
		ReadTimeout: v.GetInt("read_timeout"),
		QuitKey:     strings.TrimSpace(v.GetString("quit_key")),
		LogFile:     strings.TrimSpace(v.GetString("log.file")),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ReadTimeout < 1 || c.ReadTimeout > 255 {
		return fmt.Errorf("read_timeout must be between 1 and 255, got %d", c.ReadTimeout)
	}
	if len(c.QuitKey) != 1 || c.QuitKey[0] < 'a' || c.QuitKey[0] > 'z' {
		return fmt.Errorf("quit_key must be a single lowercase letter, got %q", c.QuitKey)
	}
	if c.QuitKey == "r" {
		return fmt.Errorf("quit_key %q is reserved for redraw", c.QuitKey)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
