package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hnnsb/kivi/internal/version"
)

func TestRootRejectsExtraArguments(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"a.txt", "b.txt"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("Expected error for two positional arguments")
	}
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--read-timeout", "0"})
	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "read_timeout") {
		t.Fatalf("Expected read_timeout validation error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := version.Module() + " " + version.Current() + "\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}
