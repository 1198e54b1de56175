package main

// Notes:
// - This file contains test helpers shared across the CLI tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-mdfigure"
	"github.com/alnah/go-mdfigure/internal/config"
)

// ---------------------------------------------------------------------------
// Type Aliases - For cleaner test code
// ---------------------------------------------------------------------------

// Type aliases for cleaner test code.
type (
	Config          = config.Config
	InputConfig     = config.InputConfig
	OutputConfig    = config.OutputConfig
	HighlightConfig = config.HighlightConfig
	MarkdownConfig  = config.MarkdownConfig
	SiteConfig      = config.SiteConfig
)

// ---------------------------------------------------------------------------
// Environment - Isolated from the process environment
// ---------------------------------------------------------------------------

// fixedNow is the clock of every test environment.
var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testEnv returns an Environment writing to buffers and reading vars from vars.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// Files
// ---------------------------------------------------------------------------

// writeFile creates path with content, including missing parents.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockRenderer returns a fixed result and records the inputs it saw.
type mockRenderer struct {
	mu     sync.Mutex
	result *mdfigure.Result
	err    error
	names  []string
}

func (m *mockRenderer) Render(_ context.Context, input mdfigure.Input) (*mdfigure.Result, error) {
	m.mu.Lock()
	m.names = append(m.names, input.Name)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
