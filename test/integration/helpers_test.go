//go:build integration

package integration_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stevencarpenter/nuv/internal/creator"
	"github.com/stevencarpenter/nuv/internal/uv"
)

// fakeUV is a stand-in executable that records each invocation as
// "<working dir>|<args>" and exits with $FAKE_UV_EXIT.
const fakeUV = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "uv 0.5.11 (fake 2024-12-19)"
  exit 0
fi
echo "$(pwd -P)|$*" >> "$FAKE_UV_LOG"
exit "${FAKE_UV_EXIT:-0}"
`

// testEnv holds paths to isolated test directories.
type testEnv struct {
	BinDir  string // Prepended to PATH; holds the fake uv when installed
	WorkDir string // Where projects are created
	LogFile string // Invocations recorded by the fake uv
	Logs    *bytes.Buffer
}

// setupTestEnv sandboxes PATH and the nuv home. With withUV the fake uv is
// the only uv reachable; without it no uv is reachable at all.
func setupTestEnv(t *testing.T, withUV bool) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake uv is a POSIX shell script")
	}

	env := &testEnv{
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
		Logs:    &bytes.Buffer{},
	}
	env.LogFile = filepath.Join(t.TempDir(), "uv.log")

	if withUV {
		writeFile(t, filepath.Join(env.BinDir, "uv"), fakeUV, 0755)
	}
	t.Setenv("PATH", env.BinDir)
	t.Setenv("FAKE_UV_LOG", env.LogFile)
	t.Setenv("NUV_HOME", t.TempDir())

	// Resolve symlinked temp roots so paths match what the script records.
	if resolved, err := filepath.EvalSymlinks(env.WorkDir); err == nil {
		env.WorkDir = resolved
	}
	return env
}

// newCreator wires the production uv invoker with captured output.
func (e *testEnv) newCreator() *creator.Creator {
	logger := slog.New(slog.NewTextHandler(e.Logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tool := uv.New(logger)
	tool.Runner = &uv.ExecRunner{Stdout: e.Logs, Stderr: e.Logs}
	return creator.New(logger, tool)
}

// invocations returns the recorded fake uv calls as "<dir>|<args>" lines.
func (e *testEnv) invocations(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", e.LogFile, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
