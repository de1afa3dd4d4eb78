package uv

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
)

type call struct {
	Dir  string
	Argv []string
}

// fakeRunner records invocations and replies with a fixed exit code.
type fakeRunner struct {
	code   int
	err    error
	output string
	calls  []call
}

func (f *fakeRunner) Run(_ context.Context, dir string, argv []string) (int, error) {
	f.calls = append(f.calls, call{Dir: dir, Argv: append([]string(nil), argv...)})
	return f.code, f.err
}

func (f *fakeRunner) Output(_ context.Context, argv []string) ([]byte, error) {
	f.calls = append(f.calls, call{Argv: append([]string(nil), argv...)})
	return []byte(f.output), f.err
}

func found(string) (string, error) { return "/usr/bin/uv", nil }

func missing(string) (string, error) { return "", exec.ErrNotFound }

func newTestTool(r Runner, lookPath func(string) (string, error)) (*Tool, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Tool{
		Name:       "uv",
		InstallURL: "https://docs.astral.sh/uv/",
		Logger:     slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		LookPath:   lookPath,
		Runner:     r,
	}, &buf
}

var errBoom = errors.New("boom")
