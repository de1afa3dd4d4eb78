package uv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/stevencarpenter/nuv/internal/branding"
	"github.com/stevencarpenter/nuv/internal/project"
)

// MinVersion is the oldest uv release nuv is tested against.
const MinVersion = "0.5.0"

// ErrToolNotFound is returned when the executable is not on PATH.
var ErrToolNotFound = errors.New("not found in PATH")

// ExitError reports a uv invocation that exited nonzero.
type ExitError struct {
	Tool string
	Op   string // "sync" or "tool install"
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s %s failed (exit %d)", e.Tool, e.Op, e.Code)
}

// Tool invokes the dependency manager.
type Tool struct {
	Name       string
	InstallURL string
	Logger     *slog.Logger
	LookPath   func(file string) (string, error)
	Runner     Runner
}

// New returns a Tool that runs the real executable.
func New(logger *slog.Logger) *Tool {
	return &Tool{
		Name:       branding.ToolName(),
		InstallURL: branding.ToolInstallURL(),
		Logger:     logger,
		LookPath:   exec.LookPath,
		Runner:     &ExecRunner{},
	}
}

// LookupPath reports where the executable was found on PATH.
func (t *Tool) LookupPath() (string, error) {
	p, err := t.LookPath(t.Name)
	if err != nil {
		return "", fmt.Errorf("%s %w. Install %s: %s", t.Name, ErrToolNotFound, t.Name, t.InstallURL)
	}
	return p, nil
}

// SyncCommand returns the argument vector for `uv sync`.
func (t *Tool) SyncCommand() []string {
	return []string{t.Name, "sync"}
}

// InstallCommand returns the argument vector for installing dir as a command.
// The order is fixed: users copy it verbatim.
func (t *Tool) InstallCommand(dir string) []string {
	return []string{t.Name, "tool", "install", "--editable", dir}
}

// Sync runs `uv sync` with dir as the working directory.
func (t *Tool) Sync(ctx context.Context, dir string) error {
	return t.run(ctx, dir, "sync", t.SyncCommand())
}

// Install registers dir as a command according to mode.
func (t *Tool) Install(ctx context.Context, dir string, mode project.InstallMode) error {
	switch mode {
	case project.InstallNone:
		return nil
	case project.InstallCommandOnly:
		t.Logger.Info("to install as a command, run: " + FormatCommand(t.InstallCommand(dir)))
		return nil
	case project.InstallEditable:
		if err := t.run(ctx, dir, "tool install", t.InstallCommand(dir)); err != nil {
			return err
		}
		t.Logger.Info("installed tool in editable mode at " + dir)
		return nil
	default:
		_, err := project.ValidateInstallMode(string(mode))
		return err
	}
}

// Version runs `uv --version` and parses the reported release.
func (t *Tool) Version(ctx context.Context) (*semver.Version, error) {
	if _, err := t.LookupPath(); err != nil {
		return nil, err
	}
	out, err := t.Runner.Output(ctx, []string{t.Name, "--version"})
	if err != nil {
		return nil, err
	}
	// "uv 0.5.11 (c4d0caaee 2024-12-19)"
	fields := strings.Fields(string(out))
	if len(fields) < 2 {
		return nil, fmt.Errorf("unexpected %s --version output %q", t.Name, strings.TrimSpace(string(out)))
	}
	v, err := semver.NewVersion(fields[1])
	if err != nil {
		return nil, fmt.Errorf("parsing %s version %q: %w", t.Name, fields[1], err)
	}
	return v, nil
}

// MeetsMinimum reports whether v is at least MinVersion.
func MeetsMinimum(v *semver.Version) bool {
	return !v.LessThan(semver.MustParse(MinVersion))
}

func (t *Tool) run(ctx context.Context, dir, op string, argv []string) error {
	if _, err := t.LookupPath(); err != nil {
		return err
	}

	t.Logger.Debug("running "+FormatCommand(argv), "dir", dir)
	code, err := t.Runner.Run(ctx, dir, argv)
	if err != nil {
		return fmt.Errorf("%s %s: %w", t.Name, op, err)
	}
	if code != 0 {
		return &ExitError{Tool: t.Name, Op: op, Code: code}
	}
	return nil
}

// FormatCommand joins argv for display, single-quoting arguments a POSIX
// shell would split or expand.
func FormatCommand(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = shellQuote(a)
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`!*?[]{}()<>|&;#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
