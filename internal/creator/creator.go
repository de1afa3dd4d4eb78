package creator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/stevencarpenter/nuv/internal/project"
	"github.com/stevencarpenter/nuv/internal/scaffold"
	"github.com/stevencarpenter/nuv/internal/uv"
)

// Request describes one project to create.
type Request struct {
	Name          string
	At            string // Explicit target; empty means WorkDir/Name
	WorkDir       string // Defaults to the process working directory
	Archetype     string
	PythonVersion string
	InstallMode   project.InstallMode
	KeepOnFailure bool
}

// withDefaults fills unset optional fields.
func (r Request) withDefaults() (Request, error) {
	if r.Archetype == "" {
		r.Archetype = project.DefaultArchetype
	}
	if r.PythonVersion == "" {
		r.PythonVersion = project.DefaultPythonVersion
	}
	if r.InstallMode == "" {
		r.InstallMode = project.DefaultInstallMode
	}
	if r.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return r, fmt.Errorf("resolving working directory: %w", err)
		}
		r.WorkDir = wd
	}
	return r, nil
}

// Outcome describes a finished (or abandoned) creation.
type Outcome struct {
	Target         string
	Stage          Stage // Last stage reached; StageDone on success
	Files          []string
	Warnings       []string
	InstallCommand []string // Set when the install mode is command-only
	RolledBack     bool
}

// Creator sequences project creation.
type Creator struct {
	Logger    *slog.Logger
	Tool      *uv.Tool
	Generator *scaffold.Generator

	mkdir func(target string) error // makeTarget unless overridden in tests
}

// New returns a Creator that renders the embedded templates and runs tool.
func New(logger *slog.Logger, tool *uv.Tool) *Creator {
	return &Creator{
		Logger:    logger,
		Tool:      tool,
		Generator: scaffold.New(),
	}
}

// Run creates the project and returns the outcome with a process exit code:
// 0 on success, 1 on any failure. Failures are logged once at error level.
func (c *Creator) Run(ctx context.Context, req Request) (*Outcome, int) {
	out, err := c.Create(ctx, req)
	if err != nil {
		c.Logger.Error(err.Error())
		return out, 1
	}
	c.Logger.Info("created " + out.Target + string(filepath.Separator))
	return out, 0
}

// Create runs every stage in order. The returned Outcome is never nil.
func (c *Creator) Create(ctx context.Context, req Request) (*Outcome, error) {
	out := &Outcome{Stage: StageStart}

	err := c.create(ctx, req, out)
	if err == nil {
		c.advance(out, StageDone)
		return out, nil
	}

	reached := out.Stage
	c.Logger.Debug("creation failed", "stage", reached.String(), "error", err)
	out.Stage = StageFailed

	if reached.ownsDirectory() {
		if req.KeepOnFailure {
			c.Logger.Warn("keeping partially created project for inspection: " + out.Target)
		} else {
			c.rollback(out)
		}
	}
	return out, err
}

func (c *Creator) create(ctx context.Context, req Request, out *Outcome) error {
	req, err := req.withDefaults()
	if err != nil {
		return err
	}

	// Everything below is side-effect free until the directory is made.
	if _, err := project.ValidatePythonVersion(req.PythonVersion); err != nil {
		return err
	}
	mode, err := project.ValidateInstallMode(string(req.InstallMode))
	if err != nil {
		return err
	}
	if _, err := project.ValidateArchetype(req.Archetype); err != nil {
		return err
	}
	name, err := project.ValidateName(req.Name)
	if err != nil {
		return err
	}
	c.advance(out, StageNameValidated)

	target, err := project.ResolveTarget(name, req.At, req.WorkDir)
	if err != nil {
		return err
	}
	// uv records the install location, so hand it an absolute path.
	if abs, absErr := filepath.Abs(target); absErr == nil {
		target = abs
	}
	out.Target = target
	c.advance(out, StageTargetResolved)

	mkdir := c.mkdir
	if mkdir == nil {
		mkdir = makeTarget
	}
	if err := mkdir(target); err != nil {
		return err
	}
	c.advance(out, StageDirectoryCreated)

	if err := ctx.Err(); err != nil {
		return err
	}
	result, err := c.Generator.Generate(target, req.Archetype, scaffold.NewData(name, req.PythonVersion))
	if result != nil {
		out.Files = result.Files
		out.Warnings = result.Warnings
	}
	if err != nil {
		return err
	}
	for _, w := range out.Warnings {
		c.Logger.Warn("manifest: " + w)
	}
	c.advance(out, StageFilesScaffolded)

	if err := c.Tool.Sync(ctx, target); err != nil {
		return err
	}
	c.advance(out, StageSynced)

	if err := c.Tool.Install(ctx, target, mode); err != nil {
		return err
	}
	if mode == project.InstallCommandOnly {
		out.InstallCommand = c.Tool.InstallCommand(target)
	}
	c.advance(out, StageInstalled)

	return nil
}

// makeTarget creates missing parents, then the target itself with Mkdir so a
// directory that appeared after ResolveTarget is reported, not reused.
func makeTarget(target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", target, err)
	}
	if err := os.Mkdir(target, 0755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: directory already exists: %s", project.ErrTargetExists, target)
		}
		return fmt.Errorf("creating %s: %w", target, err)
	}
	return nil
}

// rollback removes the target directory. A failure here is secondary to the
// error that triggered it, so it is logged at warn level and not returned.
func (c *Creator) rollback(out *Outcome) {
	if err := os.RemoveAll(out.Target); err != nil {
		c.Logger.Warn("could not remove partially created project", "path", out.Target, "error", err)
		return
	}
	out.RolledBack = true
	c.Logger.Debug("removed partially created project", "path", out.Target)
}

func (c *Creator) advance(out *Outcome, next Stage) {
	out.Stage = next
	c.Logger.Debug("stage " + next.String())
}
