package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stevencarpenter/nuv/internal/config"
	"github.com/stevencarpenter/nuv/internal/creator"
	"github.com/stevencarpenter/nuv/internal/project"
	"github.com/stevencarpenter/nuv/internal/uv"
)

var (
	colorCreated = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorCommand = color.New(color.FgCyan).SprintFunc()
)

type newOptions struct {
	at string
}

func (a *app) newNewCommand() *cobra.Command {
	opts := &newOptions{}
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new project",
		Long: `Create a new uv-managed Python project in ./<name> (or --at PATH),
then run 'uv sync' inside it.

Examples:
  nuv new my-tool
  nuv new my-tool --python-version 3.13 --install editable
  nuv new my-tool --at ~/src/tool --keep-on-failure`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNew(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.at, "at", "", "Target directory (default: ./<name>)")
	flags.String("archetype", project.DefaultArchetype, "Project archetype")
	flags.String("python-version", project.DefaultPythonVersion, "Python version to pin, as MAJOR.MINOR")
	flags.String("install", string(project.DefaultInstallMode), "Install mode: editable, none or command-only")
	flags.Bool("keep-on-failure", false, "Keep the partially created project if a step fails")
	_ = viper.BindPFlag(config.KeyArchetype, flags.Lookup("archetype"))
	_ = viper.BindPFlag(config.KeyPythonVersion, flags.Lookup("python-version"))
	_ = viper.BindPFlag(config.KeyInstall, flags.Lookup("install"))
	_ = viper.BindPFlag(config.KeyKeepOnFailure, flags.Lookup("keep-on-failure"))
	return cmd
}

func (a *app) runNew(cmd *cobra.Command, opts *newOptions, name string) error {
	// Option values are checked here so bad input exits 2 before anything runs.
	archetype, err := project.ValidateArchetype(config.Get(config.KeyArchetype))
	if err != nil {
		return usageError(err)
	}
	pythonVersion, err := project.ValidatePythonVersion(config.Get(config.KeyPythonVersion))
	if err != nil {
		return usageError(err)
	}
	mode, err := project.ValidateInstallMode(config.Get(config.KeyInstall))
	if err != nil {
		return usageError(err)
	}
	// Env values bypass the checks config set applies.
	if err := config.Validate(config.KeyKeepOnFailure, config.Get(config.KeyKeepOnFailure)); err != nil {
		return usageError(err)
	}

	req := creator.Request{
		Name:          name,
		At:            opts.at,
		Archetype:     archetype,
		PythonVersion: pythonVersion,
		InstallMode:   mode,
		KeepOnFailure: config.GetBool(config.KeyKeepOnFailure),
	}

	c := creator.New(a.logger, a.newTool(a.logger))
	out, code := c.Run(cmd.Context(), req)
	if code != exitOK {
		return silentExit(code)
	}

	printOutcome(cmd.OutOrStdout(), name, out)
	return nil
}

func printOutcome(w io.Writer, name string, out *creator.Outcome) {
	fmt.Fprintf(w, "%s %s/\n", colorCreated("Created"), out.Target)
	for _, f := range out.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(out.Warnings) > 0 {
		fmt.Fprintln(w, "\n"+colorWarn("Warnings:"))
		for _, warning := range out.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", uv.FormatCommand([]string{out.Target}))
	fmt.Fprintf(w, "  2. Run %s\n", colorCommand("uv run "+name))
	fmt.Fprintf(w, "  3. Test with %s\n", colorCommand("uv run pytest"))
	if out.InstallCommand != nil {
		fmt.Fprintf(w, "  4. Install as a command: %s\n", colorCommand(uv.FormatCommand(out.InstallCommand)))
	}
}
