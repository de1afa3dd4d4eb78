package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stevencarpenter/nuv/internal/branding"
	"github.com/stevencarpenter/nuv/internal/config"
	"github.com/stevencarpenter/nuv/internal/logging"
	"github.com/stevencarpenter/nuv/internal/uv"
)

// app holds what the commands share for one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	// newTool builds the uv invoker; tests replace it with a fake.
	newTool func(*slog.Logger) *uv.Tool

	buildVersion string
	buildCommit  string
	buildDate    string
}

// Execute runs the CLI with build info injected via ldflags and returns the
// process exit code.
func Execute(version, commit, date string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		newTool:      uv.New,
		buildVersion: version,
		buildCommit:  commit,
		buildDate:    date,
	}
	return a.run(ctx, os.Args[1:])
}

func (a *app) run(ctx context.Context, args []string) int {
	config.Load()
	// Replaced by configureLogging once flags are parsed.
	a.logger = logging.Discard()

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	return exitCode(root.ExecuteContext(ctx), a.stderr)
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates new Python projects from opinionated templates and
hands environment setup to uv.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configureLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return silentExit(exitFailure)
		},
	}
	root.SetFlagErrorFunc(flagErrorFunc)

	flags := root.PersistentFlags()
	flags.String("log-level", logging.DefaultLevel, "Log verbosity: DEBUG, INFO, WARNING, ERROR or CRITICAL")
	flags.String("log-format", "text", "Log output format: text or json")
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(
		a.newNewCommand(),
		a.newDoctorCommand(),
		a.newConfigCommand(),
		a.newVersionCommand(),
	)
	return root
}

// configureLogging builds the invocation's logger exactly once.
func (a *app) configureLogging() error {
	level, err := logging.ParseLevel(config.Get(config.KeyLogLevel))
	if err != nil {
		return usageError(err)
	}
	format, err := logging.ParseFormat(config.Get(config.KeyLogFormat))
	if err != nil {
		return usageError(err)
	}
	opts := logging.DefaultOptions()
	opts.Level, opts.Format, opts.Output = level, format, a.stderr
	a.logger = logging.New(opts)
	return nil
}
