package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stevencarpenter/nuv/internal/config"
	"github.com/stevencarpenter/nuv/internal/uv"
)

// Check result tags.
var (
	tagOK   = color.New(color.FgGreen).SprintFunc()
	tagMiss = color.New(color.FgRed).SprintFunc()
	tagWarn = color.New(color.FgYellow).SprintFunc()
)

func (a *app) newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that nuv can create projects on this machine",
		Long: `Run diagnostic checks: uv is on PATH and recent enough, and the
config file (if any) is readable.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.runDoctor(cmd, cmd.OutOrStdout()) {
				return silentExit(exitFailure)
			}
			return nil
		},
	}
}

// runDoctor prints one line per check and reports whether all required checks passed.
func (a *app) runDoctor(cmd *cobra.Command, w io.Writer) bool {
	ok := true
	tool := a.newTool(a.logger)

	fmt.Fprintln(w, "uv check:")
	path, err := tool.LookupPath()
	if err != nil {
		fmt.Fprintf(w, "  %s %v\n", tagMiss("[MISS]"), err)
		ok = false
	} else {
		fmt.Fprintf(w, "  %s %s found at %s\n", tagOK("[ OK ]"), tool.Name, path)

		v, err := tool.Version(cmd.Context())
		switch {
		case err != nil:
			fmt.Fprintf(w, "  %s could not determine %s version: %v\n", tagWarn("[WARN]"), tool.Name, err)
		case !uv.MeetsMinimum(v):
			fmt.Fprintf(w, "  %s %s %s is older than %s; upgrade with '%s self update'\n",
				tagWarn("[WARN]"), tool.Name, v, uv.MinVersion, tool.Name)
		default:
			fmt.Fprintf(w, "  %s %s %s\n", tagOK("[ OK ]"), tool.Name, v)
		}
	}

	fmt.Fprintln(w, "Config check:")
	configFile := config.FilePath()
	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(w, "  %s %s not present; built-in defaults in use\n", tagOK("[ OK ]"), configFile)
	} else if err != nil {
		fmt.Fprintf(w, "  %s %s: %v\n", tagMiss("[FAIL]"), configFile, err)
		ok = false
	} else {
		fmt.Fprintf(w, "  %s %s exists\n", tagOK("[ OK ]"), configFile)
	}
	for _, key := range config.Keys() {
		fmt.Fprintf(w, "         %s = %s\n", key, config.Get(key))
	}

	return ok
}
