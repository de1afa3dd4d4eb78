// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	ToolName       string `yaml:"tool_name"`
	ToolInstallURL string `yaml:"tool_install_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "nuv",
			DisplayName:    "nuv",
			Description:    "Scaffold opinionated uv Python projects",
			HomeDir:        ".nuv",
			EnvPrefix:      "NUV",
			ToolName:       "uv",
			ToolInstallURL: "https://docs.astral.sh/uv/",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "nuv").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nuv").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NUV").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ToolName returns the executable name of the dependency manager (e.g., "uv").
func ToolName() string { load(); return defaults.ToolName }

// ToolInstallURL returns where users are sent when the dependency manager is missing.
func ToolInstallURL() string { load(); return defaults.ToolInstallURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "NUV_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
