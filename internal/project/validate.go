package project

import (
	"fmt"
	"regexp"
	"strings"
)

// Defaults applied when the caller does not choose a value.
const (
	DefaultPythonVersion = "3.14"
	DefaultInstallMode   = InstallCommandOnly
	DefaultArchetype     = "script"
)

// InstallMode controls whether the new project is installed as a command.
type InstallMode string

const (
	// InstallEditable runs `uv tool install --editable <dir>`.
	InstallEditable InstallMode = "editable"
	// InstallNone skips installation entirely.
	InstallNone InstallMode = "none"
	// InstallCommandOnly reports the install command without running it.
	InstallCommandOnly InstallMode = "command-only"
)

// InstallModes lists every accepted install mode in display order.
var InstallModes = []InstallMode{InstallEditable, InstallNone, InstallCommandOnly}

// Archetypes lists the project shapes that have a template set.
var Archetypes = []string{"script"}

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	versionPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)
)

// ValidateName checks a candidate project name and returns it unchanged.
// The checks run in a fixed order so the first applicable reason is reported.
func ValidateName(name string) (string, error) {
	switch {
	case name == "":
		return "", fmt.Errorf("%w: cannot be empty", ErrInvalidName)
	case strings.Contains(name, " "):
		return "", fmt.Errorf("%w: cannot contain spaces", ErrInvalidName)
	case strings.HasPrefix(name, "-"):
		return "", fmt.Errorf("%w: cannot start with a leading hyphen", ErrInvalidName)
	case !namePattern.MatchString(name):
		return "", fmt.Errorf("%w: contains invalid characters: %q", ErrInvalidName, name)
	}
	return name, nil
}

// ModuleName returns the identifier-safe form of a project name.
func ModuleName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// ValidatePythonVersion accepts MAJOR.MINOR only; patch components are rejected.
func ValidatePythonVersion(version string) (string, error) {
	if !versionPattern.MatchString(version) {
		return "", fmt.Errorf("%w: python version must be MAJOR.MINOR (e.g. %s), got %q",
			ErrInvalidVersion, DefaultPythonVersion, version)
	}
	return version, nil
}

// ValidateInstallMode checks mode against the closed set of install modes.
func ValidateInstallMode(mode string) (InstallMode, error) {
	for _, m := range InstallModes {
		if string(m) == mode {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: install mode must be one of %s, got %q",
		ErrInvalidInstallMode, joinModes(InstallModes), mode)
}

// ValidateArchetype checks archetype against the known template sets.
func ValidateArchetype(archetype string) (string, error) {
	for _, a := range Archetypes {
		if a == archetype {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: archetype must be one of %s, got %q",
		ErrInvalidArchetype, strings.Join(Archetypes, ", "), archetype)
}

func joinModes(modes []InstallMode) string {
	s := make([]string, len(modes))
	for i, m := range modes {
		s[i] = string(m)
	}
	return strings.Join(s, ", ")
}
