package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/viper"
	"github.com/stevencarpenter/nuv/internal/branding"
	"github.com/stevencarpenter/nuv/internal/logging"
	"github.com/stevencarpenter/nuv/internal/project"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPythonVersion = "python_version"
	KeyInstall       = "install"
	KeyArchetype     = "archetype"
	KeyKeepOnFailure = "keep_on_failure"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
)

var defaults = map[string]any{
	KeyPythonVersion: project.DefaultPythonVersion,
	KeyInstall:       string(project.DefaultInstallMode),
	KeyArchetype:     project.DefaultArchetype,
	KeyKeepOnFailure: false,
	KeyLogLevel:      logging.DefaultLevel,
	KeyLogFormat:     "text",
}

// validators reject bad values before they are persisted.
var validators = map[string]func(string) error{
	KeyPythonVersion: func(v string) error { _, err := project.ValidatePythonVersion(v); return err },
	KeyInstall:       func(v string) error { _, err := project.ValidateInstallMode(v); return err },
	KeyArchetype:     func(v string) error { _, err := project.ValidateArchetype(v); return err },
	KeyKeepOnFailure: func(v string) error {
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("keep_on_failure must be true or false, got %q", v)
		}
		return nil
	},
	KeyLogLevel:  func(v string) error { _, err := logging.ParseLevel(v); return err },
	KeyLogFormat: func(v string) error { _, err := logging.ParseFormat(v); return err },
}

// Dir returns the nuv config directory: $NUV_HOME if set, else ~/.nuv/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns every recognized key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is recognized.
func IsKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Validate checks value against the rules for key.
func Validate(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	return validate(value)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	// Write only what the user set; defaults stay implicit.
	file := viper.New()
	file.SetConfigType(fileType)
	configFile := FilePath()
	if _, err := os.Stat(configFile); err == nil {
		file.SetConfigFile(configFile)
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	// Reload instead of viper.Set so flags and env keep precedence.
	_ = viper.ReadInConfig()
	return nil
}
