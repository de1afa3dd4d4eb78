// Package config manages user-level defaults stored at ~/.nuv/config.yaml.
// Values can also come from NUV_* environment variables and, for the new
// command, from bound command-line flags, which take precedence.
package config
