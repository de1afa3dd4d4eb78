// Package cli defines the Cobra command tree for the nuv CLI. Each file in
// this package builds one top-level command. Commands delegate to internal
// packages for business logic and only handle flag parsing, output
// formatting and exit codes.
package cli
