// Package uv runs the uv dependency manager on behalf of nuv: `uv sync` to
// materialize a project's environment and `uv tool install --editable` to
// register it as a command. The child's output streams straight to the
// user's terminal so uv's own diagnostics stay visible.
package uv
