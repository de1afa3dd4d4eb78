// Package scaffold renders a new Python project from embedded template sets.
// It powers "nuv new": given an empty target directory it writes the version
// pin, the rendered project files and a tests/ package, then checks the
// generated pyproject.toml and reports anything suspicious as warnings.
package scaffold
