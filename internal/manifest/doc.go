// Package manifest reads and checks the pyproject.toml manifest written into
// a scaffolded project. The manifest is validated against an embedded JSON
// Schema and its requires-python constraint is checked against the pinned
// Python version. Findings are reported as warnings; none of them stop
// project creation.
package manifest
