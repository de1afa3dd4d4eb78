// Package project holds the input rules for a new project: name, Python
// version, install mode and archetype validation, and resolution of the
// directory the project will be created in. Everything here is pure except
// ResolveTarget, which probes the filesystem read-only.
package project
