package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ResolveTarget computes where a project named name will be created.
// A non-empty at is used verbatim; otherwise the project goes in workDir/name.
// The resolved path must not exist yet.
//
// The existence probe and the later directory creation are not atomic. The
// caller is expected to create the final path with os.Mkdir so that a path
// appearing in between still fails with ErrTargetExists.
func ResolveTarget(name, at, workDir string) (string, error) {
	target := at
	if target == "" {
		target = filepath.Join(workDir, name)
	}

	_, err := os.Lstat(target)
	switch {
	case err == nil:
		return "", fmt.Errorf("%w: directory already exists: %s", ErrTargetExists, target)
	case errors.Is(err, os.ErrNotExist):
		return target, nil
	default:
		return "", fmt.Errorf("checking target %s: %w", target, err)
	}
}
