package project

import "errors"

// Error kinds returned (wrapped) by the validators and ResolveTarget.
var (
	ErrInvalidName        = errors.New("invalid project name")
	ErrInvalidVersion     = errors.New("invalid python version")
	ErrInvalidInstallMode = errors.New("invalid install mode")
	ErrInvalidArchetype   = errors.New("invalid archetype")
	ErrTargetExists       = errors.New("target already exists")
)
