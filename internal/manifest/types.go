package manifest

// FileName is the manifest file written at the root of every project.
const FileName = "pyproject.toml"

// Pyproject is the subset of pyproject.toml that nuv reads back.
type Pyproject struct {
	Project     Project        `toml:"project"`
	BuildSystem BuildSystem    `toml:"build-system"`
	Tool        map[string]any `toml:"tool,omitempty"`
}

// Project is the [project] table.
type Project struct {
	Name           string            `toml:"name"`
	Version        string            `toml:"version"`
	Description    string            `toml:"description,omitempty"`
	Readme         string            `toml:"readme,omitempty"`
	RequiresPython string            `toml:"requires-python"`
	Dependencies   []string          `toml:"dependencies"`
	Scripts        map[string]string `toml:"scripts,omitempty"`
}

// BuildSystem is the [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}
