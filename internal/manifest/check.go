package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CheckRequiresPython reports an error when the manifest's requires-python
// constraint does not admit pythonVersion (MAJOR.MINOR).
func CheckRequiresPython(p *Pyproject, pythonVersion string) error {
	if p.Project.RequiresPython == "" {
		return fmt.Errorf("requires-python is not set")
	}
	c, err := semver.NewConstraint(p.Project.RequiresPython)
	if err != nil {
		return fmt.Errorf("requires-python %q is not a valid constraint: %w", p.Project.RequiresPython, err)
	}
	v, err := semver.NewVersion(pythonVersion)
	if err != nil {
		return fmt.Errorf("python version %q: %w", pythonVersion, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("requires-python %q does not admit pinned python %s", p.Project.RequiresPython, pythonVersion)
	}
	return nil
}

// Check validates the manifest at path and cross-checks it against the pinned
// Python version. Every finding is returned as a warning string; the error
// return is reserved for an unreadable or unparsable manifest.
func Check(path, pythonVersion string) ([]string, error) {
	var warnings []string

	result, err := ValidateFile(path)
	if err != nil {
		return nil, err
	}
	for _, issue := range result.Issues {
		warnings = append(warnings, issue.String())
	}

	p, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := CheckRequiresPython(p, pythonVersion); err != nil {
		warnings = append(warnings, err.Error())
	}

	return warnings, nil
}
