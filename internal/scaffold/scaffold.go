package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/stevencarpenter/nuv/internal/manifest"
	"github.com/stevencarpenter/nuv/internal/project"
)

//go:embed all:templates
var embeddedTemplates embed.FS

// ErrTemplateNotFound is returned when an archetype has no template by the requested name.
var ErrTemplateNotFound = errors.New("template not found")

// Data holds every variable available to scaffold templates.
type Data struct {
	Name               string // e.g., "cool-tool"
	ModuleName         string // Derived: "cool_tool"
	PythonVersion      string // MAJOR.MINOR, e.g., "3.14"
	PythonVersionNoDot string // Derived: "314", used as py{{.PythonVersionNoDot}}
}

// NewData creates a Data with derived fields populated.
func NewData(name, pythonVersion string) Data {
	return Data{
		Name:               name,
		ModuleName:         project.ModuleName(name),
		PythonVersion:      pythonVersion,
		PythonVersionNoDot: strings.ReplaceAll(pythonVersion, ".", ""),
	}
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Dir      string
	Files    []string // Relative paths, in write order
	Warnings []string
}

// artifact maps an output path to the template it is rendered from.
// An empty Template means the file is written empty.
type artifact struct {
	Path     string
	Template string
}

const versionPinFile = ".python-version"

var rootArtifacts = []artifact{
	{Path: ".gitignore", Template: "gitignore.tmpl"},
	{Path: "main.py", Template: "main.py.tmpl"},
	{Path: "_logging.py", Template: "_logging.py.tmpl"},
	{Path: manifest.FileName, Template: "pyproject.toml.tmpl"},
	{Path: "README.md", Template: "readme.md.tmpl"},
}

const testsDir = "tests"

var testArtifacts = []artifact{
	{Path: "__init__.py"},
	{Path: "test_main.py", Template: "test_main.py.tmpl"},
}

// Generator renders templates from a store laid out as <archetype>/<name>.
type Generator struct {
	Templates fs.FS
}

// New returns a Generator backed by the embedded template sets.
func New() *Generator {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return &Generator{Templates: sub}
}

// Render loads archetype/tplName and executes it against data. A reference to
// a field Data does not have fails the render instead of producing empty text.
func (g *Generator) Render(tplName, archetype string, data Data) (string, error) {
	tplPath := path.Join(archetype, tplName)
	tplBytes, err := fs.ReadFile(g.Templates, tplPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, tplPath)
		}
		return "", fmt.Errorf("reading template %s: %w", tplPath, err)
	}

	tmpl, err := template.New(tplName).Option("missingkey=error").Parse(string(tplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", tplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", tplPath, err)
	}
	return buf.String(), nil
}

// Generate writes the archetype's file set into targetDir, which must already
// exist and be empty. The Python version is validated before anything is
// written, so that failure leaves targetDir untouched.
func (g *Generator) Generate(targetDir, archetype string, data Data) (*Result, error) {
	if _, err := project.ValidatePythonVersion(data.PythonVersion); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return nil, fmt.Errorf("reading output directory: %w", err)
	}
	if len(entries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", targetDir)
	}

	result := &Result{Dir: targetDir}

	if err := writeText(targetDir, versionPinFile, data.PythonVersion); err != nil {
		return result, err
	}
	result.Files = append(result.Files, versionPinFile)

	for _, a := range rootArtifacts {
		if err := g.writeArtifact(targetDir, archetype, a, data); err != nil {
			return result, err
		}
		result.Files = append(result.Files, a.Path)
	}

	testsPath := filepath.Join(targetDir, testsDir)
	if err := os.Mkdir(testsPath, 0755); err != nil {
		return result, fmt.Errorf("creating %s: %w", testsPath, err)
	}
	for _, a := range testArtifacts {
		if err := g.writeArtifact(testsPath, archetype, a, data); err != nil {
			return result, err
		}
		result.Files = append(result.Files, path.Join(testsDir, a.Path))
	}

	warnings, err := manifest.Check(filepath.Join(targetDir, manifest.FileName), data.PythonVersion)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not check manifest: %v", err))
	} else {
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result, nil
}

func (g *Generator) writeArtifact(dir, archetype string, a artifact, data Data) error {
	if a.Template == "" {
		outPath := filepath.Join(dir, a.Path)
		if err := os.WriteFile(outPath, nil, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		return nil
	}

	text, err := g.Render(a.Template, archetype, data)
	if err != nil {
		return err
	}
	return writeText(dir, a.Path, text)
}

// writeText writes text to dir/name ending in exactly one newline.
func writeText(dir, name, text string) error {
	outPath := filepath.Join(dir, name)
	if err := os.WriteFile(outPath, []byte(normalizeNewline(text)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

func normalizeNewline(text string) string {
	return strings.TrimRight(text, "\r\n") + "\n"
}
