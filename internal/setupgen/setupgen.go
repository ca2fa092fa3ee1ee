package setupgen

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

//go:embed templates/setup.py.tmpl
var templateFS embed.FS

const templatePath = "templates/setup.py.tmpl"

// pythonPattern matches the only python_requires form the generated script may
// carry: a bare major.minor pair. Anything else would break the "==X.Y.*" pin.
var pythonPattern = regexp.MustCompile(`^\d+\.\d+$`)

// BuildConfig holds the two version strings substituted into the setup script.
// It is constructed once per render and never mutated.
type BuildConfig struct {
	BlenderVersion string // e.g., "3.5.1" — becomes the package version
	PythonVersion  string // e.g., "3.10" — becomes the interpreter pin
}

// ValidationError reports a BuildConfig field that cannot be embedded safely
// in the generated script.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// MissingTemplateError reports that the embedded setup script template could
// not be loaded or parsed. Fatal; there is no fallback template.
type MissingTemplateError struct {
	Path string
	Err  error
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("setup script template %s unavailable: %v", e.Path, e.Err)
}

func (e *MissingTemplateError) Unwrap() error { return e.Err }

// Render produces the setup.py text for the given config. It is a pure
// function: no filesystem or network access beyond the embedded template, and
// identical input yields byte-identical output. Writing the result to disk is
// the caller's job.
func Render(cfg BuildConfig) (string, error) {
	if err := validate(cfg); err != nil {
		return "", err
	}

	tmplBytes, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return "", &MissingTemplateError{Path: templatePath, Err: err}
	}

	tmpl, err := template.New("setup.py").Parse(string(tmplBytes))
	if err != nil {
		return "", &MissingTemplateError{Path: templatePath, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("executing setup script template: %w", err)
	}

	return buf.String(), nil
}

// validate rejects values that would corrupt the generated script: empty
// strings, characters that break Python string literals, and Python versions
// that are not a plain major.minor pair (a stray "*" or patch digit would
// change the meaning of the "==X.Y.*" pin).
func validate(cfg BuildConfig) error {
	if cfg.BlenderVersion == "" {
		return &ValidationError{Field: "blender version", Value: cfg.BlenderVersion, Reason: "must not be empty"}
	}
	if cfg.PythonVersion == "" {
		return &ValidationError{Field: "python version", Value: cfg.PythonVersion, Reason: "must not be empty"}
	}
	if reason, ok := literalUnsafe(cfg.BlenderVersion); !ok {
		return &ValidationError{Field: "blender version", Value: cfg.BlenderVersion, Reason: reason}
	}
	if reason, ok := literalUnsafe(cfg.PythonVersion); !ok {
		return &ValidationError{Field: "python version", Value: cfg.PythonVersion, Reason: reason}
	}
	if !pythonPattern.MatchString(cfg.PythonVersion) {
		return &ValidationError{
			Field:  "python version",
			Value:  cfg.PythonVersion,
			Reason: "must be in major.minor form (e.g. 3.10)",
		}
	}
	return nil
}

// literalUnsafe reports whether a value can be embedded in a double-quoted
// Python string literal without escaping.
func literalUnsafe(value string) (string, bool) {
	switch {
	case strings.ContainsAny(value, `"'`):
		return "must not contain quote characters", false
	case strings.Contains(value, `\`):
		return "must not contain backslashes", false
	case strings.ContainsAny(value, "\n\r"):
		return "must not contain line breaks", false
	case strings.ContainsAny(value, " \t"):
		return "must not contain whitespace", false
	}
	return "", true
}
