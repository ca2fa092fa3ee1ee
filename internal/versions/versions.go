// Package versions parses and compares the two version strings that drive a
// build: the Blender release being compiled and the CPython interpreter it is
// compiled against. Blender versions are full semver ("3.5.1"); Python
// versions are a bare major.minor pair ("3.10") because CPython ABI
// compatibility is decided at the minor level.
package versions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var pythonPattern = regexp.MustCompile(`^\d+\.\d+$`)

// ParseBlender parses a Blender release version. A leading "v" is tolerated
// so git tags can be passed through unchanged.
func ParseBlender(version string) (*semver.Version, error) {
	v, err := parseSemver(version)
	if err != nil {
		return nil, fmt.Errorf("parsing blender version %q: %w", version, err)
	}
	return v, nil
}

// ParsePython validates a Python version string. Only the exact major.minor
// form is accepted: a full "3.10.2" would pin the wheel to a single patch
// release, and a bare "3" cannot select an ABI at all.
func ParsePython(version string) error {
	if !pythonPattern.MatchString(version) {
		return fmt.Errorf("python version %q must be in major.minor form (e.g. 3.10)", version)
	}
	return nil
}

// PythonPin returns the python_requires specifier for a validated Python
// version, e.g. "3.10" → "==3.10.*".
func PythonPin(python string) string {
	return "==" + python + ".*"
}

// GitTag returns the Blender repository tag for a release version,
// e.g. "3.5.1" → "v3.5.1".
func GitTag(blender *semver.Version) string {
	return "v" + blender.String()
}

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
