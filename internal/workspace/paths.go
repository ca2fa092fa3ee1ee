// Package workspace resolves the output directories a build run writes into,
// all relative to the directory the CLI was invoked from: dist/ for finished
// artifacts and log/build/ for per-run log files.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Directory name constants for the workspace convention.
const (
	DistDirName = "dist"
	LogDirName  = "log"
	BuildSubdir = "build"

	DirPermNormal os.FileMode = 0755
)

// DistDir returns the artifact output directory under root.
func DistDir(root string) string {
	return filepath.Join(root, DistDirName)
}

// BuildLogDir returns the build log directory under root.
func BuildLogDir(root string) string {
	return filepath.Join(root, LogDirName, BuildSubdir)
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirPermNormal); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}
