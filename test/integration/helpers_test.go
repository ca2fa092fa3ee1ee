//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// setupToolchain creates stub git/svn/cmake/make executables in a temp bin
// directory and prepends it to PATH, so the build pipeline can run end-to-end
// without a real Blender toolchain. Each stub records its invocation and
// produces the minimal filesystem effects the pipeline depends on.
func setupToolchain(t *testing.T) string {
	t.Helper()

	binDir := t.TempDir()

	// git clone creates the source directory; everything else is a no-op.
	writeScript(t, binDir, "git", `#!/bin/sh
if [ "$1" = "clone" ]; then
  mkdir -p blender
fi
echo "git $@"
exit 0
`)

	// svn checkout creates the library tree.
	writeScript(t, binDir, "svn", `#!/bin/sh
if [ "$1" = "checkout" ]; then
  mkdir -p linux_x86_64_glibc_228
fi
echo "svn $@"
exit 0
`)

	writeScript(t, binDir, "cmake", `#!/bin/sh
echo "cmake $@"
exit 0
`)

	// make bpy runs inside the blender source dir and drops its output into
	// the sibling build directory, like the real target does.
	writeScript(t, binDir, "make", `#!/bin/sh
if [ "$1" = "bpy" ]; then
  mkdir -p ../build_linux_bpy/bin/bpy
  echo "stub module" > ../build_linux_bpy/bin/bpy/__init__.py
fi
echo "make $@"
exit 0
`)

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return binDir
}

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", name, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}
