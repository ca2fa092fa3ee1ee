// Package builder compiles Blender as a Python module by driving the external
// toolchain (git, svn, cmake, make) the same way a maintainer would by hand:
// clone the Blender sources into a scratch directory, fetch the precompiled
// library tree, configure for the requested Python, run the bpy target, and
// copy the result into dist/. Every command's output is captured into a
// per-run log file.
package builder
