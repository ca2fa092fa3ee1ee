// Package matrix loads and validates build matrix files. A matrix file is the
// YAML hand-off from whoever drives the builds (CI, a release manager) to this
// tool: each entry names one Blender release and the Python versions to build
// it against. Files are schema-checked before use so a malformed matrix fails
// with field-level messages instead of a half-run build.
package matrix
