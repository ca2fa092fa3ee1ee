// Package setupgen renders the setup.py used to distribute Blender's Python
// module as the "bpy" package. The script text lives in an embedded template;
// rendering substitutes the target Blender and Python versions and nothing
// else, so the same BuildConfig always produces byte-identical output. The
// README.md read in the generated script happens when the packaging backend
// later executes it, not at render time.
package setupgen
