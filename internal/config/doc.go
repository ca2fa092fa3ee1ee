// Package config manages user-level settings stored at ~/.bpybuild/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the Blender repository and precompiled library URLs used by the build
// pipeline.
package config
