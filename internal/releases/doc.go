// Package releases lists Blender release tags from the GitHub API so a user
// can see which versions are buildable without leaving the CLI. Results are
// cached on disk for a day; when the network is unavailable a stale cache is
// served rather than failing the command.
package releases
