package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/bpybuild/manage/internal/builder"
	"github.com/bpybuild/manage/internal/config"
	"github.com/bpybuild/manage/internal/versions"
	"github.com/bpybuild/manage/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	buildBlender string
	buildPythons []string
	buildWorkDir string
)

func init() {
	buildCmd.Flags().StringVarP(&buildBlender, "blender", "b", "", "Blender version to target (required)")
	buildCmd.Flags().StringArrayVarP(&buildPythons, "python", "p", nil, "Python version to target (required, repeatable)")
	buildCmd.Flags().StringVar(&buildWorkDir, "work-dir", "", "Reuse a scratch directory instead of a fresh temp dir")
	_ = buildCmd.MarkFlagRequired("blender")
	_ = buildCmd.MarkFlagRequired("python")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build Blender as a Python module",
	Long: `Compile Blender's bpy target for the given versions and place the result
under dist/. Requires git, svn, cmake, and make on PATH. Command output is
written to a timestamped file under log/build/.

Example:
  manage build -b 3.5.1 -p 3.10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		blender, err := versions.ParseBlender(buildBlender)
		if err != nil {
			return err
		}

		// Only the first interpreter is built; extra -p flags are accepted
		// for matrix-driver compatibility.
		python := buildPythons[0]
		if err := versions.ParsePython(python); err != nil {
			return err
		}

		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		logDir := workspace.BuildLogDir(root)
		if err := workspace.EnsureDir(logDir); err != nil {
			return err
		}

		start := time.Now()
		log, logPath, closeLog, err := builder.NewBuildLogger(logDir, start)
		if err != nil {
			return err
		}
		defer closeLog()

		fmt.Printf("Building bpy %s for Python %s (log: %s)\n", blender, python, logPath)

		b := builder.New(builder.Options{
			Blender: blender,
			Python:  python,
			RepoURL: config.Get(config.KeyBlenderRepoURL),
			LibURL:  config.Get(config.KeyBlenderLibURL),
			WorkDir: buildWorkDir,
			Root:    root,
		}, log)

		dist, err := b.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("build failed (see %s): %w", logPath, err)
		}

		fmt.Printf("Build complete: %s (%.2f minutes)\n", dist, time.Since(start).Minutes())
		return nil
	},
}
