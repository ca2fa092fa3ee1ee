package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/bpybuild/manage/internal/versions"
	"github.com/bpybuild/manage/internal/workspace"
)

// Options configures one build run.
type Options struct {
	Blender *semver.Version // Blender release to build
	Python  string          // Python version to build against, major.minor
	RepoURL string          // Blender git repository
	LibURL  string          // precompiled dependency tree (svn)
	WorkDir string          // scratch directory; a temp dir is created when empty
	Root    string          // invocation directory; dist/ is created here
}

// Builder runs the Blender-as-Python-module build pipeline.
type Builder struct {
	opts   Options
	runner *Runner
	log    *zap.Logger
}

// New creates a Builder. The logger receives every pipeline step and the full
// output of every external command.
func New(opts Options, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		opts:   opts,
		runner: &Runner{Log: log},
		log:    log,
	}
}

// ProcessName names a build run after its targets, e.g. "blender-git-3.5.1-3.10".
// Used for scratch directory names and log records.
func ProcessName(blender *semver.Version, python string) string {
	return fmt.Sprintf("blender-git-%s-%s", blender, python)
}

// Run executes the pipeline and returns the path of the produced bpy tree
// under dist/. The scratch directory is removed afterwards unless the caller
// supplied one.
func (b *Builder) Run(ctx context.Context) (string, error) {
	start := time.Now()
	name := ProcessName(b.opts.Blender, b.opts.Python)
	b.log.Info("build started",
		zap.String("process", name),
		zap.String("blender", b.opts.Blender.String()),
		zap.String("python", b.opts.Python),
	)

	work := b.opts.WorkDir
	if work == "" {
		tmp, err := os.MkdirTemp("", name+"-*")
		if err != nil {
			return "", fmt.Errorf("creating scratch directory: %w", err)
		}
		defer os.RemoveAll(tmp)
		work = tmp
	}

	dist, err := b.build(ctx, work)
	if err != nil {
		b.log.Error("build failed", zap.String("process", name), zap.Error(err))
		return "", err
	}

	elapsed := time.Since(start)
	b.log.Info("build finished",
		zap.String("process", name),
		zap.String("dist", dist),
		zap.Float64("elapsed_minutes", elapsed.Minutes()),
	)
	return dist, nil
}

func (b *Builder) build(ctx context.Context, work string) (string, error) {
	blenderDir := filepath.Join(work, "blender")
	libDir := filepath.Join(work, "lib")
	buildDir := filepath.Join(work, "build_linux_bpy")

	if _, err := b.runner.Run(ctx, work, "git", "clone", b.opts.RepoURL); err != nil {
		return "", fmt.Errorf("cloning blender: %w", err)
	}

	for _, dir := range []string{libDir, buildDir} {
		if err := workspace.EnsureDir(dir); err != nil {
			return "", err
		}
	}

	if _, err := b.runner.Run(ctx, libDir, "svn", "checkout", b.opts.LibURL); err != nil {
		return "", fmt.Errorf("checking out precompiled libraries: %w", err)
	}

	tag := versions.GitTag(b.opts.Blender)
	if _, err := b.runner.Run(ctx, blenderDir, "git", "checkout", tag); err != nil {
		return "", fmt.Errorf("checking out %s: %w", tag, err)
	}

	if _, err := b.runner.Run(ctx, blenderDir, "make", "update"); err != nil {
		return "", fmt.Errorf("updating blender submodules: %w", err)
	}

	cmakeArgs := []string{"cmake", "-DPYTHON_VERSION=" + b.opts.Python, blenderDir}
	if _, err := b.runner.Run(ctx, buildDir, cmakeArgs...); err != nil {
		return "", fmt.Errorf("configuring build: %w", err)
	}

	if _, err := b.runner.Run(ctx, blenderDir, "make", "bpy"); err != nil {
		return "", fmt.Errorf("building bpy: %w", err)
	}

	output := filepath.Join(buildDir, "bin", "bpy")
	destRoot := workspace.DistDir(b.opts.Root)
	if err := workspace.EnsureDir(destRoot); err != nil {
		return "", err
	}

	dest := filepath.Join(destRoot, "bpy")
	if err := copyTree(output, dest); err != nil {
		return "", fmt.Errorf("copying build output: %w", err)
	}
	return dest, nil
}

// copyTree copies a directory tree. The destination must not already exist so
// a fresh build never silently merges into a stale one.
func copyTree(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("destination %s already exists", dst)
	}
	if err := os.MkdirAll(dst, workspace.DirPermNormal); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	return os.CopyFS(dst, os.DirFS(src))
}
