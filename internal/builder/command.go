package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Output captures the result of one external command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// UnexpectedExitError is returned when a command exits with a code other than
// the expected one.
type UnexpectedExitError struct {
	Cmd  string
	Code int
	Want int
}

func (e *UnexpectedExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d, want %d", e.Cmd, e.Code, e.Want)
}

// Runner executes external commands in a working directory, capturing output
// while also streaming it to the configured writers.
type Runner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Log receives per-command records; defaults to a no-op logger.
	Log *zap.Logger
}

// Run executes a command in dir and requires it to exit 0.
func (r *Runner) Run(ctx context.Context, dir string, args ...string) (*Output, error) {
	return r.RunExpect(ctx, dir, 0, args...)
}

// RunExpect executes a command in dir and requires the given exit code.
// The command's stdout and stderr are captured in the returned Output and
// recorded in the run log regardless of outcome.
func (r *Runner) RunExpect(ctx context.Context, dir string, want int, args ...string) (*Output, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no command given")
	}

	bin, err := exec.LookPath(args[0])
	if err != nil {
		return nil, fmt.Errorf("command %q not found: %w", args[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, args[1:]...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	runErr := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	display := strings.Join(args, " ")

	if runErr != nil {
		exitErr, ok := runErr.(*exec.ExitError)
		if !ok {
			return output, fmt.Errorf("executing %q: %w", display, runErr)
		}
		output.ExitCode = exitErr.ExitCode()
	}

	r.logCommand(display, dir, output)

	if output.ExitCode != want {
		return output, &UnexpectedExitError{Cmd: display, Code: output.ExitCode, Want: want}
	}
	return output, nil
}

func (r *Runner) logCommand(display, dir string, output *Output) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("command finished",
		zap.String("cmd", display),
		zap.String("dir", dir),
		zap.Int("exit", output.ExitCode),
	)
	if output.Stderr != "" {
		log.Warn("command stderr", zap.String("cmd", display), zap.String("output", output.Stderr))
	}
	if output.Stdout != "" {
		log.Info("command stdout", zap.String("cmd", display), zap.String("output", output.Stdout))
	}
}
