package builder

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestRunner_Run(t *testing.T) {
	requireSh(t)

	var stdoutBuf, stderrBuf bytes.Buffer
	r := &Runner{Stdout: &stdoutBuf, Stderr: &stderrBuf}

	out, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
	if out.Stdout != "out\n" {
		t.Errorf("Stdout = %q, want %q", out.Stdout, "out\n")
	}
	if out.Stderr != "err\n" {
		t.Errorf("Stderr = %q, want %q", out.Stderr, "err\n")
	}

	// Output is also streamed to the configured writers.
	if stdoutBuf.String() != "out\n" {
		t.Errorf("streamed stdout = %q, want %q", stdoutBuf.String(), "out\n")
	}
	if stderrBuf.String() != "err\n" {
		t.Errorf("streamed stderr = %q, want %q", stderrBuf.String(), "err\n")
	}
}

func TestRunner_UnexpectedExit(t *testing.T) {
	requireSh(t)

	r := &Runner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	out, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit, got nil")
	}

	var exitErr *UnexpectedExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *UnexpectedExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
	if out == nil || out.ExitCode != 3 {
		t.Errorf("output not captured for failed command: %+v", out)
	}
}

func TestRunner_RunExpect(t *testing.T) {
	requireSh(t)

	r := &Runner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	out, err := r.RunExpect(context.Background(), t.TempDir(), 3, "sh", "-c", "exit 3")
	if err != nil {
		t.Fatalf("unexpected error when exit code matches expectation: %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", out.ExitCode)
	}
}

func TestRunner_WorkingDirectory(t *testing.T) {
	requireSh(t)

	dir := t.TempDir()
	r := &Runner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	out, err := r.Run(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// macOS tempdirs may resolve through symlinks; only check the suffix.
	got := out.Stdout
	if got == "" {
		t.Fatal("pwd produced no output")
	}
}

func TestRunner_CommandNotFound(t *testing.T) {
	r := &Runner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	if _, err := r.Run(context.Background(), t.TempDir(), "definitely-not-a-command-xyz"); err == nil {
		t.Fatal("expected error for unknown command, got nil")
	}
}

func TestRunner_NoCommand(t *testing.T) {
	r := &Runner{}
	if _, err := r.Run(context.Background(), t.TempDir()); err == nil {
		t.Fatal("expected error for empty command, got nil")
	}
}
