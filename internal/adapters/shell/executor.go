// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the invocation with exactly inv.Env as its environment and blocks
// until it exits. Stdout lines are logged at info level, stderr lines at warn level;
// both streams are additionally copied to the given writers.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation, stdout, stderr io.Writer) error {
	if inv.Name == "" {
		return nil
	}

	// Resolve the executable using the child's PATH, not ours.
	executable := inv.Name
	if !filepath.IsAbs(inv.Name) {
		if lp, err := lookPath(inv.Name, inv.Env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // command assembled by the orchestrator

	// Restore the original command name in Args[0]
	if len(cmd.Args) > 0 {
		cmd.Args[0] = inv.Name
	}

	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}
	setCmdLine(cmd, inv.CmdLine)

	// A nil Env would make os/exec inherit our environment.
	cmd.Env = inv.Env
	if cmd.Env == nil {
		cmd.Env = []string{}
	}

	stdoutLog := &logWriter{logger: e.logger, stderr: false}
	stderrLog := &logWriter{logger: e.logger, stderr: true}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	cmd.Stdout = teeWriter(stdoutLog, stdout)
	if inv.Quiet {
		cmd.Stdout = stdout
		if stdout == nil {
			cmd.Stdout = io.Discard
		}
	}
	cmd.Stderr = teeWriter(stderrLog, stderr)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed: "+inv.Name), "exit_code", exitCode)
	}

	return nil
}

func teeWriter(log io.Writer, extra io.Writer) io.Writer {
	if extra == nil {
		return log
	}
	return io.MultiWriter(log, extra)
}

// logWriter forwards complete lines to the logger, buffering partial writes.
type logWriter struct {
	logger ports.Logger
	stderr bool
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.stderr {
		w.logger.Warn(msg)
		return
	}
	w.logger.Info(msg)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	path, ok := envValue(env, "PATH")
	if !ok || path == "" {
		return "", exec.ErrNotFound
	}

	candidates := []string{file}
	if runtime.GOOS == "windows" && filepath.Ext(file) == "" {
		candidates = append(candidates, file+".exe", file+".bat", file+".cmd")
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		for _, name := range candidates {
			p := filepath.Join(dir, name)
			if err := findExecutable(p); err == nil {
				return p, nil
			}
		}
	}
	return "", exec.ErrNotFound
}

// envValue returns the value of key in env. Keys compare case-insensitively on
// Windows, where the variable is commonly spelled "Path".
func envValue(env []string, key string) (string, bool) {
	for _, entry := range env {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == key || (runtime.GOOS == "windows" && strings.EqualFold(k, key)) {
			return v, true
		}
	}
	return "", false
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	m := d.Mode()
	if m.IsDir() {
		return os.ErrPermission
	}
	if runtime.GOOS == "windows" || m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
