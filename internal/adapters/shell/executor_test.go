package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/shell"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func shInvocation(dir, script string, env []string) *domain.Invocation {
	return &domain.Invocation{
		Name: "sh",
		Args: []string{"-c", script},
		Dir:  dir,
		Env:  env,
	}
}

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("line1").Times(1),
		mockLogger.EXPECT().Info("line2").Times(1),
	)

	executor := shell.NewExecutor(mockLogger)
	inv := shInvocation(t.TempDir(), "echo line1; echo line2", os.Environ())

	err := executor.Execute(context.Background(), inv, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	// Partial writes are buffered until the newline arrives.
	mockLogger.EXPECT().Info("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := shInvocation(t.TempDir(), "printf part1; sleep 0.1; echo part2", os.Environ())

	err := executor.Execute(context.Background(), inv, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_TrailingPartialLine(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := shInvocation(t.TempDir(), "printf 'no newline'", os.Environ())

	err := executor.Execute(context.Background(), inv, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_StderrLoggedAsWarning(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("CMake Warning: something").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := shInvocation(t.TempDir(), "echo 'CMake Warning: something' >&2", os.Environ())

	var stderr bytes.Buffer
	err := executor.Execute(context.Background(), inv, io.Discard, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "CMake Warning: something\n", stderr.String())
}

func TestExecutor_Execute_UsesOnlyGivenEnvironment(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("EXTBUILD_AMBIENT_ONLY", "leaked")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("given-value:").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := &domain.Invocation{
		Name: "/bin/sh",
		Args: []string{"-c", "echo $GIVEN_VAR:$EXTBUILD_AMBIENT_ONLY"},
		Dir:  t.TempDir(),
		Env:  []string{"GIVEN_VAR=given-value"},
	}

	err := executor.Execute(context.Background(), inv, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)
	inv := &domain.Invocation{
		Name: "nonexistent-command-xyz123",
		Dir:  t.TempDir(),
		Env:  os.Environ(),
	}

	err := executor.Execute(context.Background(), inv, io.Discard, io.Discard)
	require.Error(t, err)
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)
	inv := shInvocation(t.TempDir(), "exit 42", os.Environ())

	err := executor.Execute(context.Background(), inv, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, 42, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Invocation{}, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_NilWriters(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("test").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := shInvocation(t.TempDir(), "echo test", os.Environ())

	err := executor.Execute(context.Background(), inv, nil, nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	dir := t.TempDir()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := shInvocation(dir, "pwd", os.Environ())

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), inv, &stdout, io.Discard)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecutor_Execute_QuietCapturesWithoutLogging(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	// No Info expectation: quiet stdout must not reach the logger.
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)
	inv := shInvocation(t.TempDir(), "echo quiet", os.Environ())
	inv.Quiet = true

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), inv, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "quiet\n", stdout.String())
}
