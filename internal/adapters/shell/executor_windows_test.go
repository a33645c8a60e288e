//go:build windows

package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/msvc"
	"go.trai.ch/extbuild/internal/adapters/shell"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_RawCmdLineWithSpacedScript(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := filepath.Join(t.TempDir(), "Program Files", "VS")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	script := filepath.Join(dir, "vcvarsall.bat")
	require.NoError(t, os.WriteFile(script, []byte("@set EXTBUILD_SPEC=%1\r\n"), 0o600))

	var stdout bytes.Buffer
	inv := &domain.Invocation{
		Name:    "cmd.exe",
		Args:    []string{"/s", "/c"},
		CmdLine: msvc.CommandLine(script, "x86_arm64"),
		Env:     os.Environ(),
		Quiet:   true,
	}

	err := shell.NewExecutor(mockLogger).Execute(context.Background(), inv, &stdout, nil)
	require.NoError(t, err)
	assert.Contains(t, msvc.ParseSetOutput(stdout.String()), "EXTBUILD_SPEC=x86_arm64")
}
