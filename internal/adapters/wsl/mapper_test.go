package wsl_test

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/wsl"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func markerFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "WSLInterop")
	require.NoError(t, os.WriteFile(path, []byte("enabled\n"), 0o600))
	return path
}

func found(string) (string, error)    { return "/usr/bin/wslpath", nil }
func notFound(string) (string, error) { return "", exec.ErrNotFound }
func emptyEnv() []string              { return []string{"PATH=/usr/bin"} }

func TestDetect_NotWSL(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mapper := wsl.NewMapper(mockExecutor, mockLogger,
		wsl.WithMarker(filepath.Join(t.TempDir(), "absent")))

	mapping := mapper.Detect(context.Background(), "/home/u/proj")
	assert.Nil(t, mapping.Rule)
	assert.Empty(t, mapping.Diagnostics)
}

func TestDetect_MapsSourceDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, inv *domain.Invocation, stdout, _ io.Writer) error {
			assert.Equal(t, "wslpath", inv.Name)
			assert.Equal(t, []string{"-m", "/home/u/proj"}, inv.Args)
			assert.True(t, inv.Quiet)
			_, err := io.WriteString(stdout, "//wsl.localhost/Ubuntu/home/u/proj\n")
			return err
		})

	mapper := wsl.NewMapper(mockExecutor, mockLogger,
		wsl.WithMarker(markerFile(t)), wsl.WithLookPath(found), wsl.WithEnviron(emptyEnv))

	mapping := mapper.Detect(context.Background(), "/home/u/proj")
	require.NotNil(t, mapping.Rule)
	assert.Equal(t, "/home/u/proj", mapping.Rule.Source)
	assert.Equal(t, "//wsl.localhost/Ubuntu/home/u/proj", mapping.Rule.Target)
	assert.Equal(t, "-fdebug-prefix-map=/home/u/proj=//wsl.localhost/Ubuntu/home/u/proj", mapping.Rule.Flag())
	assert.Len(t, mapping.Diagnostics, 3)
	assert.Contains(t, mapping.Diagnostics[0], "WSL detected")
}

func TestDetect_NoWslpathMeansIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	mapper := wsl.NewMapper(mockExecutor, mockLogger,
		wsl.WithMarker(markerFile(t)), wsl.WithLookPath(notFound))

	mapping := mapper.Detect(context.Background(), "/home/u/proj")
	assert.Nil(t, mapping.Rule)
	assert.Contains(t, mapping.Diagnostics, "Path mapping: '/home/u/proj' -> '/home/u/proj'")
}

func TestDetect_ConversionFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("boom"))

	mapper := wsl.NewMapper(mockExecutor, mockLogger,
		wsl.WithMarker(markerFile(t)), wsl.WithLookPath(found), wsl.WithEnviron(emptyEnv))

	mapping := mapper.Detect(context.Background(), "/home/u/proj")
	assert.Nil(t, mapping.Rule)
	require.NotEmpty(t, mapping.Diagnostics)
	assert.Equal(t, "Failed to setup WSL path mapping: boom", mapping.Diagnostics[len(mapping.Diagnostics)-1])
}
