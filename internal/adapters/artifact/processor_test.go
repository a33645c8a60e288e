package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/artifact"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRemoveDenylisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "slang-rhi.lib"), "lib")
	writeFile(t, filepath.Join(root, "sgl.dll"), "dll")
	writeFile(t, filepath.Join(root, "include", "slang-rhi.lib"), "nested")

	removed, err := artifact.NewProcessor(mockLogger).
		RemoveDenylisted(domain.NewInstallLayout(root), []string{"slang-rhi.lib", "absent.lib"})
	require.NoError(t, err)
	assert.Equal(t, []string{"slang-rhi.lib"}, removed)

	assert.NoFileExists(t, filepath.Join(root, "slang-rhi.lib"))
	assert.FileExists(t, filepath.Join(root, "sgl.dll"))
	assert.FileExists(t, filepath.Join(root, "include", "slang-rhi.lib"))
}

func TestRemoveDenylisted_NothingPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	removed, err := artifact.NewProcessor(mockLogger).
		RemoveDenylisted(domain.NewInstallLayout(t.TempDir()), []string{"slang-rhi.lib"})
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestBundleData_ReplacesDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	src := filepath.Join(t.TempDir(), "data")
	writeFile(t, filepath.Join(src, "fonts", "a.ttf"), "font")
	writeFile(t, filepath.Join(src, "shaders", "b.slang"), "shader")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0o750))

	dst := filepath.Join(t.TempDir(), "build", "lib", "slangpy", "data")
	writeFile(t, filepath.Join(dst, "stale.txt"), "old")

	err := artifact.NewProcessor(mockLogger).BundleData(src, dst)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dst, "stale.txt"))
	assert.DirExists(t, filepath.Join(dst, "empty"))

	content, err := os.ReadFile(filepath.Join(dst, "shaders", "b.slang"))
	require.NoError(t, err)
	assert.Equal(t, "shader", string(content))
	assert.FileExists(t, filepath.Join(dst, "fonts", "a.ttf"))
}

func TestBundleData_MissingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dst := filepath.Join(t.TempDir(), "dst")
	err := artifact.NewProcessor(mockLogger).BundleData(filepath.Join(t.TempDir(), "data"), dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDataBundleFailed.Error())
}

func TestBundleData_FollowsSymlinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	shared := t.TempDir()
	writeFile(t, filepath.Join(shared, "fonts", "a.ttf"), "font")
	writeFile(t, filepath.Join(shared, "logo.png"), "png")

	src := filepath.Join(t.TempDir(), "data")
	writeFile(t, filepath.Join(src, "shaders", "b.slang"), "shader")
	if err := os.Symlink(filepath.Join(shared, "fonts"), filepath.Join(src, "fonts")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(shared, "logo.png"), filepath.Join(src, "logo.png")))

	dst := filepath.Join(t.TempDir(), "data")
	require.NoError(t, artifact.NewProcessor(mockLogger).BundleData(src, dst))

	info, err := os.Lstat(filepath.Join(dst, "fonts"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	content, err := os.ReadFile(filepath.Join(dst, "fonts", "a.ttf"))
	require.NoError(t, err)
	assert.Equal(t, "font", string(content))

	info, err = os.Lstat(filepath.Join(dst, "logo.png"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestBundleData_DanglingSymlink(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	src := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.MkdirAll(src, 0o750))
	if err := os.Symlink(filepath.Join(src, "gone"), filepath.Join(src, "broken")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	err := artifact.NewProcessor(mockLogger).BundleData(src, filepath.Join(t.TempDir(), "data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDataBundleFailed.Error())
}
