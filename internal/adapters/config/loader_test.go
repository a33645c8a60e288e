package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/config"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeProjectFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, config.Filename), []byte(content), 0o600)
	require.NoError(t, err)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	loader := config.NewLoader(mockLogger)

	project, err := loader.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultProject(tmpDir), project)
	assert.Equal(t, filepath.Join(tmpDir, "build", "pip"), project.WorkingDirectory().Path)
}

func TestLoad_ResolvesSymlinkedSourceDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	checkout := filepath.Join(root, "slangpy")
	require.NoError(t, os.Mkdir(checkout, 0o750))
	link := filepath.Join(root, "link")
	if err := os.Symlink(checkout, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	project, err := config.NewLoader(mockLogger).Load(link)
	require.NoError(t, err)
	assert.Equal(t, checkout, project.SourceDir)
	assert.Equal(t, filepath.Join(checkout, "build", "pip"), project.WorkingDirectory().Path)
}

func TestLoad_MissingSourceDirKeepsAbsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	missing := filepath.Join(t.TempDir(), "missing")
	project, err := config.NewLoader(mockLogger).Load(missing)
	require.NoError(t, err)
	assert.Equal(t, missing, project.SourceDir)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, `
version: "1"
optionPrefix: FOO
package: foopy
versionHeader: include/foo/version.h
versionMacro: FOO_VERSION
buildDir: out/wheel
denylist: ["a.lib", "b.pdb"]
data:
  source: assets
sibling:
  name: bar
`)

	project, err := config.NewLoader(mockLogger).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "FOO", project.OptionPrefix)
	assert.Equal(t, "foopy", project.Package)
	assert.Equal(t, filepath.Join(tmpDir, "include", "foo", "version.h"), project.VersionHeaderPath())
	assert.Equal(t, "FOO_VERSION", project.VersionMacro)
	assert.Equal(t, filepath.Join(tmpDir, "out", "wheel"), project.WorkingDirectory().Path)
	assert.Equal(t, []string{"a.lib", "b.pdb"}, project.Denylist)
	assert.Equal(t, "assets", project.Data.Source)
	assert.Equal(t, filepath.Join("slangpy", "data"), project.Data.Destination)
	assert.Equal(t, "FOO_LOCAL_BAR_DIR", project.SiblingOption("LOCAL_", "_DIR"))
	assert.Equal(t, "RelWithDebInfo", project.BuildType)
}

func TestLoad_EmptyDenylistClears(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "denylist: []\n")

	project, err := config.NewLoader(nil).Load(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, project.Denylist)
}

func TestLoad_ParseError(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "optionPrefix: [unterminated\n")

	_, err := config.NewLoader(nil).Load(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, filepath.Join(tmpDir, config.Filename), zErr.Metadata()["path"])
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad prefix", "optionPrefix: 1abc\n", "optionPrefix"},
		{"absolute build dir", "buildDir: /tmp/out\n", "buildDir"},
		{"escaping build dir", "buildDir: ../out\n", "buildDir"},
		{"source root as build dir", "buildDir: ./\n", "buildDir"},
		{"escaping data destination", "data:\n  destination: ../../x\n", "data.destination"},
		{"denylist path", "denylist: [\"sub/file.lib\"]\n", "denylist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeProjectFile(t, tmpDir, tt.content)

			_, err := config.NewLoader(nil).Load(tmpDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrInvalidProject.Error())

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			_, has := zErr.Metadata()[tt.field]
			assert.True(t, has, "expected metadata key %q", tt.field)
		})
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	tmpDir := t.TempDir()
	// A directory in place of the file fails the read with something other than ErrNotExist.
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, config.Filename), 0o750))

	_, err := config.NewLoader(nil).Load(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}
