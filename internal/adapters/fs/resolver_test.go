package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/fs"
)

func TestResolver_ResolveInputs_Sorted(t *testing.T) {
	prefix := t.TempDir()
	writeFile(t, filepath.Join(prefix, "include", "python3.12", "Python.h"), "")
	writeFile(t, filepath.Join(prefix, "include", "python3.11", "Python.h"), "")
	writeFile(t, filepath.Join(prefix, "lib", "libpython3.11.so"), "")

	resolver := fs.NewResolver()

	resolved, err := resolver.ResolveInputs([]string{"include/python3.*"}, prefix)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(prefix, "include", "python3.11"),
		filepath.Join(prefix, "include", "python3.12"),
	}, resolved)
}

func TestResolver_ResolveInputs_Deduplicates(t *testing.T) {
	prefix := t.TempDir()
	writeFile(t, filepath.Join(prefix, "lib", "libpython3.11.so"), "")

	resolved, err := fs.NewResolver().ResolveInputs(
		[]string{"lib/libpython3.*.so", "lib/libpython3.11.so"}, prefix)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(prefix, "lib", "libpython3.11.so")}, resolved)
}

func TestResolver_ResolveInputs_NoMatches(t *testing.T) {
	resolved, err := fs.NewResolver().ResolveInputs([]string{"lib/libpython3.*.so"}, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolver_ResolveInputs_GlobError(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"["}, t.TempDir())
	require.Error(t, err)
}
