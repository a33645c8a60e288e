package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/fs"
)

func TestVerifier_VerifyOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	writeFile(t, filepath.Join(tmpDir, "out1.so"), "content")
	writeFile(t, filepath.Join(tmpDir, "include", "out2.h"), "content")

	missing, err := verifier.VerifyOutputs(tmpDir, []string{"out1.so", "include/out2.h"})
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = verifier.VerifyOutputs(tmpDir, []string{"out1.so", "missing.so"})
	require.NoError(t, err)
	assert.Equal(t, []string{"missing.so"}, missing)
}
