package toolcheck_test

import (
	"context"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/toolcheck"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func lookPathIn(known ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, k := range known {
			if k == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func versionBanner(banner string) func(context.Context, *domain.Invocation, io.Writer, io.Writer) error {
	return func(_ context.Context, _ *domain.Invocation, stdout, _ io.Writer) error {
		_, err := io.WriteString(stdout, banner)
		return err
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		banner string
		want   string
	}{
		{"cmake version 3.28.3\n\nCMake suite maintained by Kitware", "3.28.3"},
		{"ninja 1.11\n", "1.11"},
		{"Python 3.12.1", "3.12.1"},
	}
	for _, tt := range tests {
		got, err := toolcheck.ParseVersion(tt.banner)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := toolcheck.ParseVersion("no digits here")
	require.Error(t, err)
}

func TestCheck_AllSatisfied(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(versionBanner("cmake version 3.28.3\n"))

	checker := toolcheck.NewCheckerWithLookPath(mockExecutor, lookPathIn("cmake", "ninja"))

	statuses, err := checker.Check(context.Background(), []domain.ToolRequirement{
		{Name: "cmake", Constraint: ">= 3.21.0"},
		{Name: "ninja", Optional: true},
	})
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Satisfied)
	assert.Equal(t, "3.28.3", statuses[0].Version)
	assert.Equal(t, "/usr/bin/cmake", statuses[0].Path)
	assert.True(t, statuses[1].Satisfied)
}

func TestCheck_Alternatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)

	checker := toolcheck.NewCheckerWithLookPath(mockExecutor, lookPathIn("python"))

	statuses, err := checker.Check(context.Background(), []domain.ToolRequirement{
		{Name: "python3", Alternatives: []string{"python"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/python", statuses[0].Path)
}

func TestCheck_MissingRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)

	checker := toolcheck.NewCheckerWithLookPath(mockExecutor, lookPathIn())

	statuses, err := checker.Check(context.Background(), []domain.ToolRequirement{
		{Name: "ninja", Optional: true},
		{Name: "cmake", Constraint: ">= 3.21.0"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMissingTool.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "cmake", zErr.Metadata()["tool"])

	require.Len(t, statuses, 2)
	assert.False(t, statuses[0].Satisfied)
	assert.Equal(t, "not found in PATH", statuses[1].Problem)
}

func TestCheck_VersionTooOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(versionBanner("cmake version 3.16.3\n"))

	checker := toolcheck.NewCheckerWithLookPath(mockExecutor, lookPathIn("cmake"))

	statuses, err := checker.Check(context.Background(), []domain.ToolRequirement{
		{Name: "cmake", Constraint: ">= 3.21.0"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrToolVersionUnsatisfied.Error())
	assert.Equal(t, "3.16.3", statuses[0].Version)
	assert.NotEmpty(t, statuses[0].Problem)
}
