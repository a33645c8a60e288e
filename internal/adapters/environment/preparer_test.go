package environment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/environment"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestPrepare_NonWindowsCopiesAmbient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockToolchain := mocks.NewMockToolchainEnvironment(ctrl)

	ambient := []string{"PATH=/usr/bin", "HOME=/home/u"}
	preparer := environment.NewPreparerWithAmbient(mockToolchain, func() []string { return ambient })

	env, err := preparer.Prepare(context.Background(), domain.BuildTarget{
		Platform: domain.PlatformLinux,
		Preset:   domain.PresetLinuxGCC,
	})
	require.NoError(t, err)
	assert.Equal(t, ambient, env)

	env[0] = "PATH=/mutated"
	assert.Equal(t, "PATH=/usr/bin", ambient[0], "the ambient environment must not be mutated")
}

func TestPrepare_WindowsReplacesEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockToolchain := mocks.NewMockToolchainEnvironment(ctrl)
	mockToolchain.EXPECT().
		Query(gomock.Any(), domain.PlatformSpecX86ARM64).
		Return([]string{`Path=C:\VC\arm64`}, nil)

	preparer := environment.NewPreparerWithAmbient(mockToolchain, func() []string {
		return []string{"AMBIENT=1"}
	})

	env, err := preparer.Prepare(context.Background(), domain.BuildTarget{
		Platform:     domain.PlatformWindows,
		Preset:       domain.PresetWindowsARM64MSVC,
		PlatformSpec: domain.PlatformSpecX86ARM64,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{`Path=C:\VC\arm64`}, env)
}

func TestPrepare_WindowsQueryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockToolchain := mocks.NewMockToolchainEnvironment(ctrl)
	mockToolchain.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("no vs"))

	preparer := environment.NewPreparerWithAmbient(mockToolchain, func() []string { return nil })

	_, err := preparer.Prepare(context.Background(), domain.BuildTarget{
		Platform:     domain.PlatformWindows,
		PlatformSpec: domain.PlatformSpecX64,
	})
	require.Error(t, err)
}
