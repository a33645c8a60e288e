package msvc_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extbuild/internal/adapters/msvc"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestParseSetOutput(t *testing.T) {
	output := "=C:=C:\\work\r\nPath=C:\\VC\\bin;C:\\Windows\r\nINCLUDE=C:\\VC\\include\r\n" +
		"**********************************************************************\r\n" +
		"** Visual Studio 2022 Developer Command Prompt\r\n" +
		"VSCMD_ARG_TGT_ARCH=x64\r\n"

	env := msvc.ParseSetOutput(output)
	assert.Equal(t, []string{
		`Path=C:\VC\bin;C:\Windows`,
		`INCLUDE=C:\VC\include`,
		"VSCMD_ARG_TGT_ARCH=x64",
	}, env)
}

func TestQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)

	base := []string{`ProgramFiles(x86)=C:\PF86`, `Path=C:\Windows`}
	vswhere := filepath.Join(`C:\PF86`, "Microsoft Visual Studio", "Installer", "vswhere.exe")
	script := filepath.Join(`C:\VS\2022`, "VC", "Auxiliary", "Build", "vcvarsall.bat")

	gomock.InOrder(
		mockExecutor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, inv *domain.Invocation, stdout, _ io.Writer) error {
				assert.Equal(t, vswhere, inv.Name)
				assert.Contains(t, inv.Args, msvc.VCToolsComponent)
				assert.Equal(t, base, inv.Env)
				_, err := io.WriteString(stdout, "C:\\VS\\2022\r\n")
				return err
			}),
		mockExecutor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, inv *domain.Invocation, stdout, _ io.Writer) error {
				assert.Equal(t, "cmd.exe", inv.Name)
				assert.Equal(t, `cmd.exe /s /c ""`+script+`" x86_arm64 && set"`, inv.CmdLine)
				assert.Equal(t, []string{"/s", "/c", `"` + script + `" x86_arm64 && set`}, inv.Args)
				assert.True(t, inv.Quiet)
				_, err := io.WriteString(stdout, "Path=C:\\VC\\arm64\r\nLIB=C:\\VC\\lib\r\n")
				return err
			}),
	)

	env, err := msvc.NewVCVarsWithEnv(mockExecutor, base).Query(context.Background(), "x86_arm64")
	require.NoError(t, err)
	assert.Equal(t, []string{`Path=C:\VC\arm64`, `LIB=C:\VC\lib`}, env)
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t,
		`cmd.exe /s /c ""C:\Program Files\VS\vcvarsall.bat" x64 && set"`,
		msvc.CommandLine(`C:\Program Files\VS\vcvarsall.bat`, "x64"))
}

func TestQuery_NoInstallation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := msvc.NewVCVarsWithEnv(mockExecutor, nil).Query(context.Background(), "x64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrToolchainEnvFailed.Error())
}

func TestQuery_VcvarsFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	gomock.InOrder(
		mockExecutor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.Invocation, stdout, _ io.Writer) error {
				_, err := io.WriteString(stdout, "C:\\VS\n")
				return err
			}),
		mockExecutor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("exit status 1")),
	)

	_, err := msvc.NewVCVarsWithEnv(mockExecutor, nil).Query(context.Background(), "x64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrToolchainEnvFailed.Error())
}
