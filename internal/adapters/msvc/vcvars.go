// Package msvc queries the Visual Studio developer environment.
package msvc

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// VCToolsComponent is the workload required of the selected Visual Studio instance.
const VCToolsComponent = "Microsoft.VisualStudio.Component.VC.Tools.x86.x64"

var _ ports.ToolchainEnvironment = (*VCVars)(nil)

// VCVars implements ports.ToolchainEnvironment by running vcvarsall.bat.
type VCVars struct {
	executor ports.Executor
	environ  func() []string
	getenv   func(string) string
}

// NewVCVars creates a VCVars reading the process environment.
func NewVCVars(executor ports.Executor) *VCVars {
	return &VCVars{
		executor: executor,
		environ:  os.Environ,
		getenv:   os.Getenv,
	}
}

// NewVCVarsWithEnv creates a VCVars over an explicit environment.
func NewVCVarsWithEnv(executor ports.Executor, env []string) *VCVars {
	return &VCVars{
		executor: executor,
		environ:  func() []string { return append([]string(nil), env...) },
		getenv: func(key string) string {
			for _, kv := range env {
				if k, v, ok := strings.Cut(kv, "="); ok && strings.EqualFold(k, key) {
					return v
				}
			}
			return ""
		},
	}
}

// Query returns the full environment vcvarsall.bat produces for platformSpec,
// e.g. "x64" or "x86_arm64".
func (v *VCVars) Query(ctx context.Context, platformSpec string) ([]string, error) {
	install, err := v.installationPath(ctx)
	if err != nil {
		return nil, err
	}

	script := filepath.Join(install, "VC", "Auxiliary", "Build", "vcvarsall.bat")
	var out bytes.Buffer
	inv := &domain.Invocation{
		Name:    "cmd.exe",
		Args:    []string{"/s", "/c", `"` + script + `" ` + platformSpec + " && set"},
		CmdLine: CommandLine(script, platformSpec),
		Env:     v.environ(),
		Quiet:   true,
	}
	if err := v.executor.Execute(ctx, inv, &out, nil); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolchainEnvFailed.Error()), "platform_spec", platformSpec)
	}

	env := ParseSetOutput(out.String())
	if len(env) == 0 {
		return nil, zerr.With(domain.ErrToolchainEnvFailed, "platform_spec", platformSpec)
	}
	return env, nil
}

// CommandLine returns the raw cmd.exe command line that runs script for
// platformSpec and dumps the resulting environment. With /s cmd.exe strips exactly
// the outer pair of quotes, so a script path containing spaces survives.
func CommandLine(script, platformSpec string) string {
	return `cmd.exe /s /c ""` + script + `" ` + platformSpec + ` && set"`
}

func (v *VCVars) installationPath(ctx context.Context) (string, error) {
	root := v.getenv("ProgramFiles(x86)")
	if root == "" {
		root = v.getenv("ProgramFiles")
	}
	vswhere := filepath.Join(root, "Microsoft Visual Studio", "Installer", "vswhere.exe")

	var out bytes.Buffer
	inv := &domain.Invocation{
		Name: vswhere,
		Args: []string{
			"-latest", "-prerelease",
			"-requires", VCToolsComponent,
			"-property", "installationPath",
			"-products", "*",
		},
		Env:   v.environ(),
		Quiet: true,
	}
	if err := v.executor.Execute(ctx, inv, &out, nil); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrToolchainEnvFailed.Error()), "vswhere", vswhere)
	}

	path := strings.TrimSpace(out.String())
	if path == "" {
		return "", zerr.With(domain.ErrToolchainEnvFailed, "reason", "no Visual Studio installation with C++ tools found")
	}
	return path, nil
}

// ParseSetOutput converts the output of cmd's "set" builtin into "KEY=VALUE" entries.
// Lines without a key, such as the per-drive "=C:" entries, are dropped.
func ParseSetOutput(output string) []string {
	var env []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		key, _, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) == "" || strings.ContainsAny(key, " \t") {
			continue
		}
		env = append(env, line)
	}
	return env
}
