// Package environment builds the child-process environment of the build phases.
package environment

import (
	"context"
	"os"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
)

var _ ports.EnvironmentPreparer = (*Preparer)(nil)

// Preparer implements ports.EnvironmentPreparer.
//
// Windows targets get the complete environment of the vendor toolchain helper. Every
// other target gets a copy of the ambient environment.
type Preparer struct {
	toolchain ports.ToolchainEnvironment
	ambient   func() []string
}

// NewPreparer creates a Preparer over the process environment.
func NewPreparer(toolchain ports.ToolchainEnvironment) *Preparer {
	return NewPreparerWithAmbient(toolchain, os.Environ)
}

// NewPreparerWithAmbient creates a Preparer over an arbitrary ambient environment.
func NewPreparerWithAmbient(toolchain ports.ToolchainEnvironment, ambient func() []string) *Preparer {
	return &Preparer{
		toolchain: toolchain,
		ambient:   ambient,
	}
}

// Prepare returns the environment for target.
func (p *Preparer) Prepare(ctx context.Context, target domain.BuildTarget) ([]string, error) {
	if target.Platform == domain.PlatformWindows && target.PlatformSpec != "" {
		return p.toolchain.Query(ctx, target.PlatformSpec)
	}

	ambient := p.ambient()
	env := make([]string, len(ambient))
	copy(env, ambient)
	return env, nil
}
