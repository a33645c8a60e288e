package ports

import (
	"context"

	"go.trai.ch/extbuild/internal/core/domain"
)

// EnvironmentPreparer produces the process environment of the build phases.
//
// Implementations must not mutate the orchestrator's own environment; the result is a
// new value passed explicitly to every invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentPreparer interface {
	// Prepare returns "KEY=VALUE" entries for the given target.
	Prepare(ctx context.Context, target domain.BuildTarget) ([]string, error)
}

// ToolchainEnvironment queries a vendor toolchain helper for its environment.
type ToolchainEnvironment interface {
	// Query returns the complete environment the helper sets up for platformSpec.
	Query(ctx context.Context, platformSpec string) ([]string, error)
}
