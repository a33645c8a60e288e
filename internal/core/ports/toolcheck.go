package ports

import (
	"context"

	"go.trai.ch/extbuild/internal/core/domain"
)

// ToolChecker verifies that the external tools a build relies on are installed.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolcheck.go -destination=mocks/mock_toolcheck.go -package=mocks
type ToolChecker interface {
	// Check inspects every requirement. It returns one status per requirement, in order,
	// and an error if any required tool is missing or too old.
	Check(ctx context.Context, reqs []domain.ToolRequirement) ([]domain.ToolStatus, error)
}
