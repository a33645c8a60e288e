package ports

import (
	"context"

	"go.trai.ch/extbuild/internal/core/domain"
)

// PathMapper detects whether debug-info paths must be rewritten for a host toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=path_mapper.go -destination=mocks/mock_path_mapper.go -package=mocks
type PathMapper interface {
	// Detect never fails. Problems are reported through PathMapping.Diagnostics and
	// result in a nil rule.
	Detect(ctx context.Context, sourceDir string) domain.PathMapping
}
