// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/extbuild/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation to completion.
	//
	// inv.Env is used as the complete child environment. Output is streamed to the
	// logger and additionally copied to stdout and stderr when they are non-nil.
	//
	// It returns an error if the process cannot be started or exits non-zero.
	Execute(ctx context.Context, inv *domain.Invocation, stdout, stderr io.Writer) error
}
