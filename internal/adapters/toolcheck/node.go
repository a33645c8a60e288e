package toolcheck

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/internal/adapters/shell"
	"go.trai.ch/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the tool checker Graft node.
const NodeID graft.ID = "adapter.toolcheck"

func init() {
	graft.Register(graft.Node[ports.ToolChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ToolChecker, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(executor), nil
		},
	})
}
