package msvc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/internal/adapters/shell"
	"go.trai.ch/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the MSVC environment Graft node.
const NodeID graft.ID = "adapter.msvc"

func init() {
	graft.Register(graft.Node[ports.ToolchainEnvironment]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainEnvironment, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewVCVars(executor), nil
		},
	})
}
