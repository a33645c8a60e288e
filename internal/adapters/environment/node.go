package environment

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/internal/adapters/msvc"
	"go.trai.ch/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the environment preparer Graft node.
const NodeID graft.ID = "adapter.environment"

func init() {
	graft.Register(graft.Node[ports.EnvironmentPreparer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{msvc.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentPreparer, error) {
			toolchain, err := graft.Dep[ports.ToolchainEnvironment](ctx)
			if err != nil {
				return nil, err
			}
			return NewPreparer(toolchain), nil
		},
	})
}
