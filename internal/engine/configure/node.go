package configure

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the configuration builder Graft node.
const NodeID graft.ID = "engine.configure"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(resolver), nil
		},
	})
}
