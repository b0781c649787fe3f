package combiner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casset/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/cssuri"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/minify"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/remote"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/core/ports"
)

// NodeID is the unique identifier for the combiner Graft node.
const NodeID graft.ID = "engine.combiner"

func init() {
	graft.Register(graft.Node[*Combiner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FileSystemNodeID,
			fs.HasherNodeID,
			remote.NodeID,
			cache.NodeID,
			minify.NodeID,
			cssuri.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Combiner, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.RemoteFetcher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ArtifactStore](ctx)
			if err != nil {
				return nil, err
			}

			minifiers, err := graft.Dep[ports.Minifiers](ctx)
			if err != nil {
				return nil, err
			}

			rewriter, err := graft.Dep[ports.URIRewriter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(fsys, fetcher, hasher, store, minifiers, rewriter, tracer), nil
		},
	})
}
