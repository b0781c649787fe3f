package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casset/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/cssuri"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/html"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/casset/internal/engine/combiner"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			combiner.NodeID,
			cssuri.NodeID,
			cache.NodeID,
			html.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			resolver, err := graft.Dep[ports.FileResolver](ctx)
			if err != nil {
				return nil, err
			}

			comb, err := graft.Dep[*combiner.Combiner](ctx)
			if err != nil {
				return nil, err
			}

			rewriter, err := graft.Dep[ports.URIRewriter](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ArtifactStore](ctx)
			if err != nil {
				return nil, err
			}

			emitter, err := graft.Dep[ports.Emitter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(resolver, comb, rewriter, store, emitter, tracer), nil
		},
	})
}
