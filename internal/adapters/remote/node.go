package remote

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casset/internal/core/ports"
)

// NodeID is the unique identifier for the remote fetcher Graft node.
const NodeID graft.ID = "adapter.remote"

func init() {
	graft.Register(graft.Node[ports.RemoteFetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RemoteFetcher, error) {
			return New(DefaultTimeout), nil
		},
	})
}
