package html

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casset/internal/core/ports"
)

// NodeID is the unique identifier for the emitter Graft node.
const NodeID graft.ID = "adapter.html"

func init() {
	graft.Register(graft.Node[ports.Emitter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Emitter, error) {
			return NewEmitter(), nil
		},
	})
}
