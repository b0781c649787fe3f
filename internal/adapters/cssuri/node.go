package cssuri

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casset/internal/core/ports"
)

// NodeID is the unique identifier for the CSS URI rewriter Graft node.
const NodeID graft.ID = "adapter.cssuri"

func init() {
	graft.Register(graft.Node[ports.URIRewriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.URIRewriter, error) {
			return NewRewriter(), nil
		},
	})
}
