package publish

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/casset/internal/core/ports"
)

// NodeID is the unique identifier for the publisher Graft node.
const NodeID graft.ID = "adapter.publish"

func init() {
	graft.Register(graft.Node[ports.Publisher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Publisher, error) {
			cfg := ConfigFromEnv(os.Getenv)
			if !cfg.Configured() {
				return Unconfigured{}, nil
			}
			p, err := New(cfg)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
	})
}
