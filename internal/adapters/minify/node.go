package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
)

// NodeID is the unique identifier for the minifiers Graft node.
const NodeID graft.ID = "adapter.minify"

func init() {
	graft.Register(graft.Node[ports.Minifiers]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Minifiers, error) {
			return New(), nil
		},
	})
}

// New returns the minifier for every bundled asset type.
func New() ports.Minifiers {
	return ports.Minifiers{
		domain.TypeCSS: NewCSSMinifier(),
		domain.TypeJS:  NewJSMinifier(),
	}
}
