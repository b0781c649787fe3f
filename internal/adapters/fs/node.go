package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casset/internal/core/ports"
)

const (
	// FileSystemNodeID is the unique identifier for the filesystem Graft node.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	// ResolverNodeID is the unique identifier for the file resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the unique identifier for the cache key hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.FileResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FileSystemNodeID},
		Run: func(ctx context.Context) (ports.FileResolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fsys), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FileSystemNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(fsys), nil
		},
	})
}
