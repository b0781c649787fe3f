package fs

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileResolver = (*Resolver)(nil)

// Resolver implements ports.FileResolver with glob expansion against a ports.FileSystem.
type Resolver struct {
	fs ports.FileSystem
}

// NewResolver creates a new Resolver.
func NewResolver(fsys ports.FileSystem) *Resolver {
	return &Resolver{fs: fsys}
}

// Resolve expands a "key::pattern" (or bare pattern) for asset type t.
//
// A pattern starting with "/" is rooted at the namespace root and skips the
// type directory. Patterns under a remote root are returned unexpanded.
func (r *Resolver) Resolve(s *domain.Session, t domain.AssetType, pattern string) ([]domain.ResolvedFile, error) {
	key, rest := s.Paths.Split(pattern)
	ns, err := s.Paths.Resolve(key)
	if err != nil {
		return nil, zerr.With(err, "pattern", pattern)
	}

	folder := ns.Dir(t)
	if strings.HasPrefix(rest, "/") {
		folder = ""
	}
	target := ns.Root + folder + strings.TrimLeft(rest, "/")

	if ns.Remote() {
		return []domain.ResolvedFile{{Path: target, Remote: true}}, nil
	}

	root := filepath.ToSlash(s.Settings.RootDir)
	matches, err := r.fs.Glob(path.Join(root, target))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob pattern"), "pattern", target)
	}

	files := make([]domain.ResolvedFile, 0, len(matches))
	for _, match := range matches {
		info, err := r.fs.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, domain.ResolvedFile{Path: relativeTo(root, match)})
	}

	if len(files) == 0 {
		return nil, zerr.With(domain.ErrNoFilesMatched, "pattern", target)
	}
	return files, nil
}

// relativeTo strips the project root from a matched name.
func relativeTo(root, name string) string {
	root = path.Clean(root)
	if root == "." {
		return name
	}
	return strings.TrimPrefix(name, root+"/")
}
