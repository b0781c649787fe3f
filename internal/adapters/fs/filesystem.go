// Package fs implements filesystem access, file resolution and cache key hashing.
package fs

import (
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"go.trai.ch/casset/internal/core/ports"
)

var (
	_ ports.FileSystem = (*OSFS)(nil)
	_ ports.FileSystem = (*MapFS)(nil)
)

// OSFS implements ports.FileSystem on the host filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given name.
func (o *OSFS) Stat(name string) (iofs.FileInfo, error) {
	return os.Stat(filepath.FromSlash(name))
}

// ReadFile reads the entire file.
func (o *OSFS) ReadFile(name string) ([]byte, error) {
	// #nosec G304 -- names come from configured asset roots
	return os.ReadFile(filepath.FromSlash(name))
}

// Glob returns the names matching pattern, slash-separated and sorted.
func (o *OSFS) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(filepath.FromSlash(pattern))
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.ToSlash(m)
	}
	sort.Strings(matches)
	return matches, nil
}

// MapFS adapts an io/fs.FS, typically fstest.MapFS, to ports.FileSystem.
type MapFS struct {
	FS iofs.FS
}

// NewMapFS creates a new MapFS over fsys.
func NewMapFS(fsys iofs.FS) *MapFS {
	return &MapFS{FS: fsys}
}

// Stat returns file info for the given name.
func (m *MapFS) Stat(name string) (iofs.FileInfo, error) {
	return iofs.Stat(m.FS, toRel(name))
}

// ReadFile reads the entire file.
func (m *MapFS) ReadFile(name string) ([]byte, error) {
	return iofs.ReadFile(m.FS, toRel(name))
}

// Glob walks the whole tree and returns the entries matching pattern, sorted.
func (m *MapFS) Glob(pattern string) ([]string, error) {
	relPattern := toRel(pattern)

	var matches []string
	err := iofs.WalkDir(m.FS, ".", func(name string, _ iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		ok, err := doublestar.Match(relPattern, name)
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}

// toRel converts a slash name into the rooted form io/fs expects.
func toRel(name string) string {
	name = path.Clean(strings.TrimPrefix(name, "./"))
	return strings.TrimPrefix(name, "/")
}
