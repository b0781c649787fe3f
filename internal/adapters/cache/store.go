// Package cache implements the on-disk store for combined artifacts.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultReadCacheSize is the number of artifacts kept in memory after a Read.
const DefaultReadCacheSize = 256

const tempSuffix = ".tmp"

// Store implements ports.ArtifactStore on a flat directory.
// Artifact names embed their cache key, so content read once is reused
// until the artifact is swept.
type Store struct {
	reads *lru.Cache[string, []byte]
}

// NewStore creates a Store remembering up to size artifacts read back.
func NewStore(size int) (*Store, error) {
	reads, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create artifact read cache")
	}
	return &Store{reads: reads}, nil
}

// Exists reports whether the artifact is present in dir.
func (s *Store) Exists(dir, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(dir, name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "artifact", name)
}

// Write persists content under name. The write holds an exclusive lock on
// the artifact's lock file and lands through a rename, so concurrent readers
// see either nothing or the complete artifact.
func (s *Store) Write(dir, name string, content []byte) (err error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", dir)
	}

	unlock, err := lockFile(filepath.Join(dir, name+domain.LockFileSuffix))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "artifact", name)
	}
	defer func() {
		if uerr := unlock(); uerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(uerr, domain.ErrArtifactWriteFailed.Error()), "artifact", name)
		}
	}()

	target := filepath.Join(dir, name)
	tmp := filepath.Join(dir, "."+name+"."+uuid.NewString()+tempSuffix)

	//nolint:gosec // Path is built from the cache dir and a generated name
	if err := os.WriteFile(tmp, content, domain.FilePerm); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "artifact", name)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "artifact", name)
	}

	s.reads.Remove(target)
	return nil
}

// Read returns the artifact content. Only reads populate the cache.
func (s *Store) Read(dir, name string) ([]byte, error) {
	target := filepath.Join(dir, name)
	if content, ok := s.reads.Get(target); ok {
		return content, nil
	}

	//nolint:gosec // Path is built from the cache dir and an artifact name
	content, err := os.ReadFile(target)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "artifact", name)
	}
	s.reads.Add(target, content)
	return content, nil
}

// Sweep removes artifacts matching the filter that were modified before
// opts.Before, together with their lock files. A zero Before means now.
func (s *Store) Sweep(dir string, opts domain.SweepOptions) ([]string, error) {
	filter, err := domain.ParseCacheFilter(opts.Filter)
	if err != nil {
		return nil, err
	}
	before := opts.Before
	if before.IsZero() {
		before = time.Now()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheSweepFailed.Error()), "dir", dir)
	}

	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !isArtifact(name) {
			continue
		}
		if ok, _ := doublestar.Match(filter, name); !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return removed, zerr.With(zerr.Wrap(err, domain.ErrCacheSweepFailed.Error()), "artifact", name)
		}
		if !info.ModTime().Before(before) {
			continue
		}

		target := filepath.Join(dir, name)
		if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, zerr.With(zerr.Wrap(err, domain.ErrCacheSweepFailed.Error()), "artifact", name)
		}
		_ = os.Remove(target + domain.LockFileSuffix)
		s.reads.Remove(target)
		removed = append(removed, name)
	}
	return removed, nil
}

func isArtifact(name string) bool {
	return !strings.HasPrefix(name, ".") &&
		!strings.HasSuffix(name, domain.LockFileSuffix) &&
		!strings.HasSuffix(name, tempSuffix)
}
