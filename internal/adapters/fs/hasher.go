package fs

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes artifact keys with xxhash.
type Hasher struct {
	fs ports.FileSystem
}

// NewHasher creates a new Hasher reading files through fsys.
func NewHasher(fsys ports.FileSystem) *Hasher {
	return &Hasher{fs: fsys}
}

// ArtifactKey hashes concat(paths) + "min" (when minifying) + freshness.
func (h *Hasher) ArtifactKey(paths []string, minify bool, freshness string) string {
	hasher := xxhash.New()
	for _, p := range paths {
		_, _ = hasher.WriteString(p)
	}
	if minify {
		_, _ = hasher.WriteString("min")
	}
	_, _ = hasher.WriteString(freshness)

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(name string) (uint64, error) {
	data, err := h.fs.ReadFile(name)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrFileReadFailed.Error())
		return 0, zerr.With(err, "path", name)
	}
	return xxhash.Sum64(data), nil
}

// ContentDigest combines the content hashes of names, in order.
func (h *Hasher) ContentDigest(names []string) (string, error) {
	hasher := xxhash.New()
	for _, name := range names {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0})

		sum, err := h.ComputeFileHash(name)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
