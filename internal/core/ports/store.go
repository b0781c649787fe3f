package ports

import "go.trai.ch/casset/internal/core/domain"

// ArtifactStore persists combined artifacts in a flat cache directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Exists reports whether the artifact name is present in dir.
	Exists(dir, name string) (bool, error)

	// Write persists content under name, atomically and under an exclusive lock.
	Write(dir, name string, content []byte) error

	// Read returns the content of an existing artifact.
	Read(dir, name string) ([]byte, error)

	// Sweep removes artifacts matching opts and returns the removed names.
	Sweep(dir string, opts domain.SweepOptions) ([]string, error)
}
