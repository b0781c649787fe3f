package ports

// Hasher computes cache keys.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ArtifactKey hashes the concatenated paths, the minify flag and a freshness token.
	ArtifactKey(paths []string, minify bool, freshness string) string

	// ContentDigest hashes the contents of the named files, in order.
	ContentDigest(names []string) (string, error)
}
