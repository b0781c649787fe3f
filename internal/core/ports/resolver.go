package ports

import "go.trai.ch/casset/internal/core/domain"

// FileResolver expands namespaced patterns into concrete files.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type FileResolver interface {
	// Resolve expands pattern for asset type t against the session's namespaces.
	// Local results are relative to the session's root directory.
	Resolve(s *domain.Session, t domain.AssetType, pattern string) ([]domain.ResolvedFile, error)
}
