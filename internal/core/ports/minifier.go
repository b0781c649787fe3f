package ports

import "go.trai.ch/casset/internal/core/domain"

// Minifier is a pure text-to-text transform for one asset type.
//
//go:generate go run go.uber.org/mock/mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Minify returns the minified form of src, or an error for malformed input.
	Minify(src string) (string, error)
}

// Minifiers maps each bundled asset type to its minifier.
type Minifiers map[domain.AssetType]Minifier
