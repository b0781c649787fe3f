package ports

import "context"

// RemoteFetcher downloads remote assets that are combined into an artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type RemoteFetcher interface {
	// Fetch returns the body served at url.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
