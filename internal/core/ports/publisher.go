package ports

import "context"

// Publisher uploads artifacts to remote storage.
//
//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type Publisher interface {
	// Publish uploads content under key and returns its public location.
	Publish(ctx context.Context, key string, content []byte, contentType string) (string, error)
}
