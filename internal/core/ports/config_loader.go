package ports

import "go.trai.ch/casset/internal/core/domain"

// ConfigLoader builds a session from the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration starting at cwd and returns a ready session.
	Load(cwd string) (*domain.Session, error)
}
