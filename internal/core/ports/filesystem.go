package ports

import "io/fs"

// FileSystem is the read side of the project tree.
// Names are slash-separated and relative to the project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given name.
	Stat(name string) (fs.FileInfo, error)
	// ReadFile reads the entire file.
	ReadFile(name string) ([]byte, error)
	// Glob returns the names matching pattern, sorted. `**` matches across directories.
	Glob(pattern string) ([]string, error)
}
