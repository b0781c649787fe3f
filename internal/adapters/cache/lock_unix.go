//go:build !windows

package cache

import (
	"os"

	"go.trai.ch/casset/internal/core/domain"
	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive advisory lock on path, blocking until it is free.
func lockFile(path string) (func() error, error) {
	//nolint:gosec // Lock path is derived from the artifact name
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, domain.FilePerm)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() error {
		if err := unix.Flock(int(f.Fd()), unix.LOCK_UN); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}, nil
}
