//go:build windows

package cache

import (
	"os"

	"go.trai.ch/casset/internal/core/domain"
	"golang.org/x/sys/windows"
)

// lockFile takes an exclusive lock on the first byte of path, blocking until
// it is free.
func lockFile(path string) (func() error, error) {
	//nolint:gosec // Lock path is derived from the artifact name
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, domain.FilePerm)
	if err != nil {
		return nil, err
	}
	h := windows.Handle(f.Fd())
	if err := windows.LockFileEx(h, windows.LOCKFILE_EXCLUSIVE_LOCK, 0, 1, 0, &windows.Overlapped{}); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() error {
		if err := windows.UnlockFileEx(h, 0, 1, 0, &windows.Overlapped{}); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}, nil
}
