package sysinfo

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/disk"
)

// HostStorage reports capacity of the filesystem mounted at Path.
type HostStorage struct {
	Path string
}

// NewHostStorage measures path, or the system drive when path is empty.
func NewHostStorage(path string) *HostStorage {
	if path == "" {
		path = DefaultStoragePath()
	}
	return &HostStorage{Path: path}
}

// DefaultStoragePath is the root filesystem, or C:\ on Windows.
func DefaultStoragePath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

// Capacity implements StorageQuery.
func (h *HostStorage) Capacity(ctx context.Context) (total, free uint64, err error) {
	usage, err := disk.UsageWithContext(ctx, h.Path)
	if err != nil {
		return 0, 0, err
	}
	return usage.Total, usage.Free, nil
}
