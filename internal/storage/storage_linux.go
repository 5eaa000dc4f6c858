//go:build linux

package storage

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"
)

// LinuxReader implements storage monitoring for Linux
type LinuxReader struct {
	path string
}

// newPlatformReader creates a new Linux storage reader
func newPlatformReader(path string) Reader {
	return &LinuxReader{path: path}
}

// GetInfo returns storage information
func (r *LinuxReader) GetInfo(ctx context.Context) (*Info, error) {
	usage, err := disk.UsageWithContext(ctx, r.path)
	if err != nil {
		return nil, err
	}

	return newInfo(r.path, usage.Total, usage.Free), nil
}
