//go:build linux

package memory

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"
)

// LinuxReader implements memory monitoring for Linux
type LinuxReader struct{}

// newPlatformReader creates a new Linux memory reader
func newPlatformReader() Reader {
	return &LinuxReader{}
}

// GetInfo returns memory information
func (r *LinuxReader) GetInfo(ctx context.Context) (*Info, error) {
	memInfo, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return newInfo(memInfo.Total, memInfo.Available), nil
}
