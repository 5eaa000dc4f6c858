package cpu

import (
	"context"

	"github.com/spf13/afero"
)

// MaxCores bounds the per-core frequency scan.
const MaxCores = 12

// Info represents CPU information
type Info struct {
	Model        string  `json:"model"`
	Cores        int     `json:"cores"`
	Threads      int     `json:"threads"`
	Usage        float64 `json:"usage_percent"`
	FrequencyKHz uint64  `json:"frequency_khz"`
}

// Reader interface for CPU monitoring
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
	GetUsage(ctx context.Context) (float64, error)
	CoreFrequencies() []CoreFrequency
	CurrentFrequency() uint64
}

// NewReader creates a new CPU reader for the current platform. sysfs is rooted
// at the sysfs mount point, rootfs at the filesystem root (for /proc).
func NewReader(sysfs, rootfs afero.Fs) Reader {
	return newPlatformReader(sysfs, rootfs)
}
