//go:build !linux

package cpu

import (
	"context"

	"github.com/CristiGvl/picoSysMon/internal/errors"
	"github.com/spf13/afero"
)

// UnsupportedReader is a fallback for unsupported platforms. cpufreq paths
// simply won't exist there, so the frequency scans come back empty.
type UnsupportedReader struct {
	*FrequencySampler
}

// newPlatformReader creates a fallback CPU reader for unsupported platforms
func newPlatformReader(sysfsRoot, _ afero.Fs) Reader {
	return &UnsupportedReader{FrequencySampler: NewFrequencySampler(sysfsRoot)}
}

// GetInfo returns an error for unsupported platforms
func (r *UnsupportedReader) GetInfo(ctx context.Context) (*Info, error) {
	return nil, errors.New().WithMessage(errors.ErrUnsupportedPlatform, "CPU monitoring not supported on this platform")
}

// GetUsage returns an error for unsupported platforms
func (r *UnsupportedReader) GetUsage(ctx context.Context) (float64, error) {
	return 0, errors.New().WithMessage(errors.ErrUnsupportedPlatform, "CPU monitoring not supported on this platform")
}
