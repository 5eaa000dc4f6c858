//go:build !linux

package temps

import (
	"context"

	"github.com/CristiGvl/picoSysMon/internal/errors"
	"github.com/spf13/afero"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct {
	*ZoneSampler
}

// newPlatformReader creates a fallback temperature reader for unsupported platforms
func newPlatformReader(sysfsRoot afero.Fs) Reader {
	return &UnsupportedReader{ZoneSampler: NewZoneSampler(sysfsRoot)}
}

// GetInfo returns an error for unsupported platforms
func (r *UnsupportedReader) GetInfo(ctx context.Context) (*Info, error) {
	return nil, errors.New().WithMessage(errors.ErrUnsupportedPlatform, "temperature monitoring not supported on this platform")
}
