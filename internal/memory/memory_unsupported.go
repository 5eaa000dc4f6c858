//go:build !linux

package memory

import (
	"context"

	"github.com/CristiGvl/picoSysMon/internal/errors"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback memory reader for unsupported platforms
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// GetInfo returns an error for unsupported platforms
func (r *UnsupportedReader) GetInfo(ctx context.Context) (*Info, error) {
	return nil, errors.New().WithMessage(errors.ErrUnsupportedPlatform, "memory monitoring not supported on this platform")
}
