//go:build !linux

package storage

import (
	"context"

	"github.com/CristiGvl/picoSysMon/internal/errors"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback storage reader for unsupported platforms
func newPlatformReader(string) Reader {
	return &UnsupportedReader{}
}

// GetInfo returns an error for unsupported platforms
func (r *UnsupportedReader) GetInfo(ctx context.Context) (*Info, error) {
	return nil, errors.New().WithMessage(errors.ErrUnsupportedPlatform, "storage monitoring not supported on this platform")
}
