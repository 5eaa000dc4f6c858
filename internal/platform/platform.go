package platform

import (
	"runtime"

	"github.com/CristiGvl/picoSysMon/internal/errors"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Android SupportedOS = "android"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported reports whether os exposes sysfs the way the samplers expect
func IsSupported(os SupportedOS) bool {
	return os == Linux || os == Android
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported(GetOS()) {
		return errors.New().WithData(errors.ErrUnsupportedPlatform, runtime.GOOS)
	}
	return nil
}
